package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"library-lite/internal/domains/author/model"
)

// MemoryRepository keeps authors in a slice guarded by a single RWMutex.
// List order is insertion order, with updated authors re-appended.
// Lookups are linear scans.
type MemoryRepository struct {
	mu      sync.RWMutex
	authors []model.Author
}

// NewMemoryRepository constructs a MemoryRepository seeded with the provided authors.
func NewMemoryRepository(seed []model.Author) *MemoryRepository {
	authors := make([]model.Author, len(seed))
	copy(authors, seed)
	return &MemoryRepository{authors: authors}
}

func (r *MemoryRepository) List(_ context.Context) ([]model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Author, len(r.authors))
	copy(result, r.authors)
	return result, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (model.Author, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Author{}, false, nil
	}
	return r.authors[i], true, nil
}

func (r *MemoryRepository) Create(_ context.Context, author model.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.authors = append(r.authors, author)
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, id uuid.UUID, fn func(*model.Author) error) (model.Author, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Author{}, false, nil
	}

	updated := r.authors[i]
	if err := fn(&updated); err != nil {
		return model.Author{}, true, err
	}
	// An updated author moves to the end of the listing.
	r.authors = append(append(r.authors[:i], r.authors[i+1:]...), updated)
	return updated, true, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.authors = append(r.authors[:i], r.authors[i+1:]...)
	return true, nil
}

// indexOf must be called with r.mu held.
func (r *MemoryRepository) indexOf(id uuid.UUID) int {
	for i := range r.authors {
		if r.authors[i].ID() == id {
			return i
		}
	}
	return -1
}
