package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"library-lite/internal/domains/book/model"
)

// MemoryRepository keeps books in an insertion-ordered slice guarded by a
// single RWMutex. Lookups are linear scans.
type MemoryRepository struct {
	mu    sync.RWMutex
	books []model.Book
}

// NewMemoryRepository constructs a MemoryRepository seeded with the provided books.
func NewMemoryRepository(seed []model.Book) *MemoryRepository {
	books := make([]model.Book, len(seed))
	copy(books, seed)
	return &MemoryRepository{books: books}
}

func (r *MemoryRepository) List(_ context.Context) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Book, len(r.books))
	copy(result, r.books)
	return result, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (model.Book, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Book{}, false, nil
	}
	return r.books[i], true, nil
}

func (r *MemoryRepository) Create(_ context.Context, book model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = append(r.books, book)
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, id uuid.UUID, fn func(*model.Book) error) (model.Book, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Book{}, false, nil
	}

	updated := r.books[i]
	if err := fn(&updated); err != nil {
		return model.Book{}, true, err
	}
	r.books[i] = updated
	return updated, true, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	return true, nil
}

// indexOf must be called with r.mu held.
func (r *MemoryRepository) indexOf(id uuid.UUID) int {
	for i := range r.books {
		if r.books[i].ID() == id {
			return i
		}
	}
	return -1
}
