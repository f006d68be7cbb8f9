package repository

import (
	"context"

	"github.com/google/uuid"

	"library-lite/internal/domains/author/model"
)

// RepositoryInterface is the author store contract. Lookups report absence
// with a found flag rather than an error.
type RepositoryInterface interface {
	// List returns copies of all authors in insertion order.
	List(ctx context.Context) ([]model.Author, error)

	GetByID(ctx context.Context, id uuid.UUID) (model.Author, bool, error)

	// Create appends the author to the store.
	Create(ctx context.Context, author model.Author) error

	// Update applies fn to a copy of the stored author and swaps the copy in
	// only when fn succeeds, so readers never see a half-applied change.
	Update(ctx context.Context, id uuid.UUID, fn func(*model.Author) error) (model.Author, bool, error)

	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
