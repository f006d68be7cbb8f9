package repository

import (
	"context"

	"github.com/google/uuid"

	"library-lite/internal/domains/book/model"
)

// RepositoryInterface is the book store contract. Lookups report absence
// with a found flag rather than an error.
type RepositoryInterface interface {
	// List returns copies of all books in insertion order. The listing
	// relies on this order to break title ties.
	List(ctx context.Context) ([]model.Book, error)

	GetByID(ctx context.Context, id uuid.UUID) (model.Book, bool, error)

	Create(ctx context.Context, book model.Book) error

	// Update applies fn to a copy of the stored book and swaps the copy in
	// only when fn succeeds.
	Update(ctx context.Context, id uuid.UUID, fn func(*model.Book) error) (model.Book, bool, error)

	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
