package service

import (
	"context"

	"github.com/google/uuid"

	"library-lite/internal/domains/book/model"
	"library-lite/internal/shared"
)

// ServiceInterface defines the book use cases.
// Not-found is reported through the bool result, never as an error.
type ServiceInterface interface {
	// List filters by search (case-insensitive substring of title or isbn),
	// sorts by title and returns one page. Paging input is normalized and
	// the result carries the normalized values.
	List(ctx context.Context, query model.ListBooksQuery) (shared.PagedResult[model.BookResponse], error)

	GetByID(ctx context.Context, id uuid.UUID) (model.BookResponse, bool, error)

	// Create assigns a new id. req must already be validated.
	Create(ctx context.Context, req model.CreateBookRequest) (model.BookResponse, error)

	// Update replaces all mutable fields. req must already be validated.
	Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (model.BookResponse, bool, error)

	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
