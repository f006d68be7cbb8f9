package service

import (
	"context"

	"github.com/google/uuid"

	"library-lite/internal/domains/author/model"
)

// ServiceInterface defines the author use cases.
// Not-found is reported through the bool result, never as an error.
type ServiceInterface interface {
	// GetAll returns every author in insertion order.
	GetAll(ctx context.Context) ([]model.AuthorResponse, error)

	GetByID(ctx context.Context, id uuid.UUID) (model.AuthorResponse, bool, error)

	// Create assigns a new id. req must already be validated.
	Create(ctx context.Context, req model.CreateAuthorRequest) (model.AuthorResponse, error)

	// Update replaces the whole author. req must already be validated.
	Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (model.AuthorResponse, bool, error)

	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
