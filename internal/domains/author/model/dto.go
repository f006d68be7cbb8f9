package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-lite/internal/shared/apperror"
)

const MaxNameLength = 100

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

// UpdateAuthorRequest - PUT /authors/:id
// Replaces the whole author; there is no partial update.
type UpdateAuthorRequest struct {
	Name string `json:"name"`
}

type AuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (r CreateAuthorRequest) Validate() error {
	return validateName(r.Name)
}

func (r UpdateAuthorRequest) Validate() error {
	return validateName(r.Name)
}

func validateName(name string) error {
	return apperror.Validate(
		apperror.Field("name", strings.TrimSpace(name), validation.Required.Error("name is required")),
		apperror.Field("name", name, validation.RuneLength(0, MaxNameLength).Error("name must be at most 100 characters")),
	)
}
