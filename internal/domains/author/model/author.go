package model

import (
	"strings"

	"github.com/google/uuid"
)

// Author is the author entity. Fields are unexported so the name can only
// change through Update.
type Author struct {
	id   uuid.UUID
	name string
}

// NewAuthor builds an Author. Request validation runs before this, so an
// error here means the boundary was bypassed.
func NewAuthor(id uuid.UUID, name string) (*Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Author{id: id, name: name}, nil
}

func (a *Author) ID() uuid.UUID { return a.id }

func (a *Author) Name() string { return a.name }

// Update replaces the name. The id never changes.
func (a *Author) Update(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	a.name = name
	return nil
}

// ToResponse converts Author to AuthorResponse
func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:   a.id,
		Name: a.name,
	}
}
