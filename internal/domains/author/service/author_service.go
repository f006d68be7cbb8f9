package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-lite/internal/domains/author/model"
	"library-lite/internal/domains/author/repository"
)

type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) GetAll(ctx context.Context) ([]model.AuthorResponse, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	result := make([]model.AuthorResponse, 0, len(authors))
	for i := range authors {
		result = append(result, authors[i].ToResponse())
	}
	return result, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (model.AuthorResponse, bool, error) {
	a, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.AuthorResponse{}, false, fmt.Errorf("get author %s: %w", id, err)
	}
	if !found {
		return model.AuthorResponse{}, false, nil
	}
	return a.ToResponse(), true, nil
}

func (s *authorService) Create(ctx context.Context, req model.CreateAuthorRequest) (model.AuthorResponse, error) {
	a, err := model.NewAuthor(uuid.New(), req.Name)
	if err != nil {
		return model.AuthorResponse{}, err
	}

	if err := s.repo.Create(ctx, *a); err != nil {
		return model.AuthorResponse{}, fmt.Errorf("create author: %w", err)
	}
	return a.ToResponse(), nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (model.AuthorResponse, bool, error) {
	updated, found, err := s.repo.Update(ctx, id, func(a *model.Author) error {
		return a.Update(req.Name)
	})
	if err != nil {
		return model.AuthorResponse{}, found, err
	}
	if !found {
		return model.AuthorResponse{}, false, nil
	}
	return updated.ToResponse(), true, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete author %s: %w", id, err)
	}
	return deleted, nil
}
