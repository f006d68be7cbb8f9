package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"library-lite/internal/domains/book/model"
	"library-lite/internal/domains/book/repository"
	"library-lite/internal/shared"
)

type bookService struct {
	repo   repository.RepositoryInterface
	paging shared.Paging
}

// NewBookService creates a new book service instance
func NewBookService(repo repository.RepositoryInterface, paging shared.Paging) ServiceInterface {
	return &bookService{
		repo:   repo,
		paging: paging,
	}
}

func (s *bookService) List(ctx context.Context, query model.ListBooksQuery) (shared.PagedResult[model.BookResponse], error) {
	page, pageSize := s.paging.NormalizePaging(query.Page, query.PageSize)

	books, err := s.repo.List(ctx)
	if err != nil {
		return shared.PagedResult[model.BookResponse]{}, fmt.Errorf("list books: %w", err)
	}

	if term := strings.ToLower(strings.TrimSpace(query.Search)); term != "" {
		filtered := books[:0]
		for i := range books {
			if books[i].Matches(term) {
				filtered = append(filtered, books[i])
			}
		}
		books = filtered
	}

	totalCount := len(books)

	// Collators keep scratch buffers, so each call gets its own.
	col := collate.New(language.Und)
	// Stable, so equal titles keep insertion order.
	sort.SliceStable(books, func(i, j int) bool {
		return titleLess(col, books[i].Title(), books[j].Title())
	})

	window := shared.Paginate(books, page, pageSize)
	items := make([]model.BookResponse, 0, len(window))
	for i := range window {
		items = append(items, window[i].ToResponse())
	}

	return shared.PagedResult[model.BookResponse]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (model.BookResponse, bool, error) {
	b, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.BookResponse{}, false, fmt.Errorf("get book %s: %w", id, err)
	}
	if !found {
		return model.BookResponse{}, false, nil
	}
	return b.ToResponse(), true, nil
}

func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (model.BookResponse, error) {
	authorID, err := uuid.Parse(strings.TrimSpace(req.AuthorID))
	if err != nil {
		return model.BookResponse{}, fmt.Errorf("author id: %w", err)
	}

	b, err := model.NewBook(uuid.New(), req.Title, req.ISBN, req.PublishedYear, authorID)
	if err != nil {
		return model.BookResponse{}, err
	}

	if err := s.repo.Create(ctx, *b); err != nil {
		return model.BookResponse{}, fmt.Errorf("create book: %w", err)
	}
	return b.ToResponse(), nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) (model.BookResponse, bool, error) {
	authorID, err := uuid.Parse(strings.TrimSpace(req.AuthorID))
	if err != nil {
		return model.BookResponse{}, false, fmt.Errorf("author id: %w", err)
	}

	updated, found, err := s.repo.Update(ctx, id, func(b *model.Book) error {
		return b.Update(req.Title, req.ISBN, req.PublishedYear, authorID)
	})
	if err != nil {
		return model.BookResponse{}, found, err
	}
	if !found {
		return model.BookResponse{}, false, nil
	}
	return updated.ToResponse(), true, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete book %s: %w", id, err)
	}
	return deleted, nil
}

// titleLess orders titles alphabetically regardless of case, so "apricot"
// sorts between "Apple" and "Zebra". Titles the collator sees as equal but
// that differ in bytes fall back to byte order.
func titleLess(col *collate.Collator, a, b string) bool {
	if c := col.CompareString(a, b); c != 0 {
		return c < 0
	}
	return a < b
}
