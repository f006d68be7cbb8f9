package model

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"library-lite/internal/shared/apperror"
)

const (
	MaxTitleLength   = 100
	MinISBNLength    = 5
	MinPublishedYear = 1500
)

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Title         string `json:"title"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"publishedYear"`
	AuthorID      string `json:"authorId"`
}

// UpdateBookRequest - PUT /books/:id
// Same shape as create; every field is replaced.
type UpdateBookRequest struct {
	Title         string `json:"title"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"publishedYear"`
	AuthorID      string `json:"authorId"`
}

type BookResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	ISBN          string    `json:"isbn"`
	PublishedYear int       `json:"publishedYear"`
	AuthorID      uuid.UUID `json:"authorId"`
}

// ListBooksQuery - GET /books query parameters, before normalization.
type ListBooksQuery struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

func (r CreateBookRequest) Validate() error {
	return validateBook(r.Title, r.ISBN, r.PublishedYear, r.AuthorID)
}

func (r UpdateBookRequest) Validate() error {
	return validateBook(r.Title, r.ISBN, r.PublishedYear, r.AuthorID)
}

// validateBook checks request fields. The year ceiling is the current UTC
// year at call time. The author is not looked up.
func validateBook(title, isbn string, year int, authorID string) error {
	currentYear := time.Now().UTC().Year()

	return apperror.Validate(
		apperror.Field("title", strings.TrimSpace(title), validation.Required.Error("title is required")),
		apperror.Field("title", title,
			validation.RuneLength(0, MaxTitleLength).Error("title must be at most 100 characters")),
		apperror.Field("isbn", strings.TrimSpace(isbn), validation.Required.Error("isbn is required")),
		apperror.Field("isbn", isbn,
			validation.RuneLength(MinISBNLength, 0).Error("isbn must be at least 5 characters")),
		apperror.Field("publishedYear", year, yearBetween(MinPublishedYear, currentYear)),
		// is.UUID only matches lowercase hex; uuid.Parse accepts either case.
		apperror.Field("authorId", strings.ToLower(strings.TrimSpace(authorID)),
			validation.Required.Error("authorId is required"),
			validation.NotIn(uuid.Nil.String()).Error("authorId is required"),
			is.UUID.Error("authorId must be a valid UUID"),
		),
	)
}

// yearBetween is inclusive on both ends. ozzo's Min/Max skip zero values,
// so a missing year would slip through them.
func yearBetween(min, max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		year, _ := value.(int)
		if year < min || year > max {
			return validation.NewError("validation_year_range",
				fmt.Sprintf("publishedYear must be between %d and %d", min, max))
		}
		return nil
	})
}
