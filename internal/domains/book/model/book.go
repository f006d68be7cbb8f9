package model

import (
	"strings"

	"github.com/google/uuid"
)

// Book is the book entity. Fields are unexported; Update is the only way to
// change them and it replaces every mutable field at once.
//
// The entity only guards non-empty title and isbn. Year bounds and isbn
// length belong to request validation, and authorID is never checked against
// the author store.
type Book struct {
	id            uuid.UUID
	title         string
	isbn          string
	publishedYear int
	authorID      uuid.UUID
}

func NewBook(id uuid.UUID, title, isbn string, publishedYear int, authorID uuid.UUID) (*Book, error) {
	if err := checkInvariants(title, isbn); err != nil {
		return nil, err
	}
	return &Book{
		id:            id,
		title:         title,
		isbn:          isbn,
		publishedYear: publishedYear,
		authorID:      authorID,
	}, nil
}

func (b *Book) ID() uuid.UUID { return b.id }

func (b *Book) Title() string { return b.title }

func (b *Book) ISBN() string { return b.isbn }

func (b *Book) PublishedYear() int { return b.publishedYear }

func (b *Book) AuthorID() uuid.UUID { return b.authorID }

// Update overwrites all mutable fields. On error nothing changes.
func (b *Book) Update(title, isbn string, publishedYear int, authorID uuid.UUID) error {
	if err := checkInvariants(title, isbn); err != nil {
		return err
	}
	b.title = title
	b.isbn = isbn
	b.publishedYear = publishedYear
	b.authorID = authorID
	return nil
}

// Matches reports whether term is a substring of the title or isbn.
// term must already be lower-cased.
func (b *Book) Matches(term string) bool {
	return strings.Contains(strings.ToLower(b.title), term) ||
		strings.Contains(strings.ToLower(b.isbn), term)
}

// ToResponse converts Book to BookResponse
func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:            b.id,
		Title:         b.title,
		ISBN:          b.isbn,
		PublishedYear: b.publishedYear,
		AuthorID:      b.authorID,
	}
}

func checkInvariants(title, isbn string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(isbn) == "" {
		return ErrEmptyISBN
	}
	return nil
}
