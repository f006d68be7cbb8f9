package container

import (
	"github.com/google/uuid"

	authorModel "library-lite/internal/domains/author/model"
	bookModel "library-lite/internal/domains/book/model"
)

// SeedData returns example authors and books to pre-populate the stores.
// Every book references the first author.
func SeedData() ([]authorModel.Author, []bookModel.Book, error) {
	authorNames := []string{
		"Brandon Sanderson",
		"J. K. Rowling",
		"George R. R. Martin",
	}

	authors := make([]authorModel.Author, 0, len(authorNames))
	for _, name := range authorNames {
		a, err := authorModel.NewAuthor(uuid.New(), name)
		if err != nil {
			return nil, nil, err
		}
		authors = append(authors, *a)
	}

	sanderson := authors[0].ID()
	bookSeeds := []struct {
		title string
		isbn  string
		year  int
	}{
		{"The Final Empire", "ISBN-001", 2006},
		{"The Well of Ascension", "ISBN-002", 2007},
		{"The Hero of Ages", "ISBN-003", 2008},
	}

	books := make([]bookModel.Book, 0, len(bookSeeds))
	for _, s := range bookSeeds {
		b, err := bookModel.NewBook(uuid.New(), s.title, s.isbn, s.year, sanderson)
		if err != nil {
			return nil, nil, err
		}
		books = append(books, *b)
	}

	return authors, books, nil
}
