package model

import "errors"

var (
	ErrEmptyTitle = errors.New("book title cannot be empty")
	ErrEmptyISBN  = errors.New("book isbn cannot be empty")
)
