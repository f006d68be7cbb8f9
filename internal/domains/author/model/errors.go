package model

import "errors"

var (
	// Domain invariant errors
	ErrEmptyName = errors.New("author name cannot be empty")
)
