package catalog

import "errors"

var (
	// ErrNotFound indicates no live record exists at the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates another live record already holds the same
	// (artist, album, format) triple.
	ErrDuplicate = errors.New("a record with the same artist, album, and format already exists")
)
