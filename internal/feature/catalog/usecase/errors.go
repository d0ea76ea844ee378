// Package usecase implements the business logic for the catalog feature
// (authors and books).
package usecase

import "errors"

var (
	// ErrAuthorNotFound is returned when no author exists with the given ID.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrBookNotFound is returned when no book exists with the given ID.
	ErrBookNotFound = errors.New("book not found")

	// ErrInvalidAuthorID is returned when a book create or update references
	// an author that does not exist.
	ErrInvalidAuthorID = errors.New("invalid authorId")
)
