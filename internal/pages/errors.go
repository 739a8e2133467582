package pages

import (
	"errors"
	"fmt"
)

var (
	// ErrTitleRequired is returned when a page has no title.
	ErrTitleRequired = errors.New("pages: title is required")
	// ErrSlugInvalid is returned when a caller supplies a malformed slug.
	ErrSlugInvalid = errors.New("pages: slug is invalid")
	// ErrSlugExists is returned when a slug is already taken.
	ErrSlugExists = errors.New("pages: slug already exists")
	// ErrIDRequired is returned when an operation is missing the page id.
	ErrIDRequired = errors.New("pages: id is required")
	// ErrNotFound is returned when a page cannot be located.
	ErrNotFound = errors.New("pages: page not found")
)

// PageNotFoundError reports which lookup key missed.
type PageNotFoundError struct {
	Key string
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("pages: page %q not found", e.Key)
}

func (e *PageNotFoundError) Unwrap() error {
	return ErrNotFound
}
