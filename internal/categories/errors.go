package categories

import (
	"errors"
	"fmt"
)

var (
	ErrNameRequired = errors.New("categories: name is required")
	ErrSlugInvalid  = errors.New("categories: slug contains invalid characters")
	ErrNameExists   = errors.New("categories: name already exists")
	ErrSlugExists   = errors.New("categories: slug already exists")
	ErrIDRequired   = errors.New("categories: id required")
	ErrNotFound     = errors.New("categories: category not found")
)

// CategoryNotFoundError reports a lookup miss by id, slug, or name.
type CategoryNotFoundError struct {
	Key string
}

func (e *CategoryNotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrNotFound.Error(), e.Key)
}

func (e *CategoryNotFoundError) Unwrap() error {
	return ErrNotFound
}
