package articles

import (
	"errors"
	"fmt"
)

var (
	// ErrTitleRequired is returned when an article has no title.
	ErrTitleRequired = errors.New("articles: title is required")
	// ErrContentRequired is returned when an article has no body.
	ErrContentRequired = errors.New("articles: content is required")
	// ErrCategoryRequired is returned when an article has no category.
	ErrCategoryRequired = errors.New("articles: category is required")
	// ErrSlugInvalid is returned when a caller supplies a malformed slug.
	ErrSlugInvalid = errors.New("articles: slug is invalid")
	// ErrSlugExists is returned when a slug is already taken.
	ErrSlugExists = errors.New("articles: slug already exists")
	// ErrIDRequired is returned when an operation is missing the article id.
	ErrIDRequired = errors.New("articles: id is required")
	// ErrNotFound is returned when an article cannot be located.
	ErrNotFound = errors.New("articles: article not found")
)

// ArticleNotFoundError reports which lookup key missed.
type ArticleNotFoundError struct {
	Key string
}

func (e *ArticleNotFoundError) Error() string {
	return fmt.Sprintf("articles: article %q not found", e.Key)
}

func (e *ArticleNotFoundError) Unwrap() error {
	return ErrNotFound
}
