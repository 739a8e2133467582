package media

import (
	"errors"
	"fmt"
)

var (
	// ErrNameRequired is returned when an upload has no file name.
	ErrNameRequired = errors.New("media: file name is required")
	// ErrEmptyFile is returned when an upload carries no bytes.
	ErrEmptyFile = errors.New("media: file is empty")
	// ErrNotFound is returned when an image cannot be located.
	ErrNotFound = errors.New("media: image not found")
)

// ImageNotFoundError reports which lookup key missed.
type ImageNotFoundError struct {
	Key string
}

func (e *ImageNotFoundError) Error() string {
	return fmt.Sprintf("media: image %q not found", e.Key)
}

func (e *ImageNotFoundError) Unwrap() error {
	return ErrNotFound
}
