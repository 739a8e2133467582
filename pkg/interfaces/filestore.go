package interfaces

import "context"

// FileStore abstracts the binary storage used for uploaded images. The media
// service never touches the filesystem directly; it hands bytes to a store
// and records the returned path.
type FileStore interface {
	// Save writes the supplied bytes under the suggested name and returns
	// the publicly addressable path of the stored file.
	Save(ctx context.Context, name string, data []byte) (string, error)
	// Delete removes a previously stored file. Deleting a missing file is
	// not an error.
	Delete(ctx context.Context, storedPath string) error
	// Exists reports whether a file is present at the stored path.
	Exists(ctx context.Context, storedPath string) (bool, error)
}
