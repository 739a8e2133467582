package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mosite/go-blog/pkg/interfaces"
)

// LocalStore keeps image binaries on the local filesystem under a root
// directory. Stored paths are relative to the root.
type LocalStore struct {
	root string
}

var _ interfaces.FileStore = (*LocalStore)(nil)

// NewLocalStore constructs a file store rooted at dir, creating it when
// missing.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("media: store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: create store directory: %w", err)
	}
	return &LocalStore{root: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, data []byte) (string, error) {
	clean := filepath.Base(name)
	target := filepath.Join(s.root, clean)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("media: write file: %w", err)
	}
	return clean, nil
}

func (s *LocalStore) Delete(_ context.Context, storedPath string) error {
	target := filepath.Join(s.root, filepath.Base(storedPath))
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("media: delete file: %w", err)
	}
	return nil
}

func (s *LocalStore) Exists(_ context.Context, storedPath string) (bool, error) {
	target := filepath.Join(s.root, filepath.Base(storedPath))
	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("media: stat file: %w", err)
	}
	return true, nil
}

// MemoryStore is an in-memory file store for tests.
type MemoryStore struct {
	files map[string][]byte
}

var _ interfaces.FileStore = (*MemoryStore)(nil)

// NewMemoryStore constructs the store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, name string, data []byte) (string, error) {
	copied := make([]byte, len(data))
	copy(copied, data)
	s.files[name] = copied
	return name, nil
}

func (s *MemoryStore) Delete(_ context.Context, storedPath string) error {
	delete(s.files, storedPath)
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, storedPath string) (bool, error) {
	_, ok := s.files[storedPath]
	return ok, nil
}

// Len reports how many files the store holds.
func (s *MemoryStore) Len() int {
	return len(s.files)
}
