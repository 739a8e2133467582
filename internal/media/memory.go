package media

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"
)

// MemoryImageRepository is an in-memory image store for tests.
type MemoryImageRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*ImageAsset
}

var _ Repository = (*MemoryImageRepository)(nil)

// NewMemoryImageRepository constructs the repository.
func NewMemoryImageRepository() *MemoryImageRepository {
	return &MemoryImageRepository{items: make(map[int64]*ImageAsset)}
}

func (m *MemoryImageRepository) Create(_ context.Context, record *ImageAsset) (*ImageAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *record
	if copied.ID == 0 {
		m.nextID++
		copied.ID = m.nextID
	} else if copied.ID > m.nextID {
		m.nextID = copied.ID
	}
	if copied.UploadedAt.IsZero() {
		copied.UploadedAt = time.Now().UTC()
	}
	m.items[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryImageRepository) GetByID(_ context.Context, id int64) (*ImageAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.items[id]
	if !ok {
		return nil, &ImageNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	copied := *record
	return &copied, nil
}

func (m *MemoryImageRepository) GetByFileName(_ context.Context, fileName string) (*ImageAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.items {
		if record.FileName == fileName {
			copied := *record
			return &copied, nil
		}
	}
	return nil, &ImageNotFoundError{Key: fileName}
}

func (m *MemoryImageRepository) List(_ context.Context) ([]*ImageAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*ImageAsset, 0, len(m.items))
	for _, record := range m.items {
		copied := *record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].UploadedAt.After(out[j].UploadedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MemoryImageRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return &ImageNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	delete(m.items, id)
	return nil
}

func (m *MemoryImageRepository) ExistsByFileName(_ context.Context, fileName string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.items {
		if record.FileName == fileName {
			return true, nil
		}
	}
	return false, nil
}
