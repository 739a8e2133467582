package categories

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"
)

// MemoryCategoryRepository is an in-memory category store for tests.
type MemoryCategoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*Category
}

var _ Repository = (*MemoryCategoryRepository)(nil)

// NewMemoryCategoryRepository constructs the repository.
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{items: make(map[int64]*Category)}
}

func (m *MemoryCategoryRepository) Create(_ context.Context, record *Category) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.items {
		if existing.Name == record.Name {
			return nil, ErrNameExists
		}
		if existing.Slug == record.Slug {
			return nil, ErrSlugExists
		}
	}

	copied := cloneCategory(record)
	if copied.ID == 0 {
		m.nextID++
		copied.ID = m.nextID
	} else if copied.ID > m.nextID {
		m.nextID = copied.ID
	}
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now().UTC()
	}
	m.items[copied.ID] = copied
	return cloneCategory(copied), nil
}

func (m *MemoryCategoryRepository) GetByID(_ context.Context, id int64) (*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.items[id]
	if !ok {
		return nil, &CategoryNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	return cloneCategory(record), nil
}

func (m *MemoryCategoryRepository) GetBySlug(_ context.Context, slug string) (*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.items {
		if record.Slug == slug {
			return cloneCategory(record), nil
		}
	}
	return nil, &CategoryNotFoundError{Key: slug}
}

func (m *MemoryCategoryRepository) GetByName(_ context.Context, name string) (*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.items {
		if record.Name == name {
			return cloneCategory(record), nil
		}
	}
	return nil, &CategoryNotFoundError{Key: name}
}

func (m *MemoryCategoryRepository) List(_ context.Context) ([]*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Category, 0, len(m.items))
	for _, record := range m.items {
		out = append(out, cloneCategory(record))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryCategoryRepository) Update(_ context.Context, record *Category) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.items[record.ID]
	if !ok {
		return nil, &CategoryNotFoundError{Key: strconv.FormatInt(record.ID, 10)}
	}

	for id, existing := range m.items {
		if id == record.ID {
			continue
		}
		if existing.Name == record.Name {
			return nil, ErrNameExists
		}
		if existing.Slug == record.Slug {
			return nil, ErrSlugExists
		}
	}

	updated := cloneCategory(current)
	updated.Name = record.Name
	updated.Slug = record.Slug
	updated.Description = cloneStringPointer(record.Description)
	m.items[record.ID] = updated
	return cloneCategory(updated), nil
}

func (m *MemoryCategoryRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return &CategoryNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	delete(m.items, id)
	return nil
}

func (m *MemoryCategoryRepository) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.items {
		if record.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryCategoryRepository) DeleteAllExcept(_ context.Context, keepName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for id, record := range m.items {
		if record.Name == keepName {
			continue
		}
		delete(m.items, id)
		deleted++
	}
	return deleted, nil
}

func cloneCategory(record *Category) *Category {
	if record == nil {
		return nil
	}
	copied := *record
	copied.Description = cloneStringPointer(record.Description)
	return &copied
}

func cloneStringPointer(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
