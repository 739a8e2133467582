package pages

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"
)

// MemoryPageRepository is an in-memory page store for tests.
type MemoryPageRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*Page
}

var _ Repository = (*MemoryPageRepository)(nil)

// NewMemoryPageRepository constructs the repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{items: make(map[int64]*Page)}
}

func (m *MemoryPageRepository) Create(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.items {
		if existing.Slug == record.Slug {
			return nil, ErrSlugExists
		}
	}

	copied := clonePage(record)
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
	return clonePage(copied), nil
}

func (m *MemoryPageRepository) GetByID(_ context.Context, id int64) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.items[id]
	if !ok {
		return nil, &PageNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	return clonePage(record), nil
}

func (m *MemoryPageRepository) GetBySlug(_ context.Context, slug string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.items {
		if record.Slug == slug {
			return clonePage(record), nil
		}
	}
	return nil, &PageNotFoundError{Key: slug}
}

func (m *MemoryPageRepository) List(_ context.Context) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Page, 0, len(m.items))
	for _, record := range m.items {
		out = append(out, clonePage(record))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *MemoryPageRepository) ListPublished(_ context.Context) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Page, 0, len(m.items))
	for _, record := range m.items {
		if record.IsPublished {
			out = append(out, clonePage(record))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *MemoryPageRepository) ListNav(_ context.Context) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Page, 0, len(m.items))
	for _, record := range m.items {
		if record.IsPublished && record.ShowInNav {
			out = append(out, clonePage(record))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NavOrder != out[j].NavOrder {
			return out[i].NavOrder < out[j].NavOrder
		}
		if out[i].NavText != out[j].NavText {
			return out[i].NavText < out[j].NavText
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (m *MemoryPageRepository) Update(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.items[record.ID]
	if !ok {
		return nil, &PageNotFoundError{Key: strconv.FormatInt(record.ID, 10)}
	}
	for id, existing := range m.items {
		if id != record.ID && existing.Slug == record.Slug {
			return nil, ErrSlugExists
		}
	}

	updated := clonePage(record)
	updated.CreatedAt = current.CreatedAt
	m.items[record.ID] = updated
	return clonePage(updated), nil
}

func (m *MemoryPageRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return &PageNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	delete(m.items, id)
	return nil
}

func (m *MemoryPageRepository) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.items {
		if record.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func clonePage(record *Page) *Page {
	if record == nil {
		return nil
	}
	copied := *record
	return &copied
}
