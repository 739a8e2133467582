package articles

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/mosite/go-blog/internal/categories"
)

// MemoryArticleRepository is an in-memory article store for tests. Category
// joins are resolved against an optional category repository.
type MemoryArticleRepository struct {
	mu         sync.RWMutex
	nextID     int64
	nextTagID  int64
	items      map[int64]*Article
	tags       map[int64]*Tag
	links      map[int64][]int64
	categories *categories.MemoryCategoryRepository
}

var _ Repository = (*MemoryArticleRepository)(nil)

// NewMemoryArticleRepository constructs the repository. The category
// repository may be nil when tests do not exercise category filters.
func NewMemoryArticleRepository(cats *categories.MemoryCategoryRepository) *MemoryArticleRepository {
	return &MemoryArticleRepository{
		items:      make(map[int64]*Article),
		tags:       make(map[int64]*Tag),
		links:      make(map[int64][]int64),
		categories: cats,
	}
}

func (m *MemoryArticleRepository) Create(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkSlugFree(record.Slug, record.ID); err != nil {
		return nil, err
	}
	copied := m.store(record)
	return m.load(copied.ID), nil
}

func (m *MemoryArticleRepository) GetByID(_ context.Context, id int64) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.items[id]; !ok {
		return nil, &ArticleNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	return m.load(id), nil
}

func (m *MemoryArticleRepository) GetBySlug(_ context.Context, slug string) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, record := range m.items {
		if record.Slug == slug {
			return m.load(id), nil
		}
	}
	return nil, &ArticleNotFoundError{Key: slug}
}

func (m *MemoryArticleRepository) Update(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.items[record.ID]
	if !ok {
		return nil, &ArticleNotFoundError{Key: strconv.FormatInt(record.ID, 10)}
	}
	if err := m.checkSlugFree(record.Slug, record.ID); err != nil {
		return nil, err
	}

	updated := cloneArticle(record)
	updated.CreatedAt = current.CreatedAt
	m.items[record.ID] = updated
	return m.load(record.ID), nil
}

func (m *MemoryArticleRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return &ArticleNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	delete(m.items, id)
	delete(m.links, id)
	return nil
}

func (m *MemoryArticleRepository) List(_ context.Context) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := m.collect(func(*Article) bool { return true })
	return out, nil
}

func (m *MemoryArticleRepository) ListPublished(_ context.Context, filter ListFilter, offset, limit int) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := m.collect(m.publishedMatcher(filter))
	if offset >= len(out) {
		return []*Article{}, nil
	}
	out = out[offset:]
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryArticleRepository) CountPublished(_ context.Context, filter ListFilter) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matches := m.publishedMatcher(filter)
	count := 0
	for _, record := range m.items {
		if matches(record) {
			count++
		}
	}
	return count, nil
}

func (m *MemoryArticleRepository) CategoryCounts(ctx context.Context) ([]*CategoryCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byCategory := make(map[int64]int)
	for _, record := range m.items {
		if record.IsPublished {
			byCategory[record.CategoryID]++
		}
	}

	out := make([]*CategoryCount, 0, len(byCategory))
	for categoryID, count := range byCategory {
		entry := &CategoryCount{CategoryID: categoryID, ArticleCount: count}
		if m.categories != nil {
			if cat, err := m.categories.GetByID(ctx, categoryID); err == nil {
				entry.Name = cat.Name
				entry.Slug = cat.Slug
			}
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ArticleCount != out[j].ArticleCount {
			return out[i].ArticleCount > out[j].ArticleCount
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *MemoryArticleRepository) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.items {
		if record.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryArticleRepository) ReplaceTags(_ context.Context, articleID int64, tags []*Tag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[articleID]; !ok {
		return &ArticleNotFoundError{Key: strconv.FormatInt(articleID, 10)}
	}

	ids := make([]int64, 0, len(tags))
	for _, tag := range tags {
		existing := m.tagBySlug(tag.Slug)
		if existing == nil {
			m.nextTagID++
			existing = &Tag{ID: m.nextTagID, Name: tag.Name, Slug: tag.Slug}
			m.tags[existing.ID] = existing
		} else {
			existing.Name = tag.Name
		}
		tag.ID = existing.ID
		ids = append(ids, existing.ID)
	}
	m.links[articleID] = ids
	return nil
}

func (m *MemoryArticleRepository) ListTags(_ context.Context) ([]*Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Tag, 0, len(m.tags))
	for _, tag := range m.tags {
		copied := *tag
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryArticleRepository) BulkInsert(_ context.Context, records []*Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range records {
		if err := m.checkSlugFree(record.Slug, record.ID); err != nil {
			return err
		}
	}
	for _, record := range records {
		stored := m.store(record)
		record.ID = stored.ID
	}
	return nil
}

func (m *MemoryArticleRepository) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deleted := int64(len(m.items))
	m.items = make(map[int64]*Article)
	m.links = make(map[int64][]int64)
	return deleted, nil
}

func (m *MemoryArticleRepository) store(record *Article) *Article {
	copied := cloneArticle(record)
	if copied.ID == 0 {
		m.nextID++
		copied.ID = m.nextID
	} else if copied.ID > m.nextID {
		m.nextID = copied.ID
	}
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now().UTC()
	}
	if copied.UpdatedAt.IsZero() {
		copied.UpdatedAt = copied.CreatedAt
	}
	m.items[copied.ID] = copied
	return copied
}

// load assembles an article with its relations. Callers hold the lock.
func (m *MemoryArticleRepository) load(id int64) *Article {
	record := cloneArticle(m.items[id])
	if m.categories != nil {
		if cat, err := m.categories.GetByID(context.Background(), record.CategoryID); err == nil {
			record.Category = cat
		}
	}
	for _, tagID := range m.links[id] {
		if tag, ok := m.tags[tagID]; ok {
			copied := *tag
			record.Tags = append(record.Tags, &copied)
		}
	}
	return record
}

func (m *MemoryArticleRepository) collect(matches func(*Article) bool) []*Article {
	out := make([]*Article, 0, len(m.items))
	for id, record := range m.items {
		if matches(record) {
			out = append(out, m.load(id))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (m *MemoryArticleRepository) publishedMatcher(filter ListFilter) func(*Article) bool {
	var categoryID int64 = -1
	if filter.CategorySlug != "" && m.categories != nil {
		if cat, err := m.categories.GetBySlug(context.Background(), filter.CategorySlug); err == nil {
			categoryID = cat.ID
		}
	}
	return func(record *Article) bool {
		if !record.IsPublished {
			return false
		}
		if filter.CategorySlug == "" {
			return true
		}
		return record.CategoryID == categoryID
	}
}

func (m *MemoryArticleRepository) checkSlugFree(slug string, selfID int64) error {
	for id, existing := range m.items {
		if id == selfID {
			continue
		}
		if existing.Slug == slug {
			return ErrSlugExists
		}
	}
	return nil
}

func (m *MemoryArticleRepository) tagBySlug(slug string) *Tag {
	for _, tag := range m.tags {
		if tag.Slug == slug {
			return tag
		}
	}
	return nil
}

func cloneArticle(record *Article) *Article {
	if record == nil {
		return nil
	}
	copied := *record
	copied.Category = nil
	copied.Tags = nil
	if record.PublishedAt != nil {
		at := *record.PublishedAt
		copied.PublishedAt = &at
	}
	return &copied
}
