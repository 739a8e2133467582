package articles

import "context"

// Repository persists articles. Slug uniqueness is enforced with a storage
// constraint; service-level checks only reduce the collision window.
type Repository interface {
	Create(ctx context.Context, record *Article) (*Article, error)
	GetByID(ctx context.Context, id int64) (*Article, error)
	// GetBySlug loads an article with its category and tags.
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	Update(ctx context.Context, record *Article) (*Article, error)
	Delete(ctx context.Context, id int64) error
	// List returns every article, drafts included, newest first.
	List(ctx context.Context) ([]*Article, error)
	// ListPublished returns one window of published articles matching the
	// filter, ordered by created_at descending.
	ListPublished(ctx context.Context, filter ListFilter, offset, limit int) ([]*Article, error)
	// CountPublished counts the published articles matching the filter.
	CountPublished(ctx context.Context, filter ListFilter) (int, error)
	// CategoryCounts aggregates published article counts per category,
	// skipping categories with no published articles, ordered by count
	// descending and name ascending.
	CategoryCounts(ctx context.Context) ([]*CategoryCount, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// ReplaceTags rewrites the tag set of an article, creating missing
	// tags on the fly.
	ReplaceTags(ctx context.Context, articleID int64, tags []*Tag) error
	// ListTags returns every tag ordered by name ascending.
	ListTags(ctx context.Context) ([]*Tag, error)

	// BulkInsert writes a batch of articles in one statement. Used by the
	// test-data seeder.
	BulkInsert(ctx context.Context, records []*Article) error
	// DeleteAll removes every article and returns the number of rows
	// deleted. Used by the test-data seeder's clear operation.
	DeleteAll(ctx context.Context) (int64, error)
}
