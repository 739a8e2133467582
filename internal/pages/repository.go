package pages

import "context"

// Repository persists standalone pages.
type Repository interface {
	Create(ctx context.Context, record *Page) (*Page, error)
	GetByID(ctx context.Context, id int64) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	// List returns every page, drafts included, ordered by title.
	List(ctx context.Context) ([]*Page, error)
	// ListPublished returns published pages ordered by title.
	ListPublished(ctx context.Context) ([]*Page, error)
	// ListNav returns published pages flagged for navigation, ordered by
	// nav_order then nav_text, title breaking remaining ties.
	ListNav(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, record *Page) (*Page, error)
	Delete(ctx context.Context, id int64) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
