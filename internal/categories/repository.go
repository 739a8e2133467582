package categories

import "context"

// Repository persists categories. Implementations must enforce name and slug
// uniqueness with storage-level constraints; the service's pre-checks are
// best effort only.
type Repository interface {
	Create(ctx context.Context, record *Category) (*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	// List returns every category ordered by name ascending.
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, record *Category) (*Category, error)
	Delete(ctx context.Context, id int64) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// DeleteAllExcept removes every category whose name differs from
	// keepName and returns the number of rows deleted. Used by the
	// test-data seeder's clear operation.
	DeleteAllExcept(ctx context.Context, keepName string) (int64, error)
}
