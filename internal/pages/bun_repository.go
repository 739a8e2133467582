package pages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/uptrace/bun"

	"github.com/mosite/go-blog/internal/storage"
)

// BunPageRepository persists pages through bun.
type BunPageRepository struct {
	db *bun.DB
}

var _ Repository = (*BunPageRepository)(nil)

// NewBunPageRepository constructs a bun-backed page repository.
func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return &BunPageRepository{db: db}
}

func (r *BunPageRepository) Create(ctx context.Context, record *Page) (*Page, error) {
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, mapPageWriteError(err)
	}
	return record, nil
}

func (r *BunPageRepository) GetByID(ctx context.Context, id int64) (*Page, error) {
	record := new(Page)
	err := r.db.NewSelect().Model(record).
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapPageReadError(err, strconv.FormatInt(id, 10))
	}
	return record, nil
}

func (r *BunPageRepository) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	record := new(Page)
	err := r.db.NewSelect().Model(record).
		Where("?TableAlias.slug = ?", slug).
		Scan(ctx)
	if err != nil {
		return nil, mapPageReadError(err, slug)
	}
	return record, nil
}

func (r *BunPageRepository) List(ctx context.Context) ([]*Page, error) {
	var records []*Page
	err := r.db.NewSelect().Model(&records).
		OrderExpr("?TableAlias.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("page repository: list: %w", err)
	}
	return records, nil
}

func (r *BunPageRepository) ListPublished(ctx context.Context) ([]*Page, error) {
	var records []*Page
	err := r.db.NewSelect().Model(&records).
		Where("?TableAlias.is_published = ?", true).
		OrderExpr("?TableAlias.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("page repository: list published: %w", err)
	}
	return records, nil
}

func (r *BunPageRepository) ListNav(ctx context.Context) ([]*Page, error) {
	var records []*Page
	err := r.db.NewSelect().Model(&records).
		Where("?TableAlias.is_published = ?", true).
		Where("?TableAlias.show_in_nav = ?", true).
		OrderExpr("?TableAlias.nav_order ASC, ?TableAlias.nav_text ASC, ?TableAlias.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("page repository: list nav: %w", err)
	}
	return records, nil
}

func (r *BunPageRepository) Update(ctx context.Context, record *Page) (*Page, error) {
	result, err := r.db.NewUpdate().Model(record).
		Column("title", "slug", "content", "meta_description",
			"show_in_nav", "nav_order", "nav_text", "nav_icon",
			"is_published", "published_at", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, mapPageWriteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("page repository: update rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &PageNotFoundError{Key: strconv.FormatInt(record.ID, 10)}
	}
	return record, nil
}

func (r *BunPageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.NewDelete().Model((*Page)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("page repository: delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("page repository: delete rows affected: %w", err)
	}
	if affected == 0 {
		return &PageNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	return nil
}

func (r *BunPageRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*Page)(nil)).
		Where("?TableAlias.slug = ?", slug).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("page repository: exists: %w", err)
	}
	return exists, nil
}

func mapPageReadError(err error, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &PageNotFoundError{Key: key}
	}
	return fmt.Errorf("page repository: %w", err)
}

func mapPageWriteError(err error) error {
	if storage.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrSlugExists, err)
	}
	return fmt.Errorf("page repository: %w", err)
}
