package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/uptrace/bun"

	"github.com/mosite/go-blog/internal/storage"
)

// BunCategoryRepository persists categories through bun.
type BunCategoryRepository struct {
	db *bun.DB
}

var _ Repository = (*BunCategoryRepository)(nil)

// NewBunCategoryRepository constructs a bun-backed category repository.
func NewBunCategoryRepository(db *bun.DB) *BunCategoryRepository {
	return &BunCategoryRepository{db: db}
}

func (r *BunCategoryRepository) Create(ctx context.Context, record *Category) (*Category, error) {
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, mapCategoryWriteError(err)
	}
	return record, nil
}

func (r *BunCategoryRepository) GetByID(ctx context.Context, id int64) (*Category, error) {
	record := new(Category)
	err := r.db.NewSelect().Model(record).
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapCategoryReadError(err, strconv.FormatInt(id, 10))
	}
	return record, nil
}

func (r *BunCategoryRepository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	record := new(Category)
	err := r.db.NewSelect().Model(record).
		Where("?TableAlias.slug = ?", slug).
		Scan(ctx)
	if err != nil {
		return nil, mapCategoryReadError(err, slug)
	}
	return record, nil
}

func (r *BunCategoryRepository) GetByName(ctx context.Context, name string) (*Category, error) {
	record := new(Category)
	err := r.db.NewSelect().Model(record).
		Where("?TableAlias.name = ?", name).
		Scan(ctx)
	if err != nil {
		return nil, mapCategoryReadError(err, name)
	}
	return record, nil
}

func (r *BunCategoryRepository) List(ctx context.Context) ([]*Category, error) {
	var records []*Category
	err := r.db.NewSelect().Model(&records).
		OrderExpr("?TableAlias.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("category repository: list: %w", err)
	}
	return records, nil
}

func (r *BunCategoryRepository) Update(ctx context.Context, record *Category) (*Category, error) {
	result, err := r.db.NewUpdate().Model(record).
		Column("name", "slug", "description").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, mapCategoryWriteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("category repository: update rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &CategoryNotFoundError{Key: strconv.FormatInt(record.ID, 10)}
	}
	return record, nil
}

func (r *BunCategoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.NewDelete().Model((*Category)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("category repository: delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("category repository: delete rows affected: %w", err)
	}
	if affected == 0 {
		return &CategoryNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	return nil
}

func (r *BunCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*Category)(nil)).
		Where("?TableAlias.slug = ?", slug).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("category repository: exists: %w", err)
	}
	return exists, nil
}

func (r *BunCategoryRepository) DeleteAllExcept(ctx context.Context, keepName string) (int64, error) {
	result, err := r.db.NewDelete().Model((*Category)(nil)).
		Where("?TableAlias.name != ?", keepName).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("category repository: delete all: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("category repository: delete all rows affected: %w", err)
	}
	return affected, nil
}

func mapCategoryReadError(err error, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &CategoryNotFoundError{Key: key}
	}
	return fmt.Errorf("category repository: %w", err)
}

func mapCategoryWriteError(err error) error {
	if storage.IsUniqueViolation(err) {
		if strings.Contains(err.Error(), ".slug") {
			return fmt.Errorf("%w: %s", ErrSlugExists, err)
		}
		return fmt.Errorf("%w: %s", ErrNameExists, err)
	}
	return fmt.Errorf("category repository: %w", err)
}
