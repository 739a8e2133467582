package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/uptrace/bun"
)

// BunImageRepository persists image metadata through bun.
type BunImageRepository struct {
	db *bun.DB
}

var _ Repository = (*BunImageRepository)(nil)

// NewBunImageRepository constructs a bun-backed image repository.
func NewBunImageRepository(db *bun.DB) *BunImageRepository {
	return &BunImageRepository{db: db}
}

func (r *BunImageRepository) Create(ctx context.Context, record *ImageAsset) (*ImageAsset, error) {
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, fmt.Errorf("image repository: create: %w", err)
	}
	return record, nil
}

func (r *BunImageRepository) GetByID(ctx context.Context, id int64) (*ImageAsset, error) {
	record := new(ImageAsset)
	err := r.db.NewSelect().Model(record).
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapImageReadError(err, strconv.FormatInt(id, 10))
	}
	return record, nil
}

func (r *BunImageRepository) GetByFileName(ctx context.Context, fileName string) (*ImageAsset, error) {
	record := new(ImageAsset)
	err := r.db.NewSelect().Model(record).
		Where("?TableAlias.file_name = ?", fileName).
		Scan(ctx)
	if err != nil {
		return nil, mapImageReadError(err, fileName)
	}
	return record, nil
}

func (r *BunImageRepository) List(ctx context.Context) ([]*ImageAsset, error) {
	var records []*ImageAsset
	err := r.db.NewSelect().Model(&records).
		OrderExpr("?TableAlias.uploaded_at DESC, ?TableAlias.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("image repository: list: %w", err)
	}
	return records, nil
}

func (r *BunImageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.NewDelete().Model((*ImageAsset)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("image repository: delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("image repository: delete rows affected: %w", err)
	}
	if affected == 0 {
		return &ImageNotFoundError{Key: strconv.FormatInt(id, 10)}
	}
	return nil
}

func (r *BunImageRepository) ExistsByFileName(ctx context.Context, fileName string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*ImageAsset)(nil)).
		Where("?TableAlias.file_name = ?", fileName).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("image repository: exists: %w", err)
	}
	return exists, nil
}

func mapImageReadError(err error, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &ImageNotFoundError{Key: key}
	}
	return fmt.Errorf("image repository: %w", err)
}
