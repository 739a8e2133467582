package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/uptrace/bun"

	"github.com/mosite/go-blog/internal/storage"
)

// BunArticleRepository persists articles through bun.
type BunArticleRepository struct {
	db *bun.DB
}

var _ Repository = (*BunArticleRepository)(nil)

// NewBunArticleRepository constructs a bun-backed article repository. The
// article/tag join table has to be registered before bun can resolve the
// m2m relation.
func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	db.RegisterModel((*ArticleTag)(nil))
	return &BunArticleRepository{db: db}
}

func (r *BunArticleRepository) Create(ctx context.Context, record *Article) (*Article, error) {
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, mapArticleWriteError(err)
	}
	return record, nil
}

func (r *BunArticleRepository) GetByID(ctx context.Context, id int64) (*Article, error) {
	record := new(Article)
	err := r.db.NewSelect().Model(record).
		Relation("Category").
		Relation("Tags").
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapArticleReadError(err, strconv.FormatInt(id, 10))
	}
	return record, nil
}

func (r *BunArticleRepository) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	record := new(Article)
	err := r.db.NewSelect().Model(record).
		Relation("Category").
		Relation("Tags").
		Where("?TableAlias.slug = ?", slug).
		Scan(ctx)
	if err != nil {
		return nil, mapArticleReadError(err, slug)
	}
	return record, nil
}

func (r *BunArticleRepository) Update(ctx context.Context, record *Article) (*Article, error) {
	result, err := r.db.NewUpdate().Model(record).
		Column("title", "slug", "content", "meta_description", "meta_keywords", "category_id",
			"is_published", "published_at", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, mapArticleWriteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("article repository: update rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &ArticleNotFoundError{Key: strconv.FormatInt(record.ID, 10)}
	}
	return record, nil
}

func (r *BunArticleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*ArticleTag)(nil)).
			Where("?TableAlias.article_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("article repository: delete tags: %w", err)
		}
		result, err := tx.NewDelete().Model((*Article)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("article repository: delete: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("article repository: delete rows affected: %w", err)
		}
		if affected == 0 {
			return &ArticleNotFoundError{Key: strconv.FormatInt(id, 10)}
		}
		return nil
	})
}

func (r *BunArticleRepository) List(ctx context.Context) ([]*Article, error) {
	var records []*Article
	err := r.db.NewSelect().Model(&records).
		Relation("Category").
		OrderExpr("?TableAlias.created_at DESC, ?TableAlias.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("article repository: list: %w", err)
	}
	return records, nil
}

func (r *BunArticleRepository) ListPublished(ctx context.Context, filter ListFilter, offset, limit int) ([]*Article, error) {
	var records []*Article
	query := r.db.NewSelect().Model(&records).
		Relation("Category").
		Where("?TableAlias.is_published = ?", true)
	query = applyArticleFilter(query, filter)
	err := query.
		OrderExpr("?TableAlias.created_at DESC, ?TableAlias.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("article repository: list published: %w", err)
	}
	return records, nil
}

func (r *BunArticleRepository) CountPublished(ctx context.Context, filter ListFilter) (int, error) {
	query := r.db.NewSelect().Model((*Article)(nil)).
		Where("?TableAlias.is_published = ?", true)
	query = applyArticleFilter(query, filter)
	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("article repository: count published: %w", err)
	}
	return count, nil
}

func (r *BunArticleRepository) CategoryCounts(ctx context.Context) ([]*CategoryCount, error) {
	var counts []*CategoryCount
	err := r.db.NewSelect().
		TableExpr("categories AS cat").
		ColumnExpr("cat.id AS category_id").
		ColumnExpr("cat.name AS name").
		ColumnExpr("cat.slug AS slug").
		ColumnExpr("COUNT(art.id) AS article_count").
		Join("INNER JOIN articles AS art ON art.category_id = cat.id").
		Where("art.is_published = ?", true).
		GroupExpr("cat.id, cat.name, cat.slug").
		OrderExpr("article_count DESC, cat.name ASC").
		Scan(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("article repository: category counts: %w", err)
	}
	return counts, nil
}

func (r *BunArticleRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.NewSelect().Model((*Article)(nil)).
		Where("?TableAlias.slug = ?", slug).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("article repository: exists: %w", err)
	}
	return exists, nil
}

func (r *BunArticleRepository) ReplaceTags(ctx context.Context, articleID int64, tags []*Tag) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*ArticleTag)(nil)).
			Where("?TableAlias.article_id = ?", articleID).
			Exec(ctx); err != nil {
			return fmt.Errorf("article repository: clear tags: %w", err)
		}
		for _, tag := range tags {
			if _, err := tx.NewInsert().Model(tag).
				On("CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name").
				Exec(ctx); err != nil {
				return fmt.Errorf("article repository: upsert tag: %w", err)
			}
			if tag.ID == 0 {
				if err := tx.NewSelect().Model(tag).
					Where("?TableAlias.slug = ?", tag.Slug).
					Scan(ctx); err != nil {
					return fmt.Errorf("article repository: reload tag: %w", err)
				}
			}
			link := &ArticleTag{ArticleID: articleID, TagID: tag.ID}
			if _, err := tx.NewInsert().Model(link).
				On("CONFLICT DO NOTHING").
				Exec(ctx); err != nil {
				return fmt.Errorf("article repository: link tag: %w", err)
			}
		}
		return nil
	})
}

func (r *BunArticleRepository) ListTags(ctx context.Context) ([]*Tag, error) {
	var tags []*Tag
	err := r.db.NewSelect().Model(&tags).
		OrderExpr("?TableAlias.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("article repository: list tags: %w", err)
	}
	return tags, nil
}

func (r *BunArticleRepository) BulkInsert(ctx context.Context, records []*Article) error {
	if len(records) == 0 {
		return nil
	}
	if _, err := r.db.NewInsert().Model(&records).Exec(ctx); err != nil {
		return mapArticleWriteError(err)
	}
	return nil
}

func (r *BunArticleRepository) DeleteAll(ctx context.Context) (int64, error) {
	var affected int64
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*ArticleTag)(nil)).
			Where("1 = 1").
			Exec(ctx); err != nil {
			return fmt.Errorf("article repository: delete all tags: %w", err)
		}
		result, err := tx.NewDelete().Model((*Article)(nil)).
			Where("1 = 1").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("article repository: delete all: %w", err)
		}
		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("article repository: delete all rows affected: %w", err)
		}
		return nil
	})
	return affected, err
}

func applyArticleFilter(query *bun.SelectQuery, filter ListFilter) *bun.SelectQuery {
	if filter.CategorySlug != "" {
		query = query.
			Join("INNER JOIN categories AS cat ON cat.id = ?TableAlias.category_id").
			Where("cat.slug = ?", filter.CategorySlug)
	}
	return query
}

func mapArticleReadError(err error, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &ArticleNotFoundError{Key: key}
	}
	return fmt.Errorf("article repository: %w", err)
}

func mapArticleWriteError(err error) error {
	if storage.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrSlugExists, err)
	}
	return fmt.Errorf("article repository: %w", err)
}
