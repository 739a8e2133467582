package articles

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/mosite/go-blog/internal/categories"
)

// Article is a blog post persisted in the articles table.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:art"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	Title           string `bun:"title,notnull" json:"title"`
	Slug            string `bun:"slug,notnull,unique" json:"slug"`
	Content         string `bun:"content,notnull" json:"content"`
	MetaDescription string `bun:"meta_description" json:"meta_description"`
	MetaKeywords    string `bun:"meta_keywords" json:"meta_keywords"`

	CategoryID int64                `bun:"category_id,notnull" json:"category_id"`
	Category   *categories.Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`

	IsPublished bool       `bun:"is_published,notnull,default:false" json:"is_published"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`

	Tags []*Tag `bun:"m2m:article_tags,join:Article=Tag" json:"tags,omitempty"`
}

// Tag labels articles across categories.
type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:tag"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull,unique" json:"name"`
	Slug string `bun:"slug,notnull,unique" json:"slug"`
}

// ArticleTag joins articles to tags.
type ArticleTag struct {
	bun.BaseModel `bun:"table:article_tags,alias:artag"`

	ArticleID int64    `bun:"article_id,pk" json:"article_id"`
	TagID     int64    `bun:"tag_id,pk" json:"tag_id"`
	Article   *Article `bun:"rel:belongs-to,join:article_id=id" json:"-"`
	Tag       *Tag     `bun:"rel:belongs-to,join:tag_id=id" json:"-"`
}

// ListFilter narrows published listings. A zero value selects everything.
type ListFilter struct {
	CategorySlug string
}

// Page is one window of a published listing together with the totals the
// caller needs to render pagination controls.
type Page struct {
	Items      []*Article `json:"items"`
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// CategoryCount reports how many published articles a category holds.
type CategoryCount struct {
	CategoryID   int64  `bun:"category_id" json:"category_id"`
	Name         string `bun:"name" json:"name"`
	Slug         string `bun:"slug" json:"slug"`
	ArticleCount int    `bun:"article_count" json:"article_count"`
}
