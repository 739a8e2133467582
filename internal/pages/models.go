package pages

import (
	"time"

	"github.com/uptrace/bun"
)

// Page is a standalone page such as "About" or "Contact".
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:pg"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	Title           string `bun:"title,notnull" json:"title"`
	Slug            string `bun:"slug,notnull,unique" json:"slug"`
	Content         string `bun:"content,notnull" json:"content"`
	MetaDescription string `bun:"meta_description" json:"meta_description"`

	ShowInNav bool   `bun:"show_in_nav,notnull,default:false" json:"show_in_nav"`
	NavOrder  int    `bun:"nav_order,notnull,default:0" json:"nav_order"`
	NavText   string `bun:"nav_text" json:"nav_text"`
	NavIcon   string `bun:"nav_icon" json:"nav_icon"`

	IsPublished bool       `bun:"is_published,notnull,default:false" json:"is_published"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull" json:"updated_at"`
}

// NavLabel is the text shown in navigation menus, falling back to the title.
func (p *Page) NavLabel() string {
	if p.NavText != "" {
		return p.NavText
	}
	return p.Title
}
