package categories

import (
	"time"

	"github.com/uptrace/bun"
)

// Category groups articles under a unique name and slug.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull"        json:"name"`
	Slug        string    `bun:"slug,notnull"        json:"slug"`
	Description *string   `bun:"description"         json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}
