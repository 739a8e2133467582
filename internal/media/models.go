package media

import (
	"time"

	"github.com/uptrace/bun"
)

// ImageAsset is an uploaded image tracked in the images table. StoredPath is
// the location inside the file store; FileName is the unique name the asset
// was stored under.
type ImageAsset struct {
	bun.BaseModel `bun:"table:images,alias:img"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	FileName     string    `bun:"file_name,notnull,unique" json:"file_name"`
	OriginalName string    `bun:"original_name,notnull" json:"original_name"`
	StoredPath   string    `bun:"stored_path,notnull" json:"stored_path"`
	ContentType  string    `bun:"content_type" json:"content_type"`
	SizeBytes    int64     `bun:"size_bytes,notnull" json:"size_bytes"`
	AltText      string    `bun:"alt_text" json:"alt_text"`
	Caption      string    `bun:"caption" json:"caption"`
	Width        int       `bun:"width,nullzero" json:"width,omitempty"`
	Height       int       `bun:"height,nullzero" json:"height,omitempty"`
	UploadedAt   time.Time `bun:"uploaded_at,notnull" json:"uploaded_at"`
}
