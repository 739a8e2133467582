package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata a Markdown document can carry ahead of its
// body.
type FrontMatter struct {
	Title       string    `yaml:"title"`
	Slug        string    `yaml:"slug"`
	Description string    `yaml:"description"`
	Category    string    `yaml:"category"`
	Tags        []string  `yaml:"tags"`
	Date        time.Time `yaml:"date"`
	Draft       bool      `yaml:"draft"`
	// Page-only fields.
	Page      bool   `yaml:"page"`
	ShowInNav bool   `yaml:"show_in_nav"`
	NavOrder  int    `yaml:"nav_order"`
	NavText   string `yaml:"nav_text"`
}

// ParseFrontMatter splits a document into its metadata and Markdown body.
// Documents without a front matter block parse as an empty FrontMatter.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("markdown: parse front matter: %w", err)
	}
	return meta, body, nil
}
