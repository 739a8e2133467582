package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	goslug "github.com/goliatone/go-slug"

	"github.com/mosite/go-blog/internal/articles"
	"github.com/mosite/go-blog/internal/categories"
	"github.com/mosite/go-blog/internal/logging"
	"github.com/mosite/go-blog/internal/pages"
	"github.com/mosite/go-blog/pkg/interfaces"
)

// defaultCategory receives imported articles whose front matter names no
// category.
const defaultCategory = "General"

// ImportResult summarises one directory import.
type ImportResult struct {
	ArticlesCreated int
	PagesCreated    int
	// Failed lists files that could not be imported, with the reason.
	Failed []string
}

// Importer walks a directory tree and stores Markdown documents as articles
// or pages.
type Importer struct {
	articles   articles.Service
	categories categories.Service
	pages      pages.Service
	parser     *Parser
	logger     interfaces.Logger
}

// ImporterOption customises the importer.
type ImporterOption func(*Importer)

// WithLogger injects the importer logger.
func WithLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewImporter constructs an importer over the article, category, and page
// services.
func NewImporter(arts articles.Service, cats categories.Service, pgs pages.Service, opts ...ImporterOption) *Importer {
	i := &Importer{
		articles:   arts,
		categories: cats,
		pages:      pgs,
		parser:     NewParser(),
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportDirectory imports every .md file under fsys. Files that fail to
// parse or store are recorded in the result and skipped; the walk itself
// only fails on filesystem errors.
func (i *Importer) ImportDirectory(ctx context.Context, fsys fs.FS) (*ImportResult, error) {
	result := &ImportResult{}

	err := fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(path.Ext(filePath), ".md") {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := i.importFile(ctx, fsys, filePath, result); err != nil {
			result.Failed = append(result.Failed, fmt.Sprintf("%s: %v", filePath, err))
			i.logger.Warn("import.file.failed", "file", filePath, "error", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown: import walk: %w", err)
	}

	i.logger.Info("import.done",
		"articles", result.ArticlesCreated,
		"pages", result.PagesCreated,
		"failed", len(result.Failed))
	return result, nil
}

func (i *Importer) importFile(ctx context.Context, fsys fs.FS, filePath string, result *ImportResult) error {
	source, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return err
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return err
	}

	rendered, err := i.parser.Render(body)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = titleFromFileName(filePath)
	}

	explicitSlug := ""
	if meta.Slug != "" {
		explicitSlug, err = goslug.Normalize(meta.Slug)
		if err != nil {
			return fmt.Errorf("normalize slug: %w", err)
		}
	}

	if meta.Page {
		_, err = i.pages.Create(ctx, pages.CreatePageRequest{
			Title:           title,
			Slug:            explicitSlug,
			Content:         string(rendered),
			MetaDescription: meta.Description,
			ShowInNav:       meta.ShowInNav,
			NavOrder:        meta.NavOrder,
			NavText:         meta.NavText,
			Publish:         !meta.Draft,
		})
		if err != nil {
			return err
		}
		result.PagesCreated++
		return nil
	}

	categoryName := strings.TrimSpace(meta.Category)
	if categoryName == "" {
		categoryName = defaultCategory
	}
	category, err := i.categories.GetOrCreate(ctx, categoryName)
	if err != nil {
		return err
	}

	_, err = i.articles.Create(ctx, articles.CreateArticleRequest{
		Title:           title,
		Slug:            explicitSlug,
		Content:         string(rendered),
		MetaDescription: meta.Description,
		CategoryID:      category.ID,
		Tags:            meta.Tags,
		Publish:         !meta.Draft,
	})
	if err != nil {
		return err
	}
	result.ArticlesCreated++
	return nil
}

// titleFromFileName turns about-me.md into "About Me".
func titleFromFileName(filePath string) string {
	base := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for idx, word := range words {
		if word == "" {
			continue
		}
		words[idx] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
