// Package blog is the core of a personal blog: articles grouped into
// categories, standalone pages, image uploads, and bulk test-data tooling.
package blog

import (
	"github.com/uptrace/bun"

	"github.com/mosite/go-blog/internal/articles"
	"github.com/mosite/go-blog/internal/categories"
	"github.com/mosite/go-blog/internal/logging"
	"github.com/mosite/go-blog/internal/logging/gologger"
	"github.com/mosite/go-blog/internal/markdown"
	"github.com/mosite/go-blog/internal/media"
	"github.com/mosite/go-blog/internal/pages"
	"github.com/mosite/go-blog/internal/seeder"
	"github.com/mosite/go-blog/internal/storage"
	"github.com/mosite/go-blog/pkg/interfaces"
)

// ArticleService exports the article service contract for consumers of the
// blog package.
type ArticleService = articles.Service

// CategoryService exports the category service contract.
type CategoryService = categories.Service

// PageService exports the page service contract.
type PageService = pages.Service

// MediaService exports the media service contract.
type MediaService = media.Service

// SeederService exports the test-data seeder contract.
type SeederService = seeder.Service

// Module is the top level blog runtime façade. Construct one with New and
// reach the services through its accessors.
type Module struct {
	db       *bun.DB
	provider interfaces.LoggerProvider

	articles   articles.Service
	categories categories.Service
	pages      pages.Service
	media      media.Service
	seeder     seeder.Service
	importer   *markdown.Importer
}

// Option overrides a Module dependency before wiring.
type Option func(*moduleDeps)

type moduleDeps struct {
	db       *bun.DB
	provider interfaces.LoggerProvider
	files    interfaces.FileStore
}

// WithDB injects an existing database handle. The module then skips opening
// one from the storage config.
func WithDB(db *bun.DB) Option {
	return func(d *moduleDeps) {
		d.db = db
	}
}

// WithLoggerProvider injects the logger provider used across services.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) {
		if provider != nil {
			d.provider = provider
		}
	}
}

// WithFileStore injects the binary store backing image uploads.
func WithFileStore(store interfaces.FileStore) Option {
	return func(d *moduleDeps) {
		if store != nil {
			d.files = store
		}
	}
}

// New constructs a blog module from configuration, opening the database and
// running pending migrations unless overridden through options.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &moduleDeps{}
	for _, opt := range opts {
		opt(deps)
	}

	if deps.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		deps.provider = provider
	}

	if deps.db == nil {
		db, err := storage.Open(storage.Config{
			Driver: cfg.Storage.Driver,
			DSN:    cfg.Storage.DSN,
		})
		if err != nil {
			return nil, err
		}
		deps.db = db
	}
	if cfg.Storage.Migrate {
		if err := storage.Migrate(deps.db, GetMigrationsFS(), "data/sql/migrations"); err != nil {
			return nil, err
		}
	}

	if deps.files == nil {
		store, err := media.NewLocalStore(cfg.Media.Dir)
		if err != nil {
			return nil, err
		}
		deps.files = store
	}

	categoryRepo := categories.NewBunCategoryRepository(deps.db)
	articleRepo := articles.NewBunArticleRepository(deps.db)
	pageRepo := pages.NewBunPageRepository(deps.db)
	imageRepo := media.NewBunImageRepository(deps.db)

	m := &Module{
		db:       deps.db,
		provider: deps.provider,
	}
	m.categories = categories.NewService(categoryRepo,
		categories.WithLogger(logging.CategoriesLogger(deps.provider)))
	m.articles = articles.NewService(articleRepo,
		articles.WithLogger(logging.ArticlesLogger(deps.provider)),
		articles.WithPageSize(cfg.Content.PageSize))
	m.pages = pages.NewService(pageRepo,
		pages.WithLogger(logging.PagesLogger(deps.provider)))
	m.media = media.NewService(imageRepo, deps.files,
		media.WithLogger(logging.MediaLogger(deps.provider)))
	m.seeder = seeder.NewService(articleRepo, categoryRepo,
		seeder.WithLogger(logging.SeederLogger(deps.provider)))
	m.importer = markdown.NewImporter(m.articles, m.categories, m.pages,
		markdown.WithLogger(logging.ImporterLogger(deps.provider)))

	return m, nil
}

// DB exposes the underlying database handle for advanced integrations.
func (m *Module) DB() *bun.DB {
	return m.db
}

// Close releases the database handle.
func (m *Module) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}

// Articles returns the configured article service.
func (m *Module) Articles() ArticleService {
	return m.articles
}

// Categories returns the configured category service.
func (m *Module) Categories() CategoryService {
	return m.categories
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	return m.pages
}

// Media returns the configured media service.
func (m *Module) Media() MediaService {
	return m.media
}

// Seeder returns the test-data seeder.
func (m *Module) Seeder() SeederService {
	return m.seeder
}

// Importer returns the Markdown directory importer.
func (m *Module) Importer() *markdown.Importer {
	return m.importer
}

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, module)
}
