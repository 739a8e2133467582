package articles

import (
	"context"
	"strings"
	"time"

	"github.com/mosite/go-blog/internal/logging"
	"github.com/mosite/go-blog/internal/slug"
	"github.com/mosite/go-blog/pkg/interfaces"
)

// DefaultPageSize is how many articles a listing page holds unless the
// caller overrides it.
const DefaultPageSize = 12

// Service exposes article management and the public listing surface.
type Service interface {
	// ListPage returns one window of published articles. Page numbers
	// below one are treated as the first page.
	ListPage(ctx context.Context, page int, filter ListFilter) (*Page, error)
	// ListLatest returns the n most recently created published articles.
	ListLatest(ctx context.Context, n int) ([]*Article, error)
	// ListPublished returns every published article, newest first.
	ListPublished(ctx context.Context) ([]*Article, error)
	List(ctx context.Context) ([]*Article, error)
	GetByID(ctx context.Context, id int64) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	Create(ctx context.Context, req CreateArticleRequest) (*Article, error)
	Update(ctx context.Context, req UpdateArticleRequest) (*Article, error)
	Delete(ctx context.Context, id int64) error
	Publish(ctx context.Context, id int64) (*Article, error)
	Unpublish(ctx context.Context, id int64) (*Article, error)
	// CategoryCounts lists categories that hold published articles,
	// busiest first.
	CategoryCounts(ctx context.Context) ([]*CategoryCount, error)
	ListTags(ctx context.Context) ([]*Tag, error)
}

// CreateArticleRequest captures a new article. Slug and MetaDescription are
// optional; when empty they are derived from Title and Content.
type CreateArticleRequest struct {
	Title           string
	Slug            string
	Content         string
	MetaDescription string
	MetaKeywords    string
	CategoryID      int64
	Tags            []string
	Publish         bool
}

// UpdateArticleRequest captures mutable article fields. An empty Slug keeps
// the stored slug. A nil Tags leaves the tag set alone; an empty non-nil
// slice clears it.
type UpdateArticleRequest struct {
	ID              int64
	Title           string
	Slug            string
	Content         string
	MetaDescription string
	MetaKeywords    string
	CategoryID      int64
	Tags            []string
}

// ServiceOption customises the article service.
type ServiceOption func(*service)

// WithLogger injects the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPageSize overrides the listing page size.
func WithPageSize(size int) ServiceOption {
	return func(s *service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

type service struct {
	repo     Repository
	logger   interfaces.Logger
	now      func() time.Time
	pageSize int
}

// NewService constructs an article service backed by the supplied repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:     repo,
		logger:   logging.NoOp(),
		now:      func() time.Time { return time.Now().UTC() },
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListPage(ctx context.Context, page int, filter ListFilter) (*Page, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.CountPublished(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + s.pageSize - 1) / s.pageSize
	offset := (page - 1) * s.pageSize

	items := []*Article{}
	if total > 0 && offset < total {
		items, err = s.repo.ListPublished(ctx, filter, offset, s.pageSize)
		if err != nil {
			return nil, err
		}
	}

	return &Page{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   s.pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *service) ListLatest(ctx context.Context, n int) ([]*Article, error) {
	if n < 1 {
		return []*Article{}, nil
	}
	return s.repo.ListPublished(ctx, ListFilter{}, 0, n)
}

func (s *service) ListPublished(ctx context.Context) ([]*Article, error) {
	total, err := s.repo.CountPublished(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []*Article{}, nil
	}
	return s.repo.ListPublished(ctx, ListFilter{}, 0, total)
}

func (s *service) List(ctx context.Context) ([]*Article, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, value string) (*Article, error) {
	return s.repo.GetBySlug(ctx, value)
}

func (s *service) Create(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if req.CategoryID == 0 {
		return nil, ErrCategoryRequired
	}

	resolved, err := s.resolveSlug(ctx, req.Slug, title)
	if err != nil {
		return nil, err
	}

	meta := strings.TrimSpace(req.MetaDescription)
	if meta == "" {
		meta = DeriveMetaDescription(req.Content)
	}

	now := s.now()
	record := &Article{
		Title:           title,
		Slug:            resolved,
		Content:         req.Content,
		MetaDescription: meta,
		MetaKeywords:    strings.TrimSpace(req.MetaKeywords),
		CategoryID:      req.CategoryID,
		IsPublished:     req.Publish,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Publish {
		record.PublishedAt = &now
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	if len(req.Tags) > 0 {
		if err := s.replaceTags(ctx, created.ID, req.Tags); err != nil {
			return nil, err
		}
		created, err = s.repo.GetByID(ctx, created.ID)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("article.created", "slug", created.Slug, "id", created.ID)
	return created, nil
}

func (s *service) Update(ctx context.Context, req UpdateArticleRequest) (*Article, error) {
	if req.ID == 0 {
		return nil, ErrIDRequired
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	nextSlug := current.Slug
	if requested := strings.TrimSpace(req.Slug); requested != "" && requested != current.Slug {
		if !slug.IsValid(requested) {
			return nil, ErrSlugInvalid
		}
		taken, err := s.repo.ExistsBySlug(ctx, requested)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugExists
		}
		nextSlug = requested
	}

	meta := strings.TrimSpace(req.MetaDescription)
	if meta == "" {
		meta = DeriveMetaDescription(req.Content)
	}

	current.Title = title
	current.Slug = nextSlug
	current.Content = req.Content
	current.MetaDescription = meta
	current.MetaKeywords = strings.TrimSpace(req.MetaKeywords)
	if req.CategoryID != 0 {
		current.CategoryID = req.CategoryID
	}
	current.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	if req.Tags != nil {
		if err := s.replaceTags(ctx, updated.ID, req.Tags); err != nil {
			return nil, err
		}
	}

	s.logger.Info("article.updated", "slug", updated.Slug, "id", updated.ID)
	return s.repo.GetByID(ctx, updated.ID)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("article.deleted", "id", id)
	return nil
}

func (s *service) Publish(ctx context.Context, id int64) (*Article, error) {
	return s.setPublished(ctx, id, true)
}

func (s *service) Unpublish(ctx context.Context, id int64) (*Article, error) {
	return s.setPublished(ctx, id, false)
}

func (s *service) setPublished(ctx context.Context, id int64, published bool) (*Article, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.IsPublished == published {
		return record, nil
	}

	record.IsPublished = published
	record.UpdatedAt = s.now()
	if published && record.PublishedAt == nil {
		at := record.UpdatedAt
		record.PublishedAt = &at
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("article.publish", "id", id, "published", published)
	return updated, nil
}

func (s *service) CategoryCounts(ctx context.Context) ([]*CategoryCount, error) {
	return s.repo.CategoryCounts(ctx)
}

func (s *service) ListTags(ctx context.Context) ([]*Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *service) replaceTags(ctx context.Context, articleID int64, names []string) error {
	tags := make([]*Tag, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		tagSlug := slug.Basic(trimmed)
		if tagSlug == "" || seen[tagSlug] {
			continue
		}
		seen[tagSlug] = true
		tags = append(tags, &Tag{Name: trimmed, Slug: tagSlug})
	}
	return s.repo.ReplaceTags(ctx, articleID, tags)
}

// resolveSlug validates an explicit slug or derives one from the title with
// character substitutions, then disambiguates against the stored set.
func (s *service) resolveSlug(ctx context.Context, explicit, title string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate != "" {
		if !slug.IsValid(candidate) {
			return "", ErrSlugInvalid
		}
	} else {
		candidate = slug.Substitute(title)
		if candidate == "" {
			candidate = "article"
		}
	}

	return slug.ResolveUnique(candidate, func(value string) (bool, error) {
		return s.repo.ExistsBySlug(ctx, value)
	})
}
