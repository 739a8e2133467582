package pages

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mosite/go-blog/internal/logging"
	"github.com/mosite/go-blog/internal/slug"
	"github.com/mosite/go-blog/pkg/interfaces"
)

// Service exposes page management and the navigation listing.
type Service interface {
	List(ctx context.Context) ([]*Page, error)
	ListPublished(ctx context.Context) ([]*Page, error)
	ListNav(ctx context.Context) ([]*Page, error)
	GetByID(ctx context.Context, id int64) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Update(ctx context.Context, req UpdatePageRequest) (*Page, error)
	Delete(ctx context.Context, id int64) error
	Publish(ctx context.Context, id int64) (*Page, error)
	Unpublish(ctx context.Context, id int64) (*Page, error)
	// SlugExists reports whether another page already holds the slug.
	// excludeID ignores one record, for edit forms checking their own slug.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// CreatePageRequest captures a new page. Slug is optional and derived from
// Title when empty.
type CreatePageRequest struct {
	Title           string
	Slug            string
	Content         string
	MetaDescription string
	ShowInNav       bool
	NavOrder        int
	NavText         string
	NavIcon         string
	Publish         bool
}

// UpdatePageRequest captures mutable page fields. An empty Slug keeps the
// stored slug.
type UpdatePageRequest struct {
	ID              int64
	Title           string
	Slug            string
	Content         string
	MetaDescription string
	ShowInNav       bool
	NavOrder        int
	NavText         string
	NavIcon         string
}

// ServiceOption customises the page service.
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

type service struct {
	repo   Repository
	logger interfaces.Logger
	now    func() time.Time
}

// NewService constructs a page service backed by the supplied repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) List(ctx context.Context) ([]*Page, error) {
	return s.repo.List(ctx)
}

func (s *service) ListPublished(ctx context.Context) ([]*Page, error) {
	return s.repo.ListPublished(ctx)
}

func (s *service) ListNav(ctx context.Context) ([]*Page, error) {
	return s.repo.ListNav(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Page, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, value string) (*Page, error) {
	return s.repo.GetBySlug(ctx, value)
}

func (s *service) Create(ctx context.Context, req CreatePageRequest) (*Page, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	candidate := strings.TrimSpace(req.Slug)
	if candidate != "" {
		if !slug.IsValid(candidate) {
			return nil, ErrSlugInvalid
		}
	} else {
		candidate = slug.Basic(title)
		if candidate == "" {
			candidate = "page"
		}
	}
	resolved, err := slug.ResolveUnique(candidate, func(value string) (bool, error) {
		return s.repo.ExistsBySlug(ctx, value)
	})
	if err != nil {
		return nil, err
	}

	meta := strings.TrimSpace(req.MetaDescription)
	now := s.now()
	record := &Page{
		Title:           title,
		Slug:            resolved,
		Content:         req.Content,
		MetaDescription: meta,
		ShowInNav:       req.ShowInNav,
		NavOrder:        req.NavOrder,
		NavText:         strings.TrimSpace(req.NavText),
		NavIcon:         strings.TrimSpace(req.NavIcon),
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

	s.logger.Info("page.created", "slug", created.Slug, "id", created.ID)
	return created, nil
}

func (s *service) Update(ctx context.Context, req UpdatePageRequest) (*Page, error) {
	if req.ID == 0 {
		return nil, ErrIDRequired
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
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

	current.Title = title
	current.Slug = nextSlug
	current.Content = req.Content
	current.MetaDescription = strings.TrimSpace(req.MetaDescription)
	current.ShowInNav = req.ShowInNav
	current.NavOrder = req.NavOrder
	current.NavText = strings.TrimSpace(req.NavText)
	current.NavIcon = strings.TrimSpace(req.NavIcon)
	current.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	s.logger.Info("page.updated", "slug", updated.Slug, "id", updated.ID)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("page.deleted", "id", id)
	return nil
}

func (s *service) Publish(ctx context.Context, id int64) (*Page, error) {
	return s.setPublished(ctx, id, true)
}

func (s *service) Unpublish(ctx context.Context, id int64) (*Page, error) {
	return s.setPublished(ctx, id, false)
}

func (s *service) setPublished(ctx context.Context, id int64, published bool) (*Page, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.IsPublished == published {
		return record, nil
	}
	record.IsPublished = published
	if published && record.PublishedAt == nil {
		now := s.now()
		record.PublishedAt = &now
	}
	record.UpdatedAt = s.now()
	return s.repo.Update(ctx, record)
}

func (s *service) SlugExists(ctx context.Context, value string, excludeID int64) (bool, error) {
	existing, err := s.repo.GetBySlug(ctx, value)
	if err != nil {
		var notFound *PageNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
