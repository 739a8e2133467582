package categories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mosite/go-blog/internal/logging"
	"github.com/mosite/go-blog/internal/slug"
	"github.com/mosite/go-blog/pkg/interfaces"
)

// defaultSlug labels categories whose name yields an empty slug.
const defaultSlug = "category"

// Service exposes category management use cases.
type Service interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	Update(ctx context.Context, req UpdateCategoryRequest) (*Category, error)
	Delete(ctx context.Context, id int64) error
	// GetOrCreate returns the category whose slug derives from name,
	// creating it first when absent.
	GetOrCreate(ctx context.Context, name string) (*Category, error)
}

// CreateCategoryRequest captures the fields required to create a category.
// Slug is optional; when empty it is derived from Name.
type CreateCategoryRequest struct {
	Name        string
	Slug        string
	Description *string
}

// UpdateCategoryRequest captures mutable category fields. An empty Slug keeps
// the stored slug; supplying one is an explicit re-slug decision.
type UpdateCategoryRequest struct {
	ID          int64
	Name        string
	Slug        string
	Description *string
}

// ServiceOption customises the category service.
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

// NewService constructs a category service backed by the supplied repository.
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

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, value string) (*Category, error) {
	return s.repo.GetBySlug(ctx, value)
}

func (s *service) Create(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	resolved, err := s.resolveSlug(ctx, req.Slug, name)
	if err != nil {
		return nil, err
	}

	record := &Category{
		Name:        name,
		Slug:        resolved,
		Description: req.Description,
		CreatedAt:   s.now(),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("category.created", "name", created.Name, "id", created.ID)
	return created, nil
}

func (s *service) Update(ctx context.Context, req UpdateCategoryRequest) (*Category, error) {
	if req.ID == 0 {
		return nil, ErrIDRequired
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// Slugs are never re-derived on update; an explicit value is treated
	// like a fresh creation decision.
	nextSlug := current.Slug
	if requested := strings.TrimSpace(req.Slug); requested != "" && requested != current.Slug {
		if !slug.IsValid(requested) {
			return nil, ErrSlugInvalid
		}
		if err := s.ensureSlugFree(ctx, requested, req.ID); err != nil {
			return nil, err
		}
		nextSlug = requested
	}

	current.Name = name
	current.Slug = nextSlug
	current.Description = req.Description

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	s.logger.Info("category.updated", "name", updated.Name, "id", updated.ID)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("category.deleted", "id", id)
	return nil
}

func (s *service) GetOrCreate(ctx context.Context, name string) (*Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}

	derived := slug.Basic(trimmed)
	if derived == "" {
		derived = defaultSlug
	}

	existing, err := s.repo.GetBySlug(ctx, derived)
	if err == nil {
		return existing, nil
	}
	var notFound *CategoryNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	return s.Create(ctx, CreateCategoryRequest{Name: trimmed})
}

// resolveSlug validates an explicit slug or derives one from name, then
// disambiguates against the stored set.
func (s *service) resolveSlug(ctx context.Context, explicit, name string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate != "" {
		if !slug.IsValid(candidate) {
			return "", ErrSlugInvalid
		}
	} else {
		candidate = slug.Basic(name)
		if candidate == "" {
			candidate = defaultSlug
		}
	}

	return slug.ResolveUnique(candidate, func(value string) (bool, error) {
		return s.repo.ExistsBySlug(ctx, value)
	})
}

func (s *service) ensureSlugFree(ctx context.Context, candidate string, selfID int64) error {
	existing, err := s.repo.GetBySlug(ctx, candidate)
	if err != nil {
		var notFound *CategoryNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrSlugExists
	}
	return nil
}
