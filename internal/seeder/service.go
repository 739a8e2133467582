package seeder

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mosite/go-blog/internal/articles"
	"github.com/mosite/go-blog/internal/categories"
	"github.com/mosite/go-blog/internal/logging"
	"github.com/mosite/go-blog/internal/slug"
	"github.com/mosite/go-blog/pkg/interfaces"
)

const (
	// BatchSize is how many articles one insert carries.
	BatchSize = 1000
	// MaxPublicCount caps generation requests from unauthenticated callers.
	MaxPublicCount = 1000
	// MaxAdminCount caps generation requests overall.
	MaxAdminCount = 100000
	// KeepCategoryName is the category Clear leaves in place.
	KeepCategoryName = "General"

	// draftRatio is the fraction of generated articles left unpublished.
	draftRatio = 0.1
	// backdateDays is how far in the past generated articles can land.
	backdateDays = 365
)

// ErrCountOutOfRange is returned when a generation count is not positive or
// exceeds the admin cap.
var ErrCountOutOfRange = fmt.Errorf("seeder: count must be between 1 and %d", MaxAdminCount)

// GenerateResult summarises one generation run.
type GenerateResult struct {
	Requested int           `json:"requested_count"`
	Created   int           `json:"articles_created"`
	Batches   int           `json:"batches"`
	Duration  time.Duration `json:"-"`
}

// ClearResult summarises one clear run.
type ClearResult struct {
	ArticlesDeleted   int64         `json:"articles_deleted"`
	CategoriesDeleted int64         `json:"categories_deleted"`
	Duration          time.Duration `json:"-"`
}

// Stats reports the current seed catalog state.
type Stats struct {
	TotalCategories int                    `json:"total_categories"`
	Categories      []*categories.Category `json:"categories"`
}

// Service generates and clears bulk test data.
type Service interface {
	// EnsureCategories creates any catalog categories that are missing and
	// returns the full category list.
	EnsureCategories(ctx context.Context) ([]*categories.Category, error)
	// Generate creates count articles in batches, roughly 90% published.
	Generate(ctx context.Context, count int) (*GenerateResult, error)
	// Clear deletes every article and every category except "General".
	Clear(ctx context.Context) (*ClearResult, error)
	Stats(ctx context.Context) (*Stats, error)
}

// ServiceOption customises the seeder.
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

// WithRand injects a seeded random source, used by tests for reproducible
// runs.
func WithRand(rng *rand.Rand) ServiceOption {
	return func(s *service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithContentSize overrides how many paragraphs a generated body carries.
func WithContentSize(min, max int) ServiceOption {
	return func(s *service) {
		if min > 0 && max >= min {
			s.minParagraphs = min
			s.maxParagraphs = max
		}
	}
}

type service struct {
	articleRepo  articles.Repository
	categoryRepo categories.Repository
	logger       interfaces.Logger
	now          func() time.Time
	rng          *rand.Rand

	minParagraphs int
	maxParagraphs int
}

// NewService constructs a seeder over the article and category repositories.
func NewService(articleRepo articles.Repository, categoryRepo categories.Repository, opts ...ServiceOption) Service {
	s := &service{
		articleRepo:   articleRepo,
		categoryRepo:  categoryRepo,
		logger:        logging.NoOp(),
		now:           func() time.Time { return time.Now().UTC() },
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		minParagraphs: 100,
		maxParagraphs: 150,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) EnsureCategories(ctx context.Context) ([]*categories.Category, error) {
	existing, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]bool, len(existing))
	for _, cat := range existing {
		byName[cat.Name] = true
	}

	for _, name := range categoryNames {
		if byName[name] {
			continue
		}
		description := "Articles about " + strings.ToLower(name)
		_, err := s.categoryRepo.Create(ctx, &categories.Category{
			Name:        name,
			Slug:        slug.Substitute(name),
			Description: &description,
			CreatedAt:   s.now(),
		})
		if err != nil && !errors.Is(err, categories.ErrNameExists) {
			return nil, err
		}
	}

	return s.categoryRepo.List(ctx)
}

func (s *service) Generate(ctx context.Context, count int) (*GenerateResult, error) {
	if count < 1 || count > MaxAdminCount {
		return nil, ErrCountOutOfRange
	}

	start := s.now()
	s.logger.Info("seeder.generate.start", "count", count)

	cats, err := s.EnsureCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, errors.New("seeder: no categories available")
	}

	result := &GenerateResult{Requested: count}
	for created := 0; created < count; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		size := BatchSize
		if remaining := count - created; remaining < size {
			size = remaining
		}

		batch := make([]*articles.Article, 0, size)
		for i := 0; i < size; i++ {
			batch = append(batch, s.buildArticle(cats, created+i+1))
		}
		if err := s.articleRepo.BulkInsert(ctx, batch); err != nil {
			return nil, err
		}

		created += size
		result.Created = created
		result.Batches++
		s.logger.Info("seeder.generate.batch",
			"batch", result.Batches, "created", created, "total", count)
	}

	result.Duration = s.now().Sub(start)
	s.logger.Info("seeder.generate.done", "created", result.Created)
	return result, nil
}

func (s *service) Clear(ctx context.Context) (*ClearResult, error) {
	start := s.now()
	s.logger.Info("seeder.clear.start")

	// Articles go first because of the category foreign key.
	articlesDeleted, err := s.articleRepo.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	categoriesDeleted, err := s.categoryRepo.DeleteAllExcept(ctx, KeepCategoryName)
	if err != nil {
		return nil, err
	}

	result := &ClearResult{
		ArticlesDeleted:   articlesDeleted,
		CategoriesDeleted: categoriesDeleted,
		Duration:          s.now().Sub(start),
	}
	s.logger.Info("seeder.clear.done",
		"articles", articlesDeleted, "categories", categoriesDeleted)
	return result, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	cats, err := s.EnsureCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{TotalCategories: len(cats), Categories: cats}, nil
}

// buildArticle assembles one generated article. seq is the 1-based position
// across the whole run and keeps titles and slugs unique.
func (s *service) buildArticle(cats []*categories.Category, seq int) *articles.Article {
	category := cats[s.rng.Intn(len(cats))]
	title := s.randomTitle()
	content := s.randomContent()

	createdAt := s.now().
		AddDate(0, 0, -s.rng.Intn(backdateDays)).
		Add(-time.Duration(s.rng.Intn(24)) * time.Hour)

	published := s.rng.Float64() > draftRatio
	record := &articles.Article{
		Title:           fmt.Sprintf("%s #%d", title, seq),
		Slug:            slug.Substitute(fmt.Sprintf("%s-%d", title, seq)),
		Content:         content,
		MetaDescription: articles.DeriveMetaDescription(content),
		MetaKeywords:    s.randomKeywords(category.Name),
		CategoryID:      category.ID,
		IsPublished:     published,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	if published {
		at := createdAt
		record.PublishedAt = &at
	}
	return record
}

func (s *service) randomTitle() string {
	word1 := titleWords[s.rng.Intn(len(titleWords))]
	word2 := titleWords[s.rng.Intn(len(titleWords))]
	category := categoryNames[s.rng.Intn(len(categoryNames))]

	patterns := []string{
		fmt.Sprintf("%s %s for Developers", word1, category),
		fmt.Sprintf("%s Guide to %s", word1, category),
		fmt.Sprintf("How to %s %s Applications", word2, category),
		fmt.Sprintf("%s %s with %s", word1, word2, category),
		fmt.Sprintf("Best Practices for %s Development", category),
		fmt.Sprintf("%s %s: Tips and Tricks", word1, category),
		fmt.Sprintf("Getting Started with %s", category),
		fmt.Sprintf("%s Modern %s Solutions", word2, category),
	}
	return patterns[s.rng.Intn(len(patterns))]
}

// randomKeywords builds a comma separated keyword list starting with the
// category name, with three to five picks from the common pool deduplicated.
func (s *service) randomKeywords(categoryName string) string {
	keywords := []string{strings.ToLower(categoryName)}
	seen := map[string]bool{keywords[0]: true}

	picks := 3 + s.rng.Intn(3)
	for i := 0; i < picks; i++ {
		word := commonKeywords[s.rng.Intn(len(commonKeywords))]
		if !seen[word] {
			seen[word] = true
			keywords = append(keywords, word)
		}
	}
	return strings.Join(keywords, ", ")
}

func (s *service) randomContent() string {
	var b strings.Builder
	paragraphCount := s.minParagraphs + s.rng.Intn(s.maxParagraphs-s.minParagraphs+1)

	b.WriteString("<h2>Introduction</h2>\n")
	b.WriteString("<p>" + s.randomParagraph() + "</p>\n")

	for i := 0; i < paragraphCount; i++ {
		switch {
		case i%20 == 0 && i > 0:
			fmt.Fprintf(&b, "<h3>Section %d</h3>\n", (i/20)+1)
		case i%15 == 10:
			b.WriteString("<pre><code>\nfunc example() bool {\n\tfmt.Println(\"sample code block\")\n\treturn true\n}\n</code></pre>\n")
		case i%25 == 15:
			b.WriteString("<ul>\n")
			items := 3 + s.rng.Intn(3)
			for j := 0; j < items; j++ {
				fmt.Fprintf(&b, "<li>List item %d: %s...</li>\n", j+1, s.randomParagraph()[:50])
			}
			b.WriteString("</ul>\n")
		default:
			paragraph := s.randomParagraph()
			if s.rng.Float64() < 0.3 {
				paragraph += " " + s.randomParagraph()
			}
			b.WriteString("<p>" + paragraph + "</p>\n")
		}
	}

	b.WriteString("<h2>Conclusion</h2>\n")
	b.WriteString("<p>" + s.randomParagraph() + "</p>\n")
	return b.String()
}

func (s *service) randomParagraph() string {
	return sampleParagraphs[s.rng.Intn(len(sampleParagraphs))]
}
