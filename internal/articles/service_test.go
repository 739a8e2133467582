package articles_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mosite/go-blog/internal/articles"
	"github.com/mosite/go-blog/internal/categories"
)

type fixture struct {
	cats     *categories.MemoryCategoryRepository
	repo     *articles.MemoryArticleRepository
	svc      articles.Service
	catSvc   categories.Service
	baseTime time.Time
}

func newFixture(t *testing.T, opts ...articles.ServiceOption) *fixture {
	t.Helper()
	cats := categories.NewMemoryCategoryRepository()
	repo := articles.NewMemoryArticleRepository(cats)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	opts = append([]articles.ServiceOption{
		articles.WithClock(func() time.Time { return base }),
	}, opts...)
	return &fixture{
		cats:     cats,
		repo:     repo,
		svc:      articles.NewService(repo, opts...),
		catSvc:   categories.NewService(cats),
		baseTime: base,
	}
}

func (f *fixture) mustCategory(t *testing.T, name string) *categories.Category {
	t.Helper()
	cat, err := f.catSvc.Create(context.Background(), categories.CreateCategoryRequest{Name: name})
	if err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return cat
}

// seedPublished inserts n published articles in the given category with
// descending ages, so insertion order matches the expected listing order.
func (f *fixture) seedPublished(t *testing.T, categoryID int64, n int) []*articles.Article {
	t.Helper()
	out := make([]*articles.Article, 0, n)
	for i := 0; i < n; i++ {
		at := f.baseTime.Add(-time.Duration(i) * time.Hour)
		record := &articles.Article{
			Title:       fmt.Sprintf("Post %d", i),
			Slug:        fmt.Sprintf("post-%d-%d", categoryID, i),
			Content:     "Body.",
			CategoryID:  categoryID,
			IsPublished: true,
			PublishedAt: &at,
			CreatedAt:   at,
			UpdatedAt:   at,
		}
		created, err := f.repo.Create(context.Background(), record)
		if err != nil {
			t.Fatalf("seed article %d: %v", i, err)
		}
		out = append(out, created)
	}
	return out
}

func TestListPageWindowsAndTotals(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	f.seedPublished(t, cat.ID, 20)
	ctx := context.Background()

	first, err := f.svc.ListPage(ctx, 1, articles.ListFilter{})
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	if len(first.Items) != articles.DefaultPageSize {
		t.Fatalf("expected %d items on page 1, got %d", articles.DefaultPageSize, len(first.Items))
	}
	if first.TotalCount != 20 {
		t.Fatalf("expected total 20, got %d", first.TotalCount)
	}
	if first.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", first.TotalPages)
	}

	second, err := f.svc.ListPage(ctx, 2, articles.ListFilter{})
	if err != nil {
		t.Fatalf("page 2 failed: %v", err)
	}
	if len(second.Items) != 8 {
		t.Fatalf("expected 8 items on page 2, got %d", len(second.Items))
	}

	// No overlap between adjacent pages.
	seen := map[int64]bool{}
	for _, item := range first.Items {
		seen[item.ID] = true
	}
	for _, item := range second.Items {
		if seen[item.ID] {
			t.Fatalf("article %d appeared on both pages", item.ID)
		}
	}
}

func TestListPageClampsPageNumber(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	f.seedPublished(t, cat.ID, 5)
	ctx := context.Background()

	zero, err := f.svc.ListPage(ctx, 0, articles.ListFilter{})
	if err != nil {
		t.Fatalf("page 0 failed: %v", err)
	}
	negative, err := f.svc.ListPage(ctx, -3, articles.ListFilter{})
	if err != nil {
		t.Fatalf("page -3 failed: %v", err)
	}

	if zero.Page != 1 || negative.Page != 1 {
		t.Fatalf("expected clamp to page 1, got %d and %d", zero.Page, negative.Page)
	}
	if len(zero.Items) != 5 || len(negative.Items) != 5 {
		t.Fatalf("expected first-page items for clamped pages")
	}
}

func TestListPagePastEndIsEmptyWithTotals(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	f.seedPublished(t, cat.ID, 20)

	page, err := f.svc.ListPage(context.Background(), 3, articles.ListFilter{})
	if err != nil {
		t.Fatalf("page 3 failed: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(page.Items))
	}
	if page.TotalCount != 20 || page.TotalPages != 2 {
		t.Fatalf("expected totals to survive past the end, got count %d pages %d",
			page.TotalCount, page.TotalPages)
	}
}

func TestListPageOrdersNewestFirst(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	f.seedPublished(t, cat.ID, 6)

	page, err := f.svc.ListPage(context.Background(), 1, articles.ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i := 1; i < len(page.Items); i++ {
		if page.Items[i].CreatedAt.After(page.Items[i-1].CreatedAt) {
			t.Fatalf("items out of order at index %d", i)
		}
	}
}

func TestListPageFiltersByCategorySlug(t *testing.T) {
	f := newFixture(t)
	golang := f.mustCategory(t, "Go")
	rust := f.mustCategory(t, "Rust")
	f.seedPublished(t, golang.ID, 3)
	f.seedPublished(t, rust.ID, 2)

	page, err := f.svc.ListPage(context.Background(), 1, articles.ListFilter{CategorySlug: "go"})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if page.TotalCount != 3 {
		t.Fatalf("expected 3 matching articles, got %d", page.TotalCount)
	}
	for _, item := range page.Items {
		if item.CategoryID != golang.ID {
			t.Fatalf("article %d leaked from another category", item.ID)
		}
	}
}

func TestListPageUnknownCategoryIsEmpty(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	f.seedPublished(t, cat.ID, 3)

	page, err := f.svc.ListPage(context.Background(), 1, articles.ListFilter{CategorySlug: "missing"})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if page.TotalCount != 0 || len(page.Items) != 0 {
		t.Fatalf("expected empty result for unknown category, got %d items", len(page.Items))
	}
}

func TestListPageExcludesDrafts(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	f.seedPublished(t, cat.ID, 2)

	draft := &articles.Article{
		Title:      "Draft",
		Slug:       "draft",
		Content:    "Body.",
		CategoryID: cat.ID,
		CreatedAt:  f.baseTime,
		UpdatedAt:  f.baseTime,
	}
	if _, err := f.repo.Create(context.Background(), draft); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	page, err := f.svc.ListPage(context.Background(), 1, articles.ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("expected drafts to be excluded, got total %d", page.TotalCount)
	}
}

func TestCategoryCountsSkipEmptyAndSortByCount(t *testing.T) {
	f := newFixture(t)
	golang := f.mustCategory(t, "Go")
	rust := f.mustCategory(t, "Rust")
	f.mustCategory(t, "Empty")
	f.seedPublished(t, golang.ID, 2)
	f.seedPublished(t, rust.ID, 5)

	counts, err := f.svc.CategoryCounts(context.Background())
	if err != nil {
		t.Fatalf("category counts failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 categories with articles, got %d", len(counts))
	}
	if counts[0].Slug != "rust" || counts[0].ArticleCount != 5 {
		t.Fatalf("expected rust first with 5, got %q with %d", counts[0].Slug, counts[0].ArticleCount)
	}
	if counts[1].Slug != "go" || counts[1].ArticleCount != 2 {
		t.Fatalf("expected go second with 2, got %q with %d", counts[1].Slug, counts[1].ArticleCount)
	}
}

func TestCreateDerivesSlugAndMetaDescription(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")

	created, err := f.svc.Create(context.Background(), articles.CreateArticleRequest{
		Title:      "C# in Depth",
		Content:    "<p>First paragraph here.</p>\n\n<p>Second paragraph.</p>",
		CategoryID: cat.ID,
		Publish:    true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Slug != "csharp-in-depth" {
		t.Fatalf("expected substituted slug, got %q", created.Slug)
	}
	if created.MetaDescription != "First paragraph here." {
		t.Fatalf("expected derived meta description, got %q", created.MetaDescription)
	}
	if created.PublishedAt == nil || !created.PublishedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected published_at to match created_at, got %v", created.PublishedAt)
	}
}

func TestCreateDisambiguatesSlugs(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	ctx := context.Background()

	req := articles.CreateArticleRequest{
		Title:      "Hello World",
		Content:    "Body.",
		CategoryID: cat.ID,
	}
	first, err := f.svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := f.svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if first.Slug != "hello-world" || second.Slug != "hello-world-2" {
		t.Fatalf("unexpected slugs %q and %q", first.Slug, second.Slug)
	}
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	ctx := context.Background()

	_, err := f.svc.Create(ctx, articles.CreateArticleRequest{Content: "x", CategoryID: cat.ID})
	if !errors.Is(err, articles.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	_, err = f.svc.Create(ctx, articles.CreateArticleRequest{Title: "x", CategoryID: cat.ID})
	if !errors.Is(err, articles.ErrContentRequired) {
		t.Fatalf("expected ErrContentRequired, got %v", err)
	}
	_, err = f.svc.Create(ctx, articles.CreateArticleRequest{Title: "x", Content: "y"})
	if !errors.Is(err, articles.ErrCategoryRequired) {
		t.Fatalf("expected ErrCategoryRequired, got %v", err)
	}
}

func TestCreateWithTags(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")

	created, err := f.svc.Create(context.Background(), articles.CreateArticleRequest{
		Title:      "Tagged",
		Content:    "Body.",
		CategoryID: cat.ID,
		Tags:       []string{"Go", "go", "Testing", "  "},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(created.Tags) != 2 {
		t.Fatalf("expected deduplicated tags, got %d", len(created.Tags))
	}
}

func TestPublishTransitions(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	ctx := context.Background()

	created, err := f.svc.Create(ctx, articles.CreateArticleRequest{
		Title:      "Draft",
		Content:    "Body.",
		CategoryID: cat.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.IsPublished {
		t.Fatal("expected draft")
	}

	published, err := f.svc.Publish(ctx, created.ID)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatal("expected published article with timestamp")
	}

	unpublished, err := f.svc.Unpublish(ctx, created.ID)
	if err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if unpublished.IsPublished {
		t.Fatal("expected draft after unpublish")
	}
	if unpublished.PublishedAt == nil {
		t.Fatal("expected first publish timestamp to survive unpublish")
	}
}

func TestUpdateKeepsSlugWhenOmitted(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "General")
	ctx := context.Background()

	created, err := f.svc.Create(ctx, articles.CreateArticleRequest{
		Title:      "Original Title",
		Content:    "Body.",
		CategoryID: cat.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := f.svc.Update(ctx, articles.UpdateArticleRequest{
		ID:      created.ID,
		Title:   "Renamed Title",
		Content: "New body.",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "original-title" {
		t.Fatalf("expected slug to survive rename, got %q", updated.Slug)
	}
}

func TestGetBySlugMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, articles.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var notFound *articles.ArticleNotFoundError
	if !errors.As(err, &notFound) || notFound.Key != "missing" {
		t.Fatalf("expected typed not-found error with key, got %v", err)
	}
}

func TestListLatestLimits(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "Go")
	f.seedPublished(t, cat.ID, 5)

	latest, err := f.svc.ListLatest(context.Background(), 3)
	if err != nil {
		t.Fatalf("list latest: %v", err)
	}
	if len(latest) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(latest))
	}
	if latest[0].Title != "Post 0" || latest[2].Title != "Post 2" {
		t.Fatalf("unexpected order: %q ... %q", latest[0].Title, latest[2].Title)
	}

	none, err := f.svc.ListLatest(context.Background(), 0)
	if err != nil {
		t.Fatalf("list latest zero: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestListPublishedExcludesDrafts(t *testing.T) {
	f := newFixture(t)
	cat := f.mustCategory(t, "Go")
	f.seedPublished(t, cat.ID, 3)

	if _, err := f.svc.Create(context.Background(), articles.CreateArticleRequest{
		Title:      "Unfinished",
		Content:    "Draft body.",
		CategoryID: cat.ID,
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	published, err := f.svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(published) != 3 {
		t.Fatalf("expected 3 published articles, got %d", len(published))
	}
	for _, art := range published {
		if !art.IsPublished {
			t.Fatalf("article %q should be published", art.Title)
		}
	}
}
