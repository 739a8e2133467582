package blog_test

import (
	"context"
	"testing"

	blog "github.com/mosite/go-blog"
	"github.com/mosite/go-blog/internal/articles"
	"github.com/mosite/go-blog/internal/categories"
	"github.com/mosite/go-blog/internal/media"
	"github.com/mosite/go-blog/internal/storage"
)

func newTestModule(t *testing.T) *blog.Module {
	t.Helper()

	db, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}

	cfg := blog.DefaultConfig()
	cfg.Media.Dir = t.TempDir()

	m, err := blog.New(cfg,
		blog.WithDB(db),
		blog.WithFileStore(media.NewMemoryStore()))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestModuleEndToEnd(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	cat, err := m.Categories().Create(ctx, categories.CreateCategoryRequest{Name: "Go"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if cat.Slug != "go" {
		t.Fatalf("expected slug go, got %q", cat.Slug)
	}

	art, err := m.Articles().Create(ctx, articles.CreateArticleRequest{
		Title:      "Hello Bun",
		Content:    "<p>First paragraph.</p>",
		CategoryID: cat.ID,
		Publish:    true,
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	if art.Slug != "hello-bun" {
		t.Fatalf("expected slug hello-bun, got %q", art.Slug)
	}

	page, err := m.Articles().ListPage(ctx, 1, articles.ListFilter{})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if page.TotalCount != 1 || len(page.Items) != 1 {
		t.Fatalf("expected one published article, got %+v", page)
	}

	counts, err := m.Articles().CategoryCounts(ctx)
	if err != nil {
		t.Fatalf("category counts: %v", err)
	}
	if len(counts) != 1 || counts[0].Slug != "go" || counts[0].ArticleCount != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}

	img, err := m.Media().Upload(ctx, media.UploadRequest{
		FileName:    "cover.png",
		Data:        []byte{1, 2, 3},
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("upload image: %v", err)
	}
	if img.ID == 0 {
		t.Fatal("expected stored image id")
	}
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Content.PageSize = 0

	if _, err := blog.New(cfg); err != blog.ErrPageSizeInvalid {
		t.Fatalf("expected ErrPageSizeInvalid, got %v", err)
	}
}

func TestSlugHelpers(t *testing.T) {
	normalized, err := blog.NormalizeSlug("Hello World")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if normalized != "hello-world" {
		t.Fatalf("expected hello-world, got %q", normalized)
	}
	if !blog.IsValidSlug("hello-world") {
		t.Fatal("expected hello-world to be valid")
	}
	if blog.IsValidSlug("Hello World") {
		t.Fatal("expected raw text to be invalid")
	}
}
