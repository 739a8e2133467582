package main

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	blog "github.com/mosite/go-blog"
	"github.com/mosite/go-blog/internal/articles"
	"github.com/mosite/go-blog/internal/media"
	"github.com/mosite/go-blog/internal/pages"
	"github.com/mosite/go-blog/internal/storage"
)

func newTestServer(t *testing.T) (*blog.Module, http.Handler) {
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

	return m, newRouter(m, m.Logger("blog.server.test"))
}

func doJSON(t *testing.T, h http.Handler, method, target string, want int) map[string]any {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != want {
		t.Fatalf("%s %s: expected status %d, got %d (%s)", method, target, want, rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, target, err)
	}
	return body
}

func seedArticle(t *testing.T, m *blog.Module, title string, publish bool) *articles.Article {
	t.Helper()
	ctx := context.Background()

	cat, err := m.Categories().GetOrCreate(ctx, "Go")
	if err != nil {
		t.Fatalf("get or create category: %v", err)
	}
	art, err := m.Articles().Create(ctx, articles.CreateArticleRequest{
		Title:      title,
		Content:    "<p>Body text.</p>",
		CategoryID: cat.ID,
		Publish:    publish,
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	return art
}

func TestListArticlesEndpoint(t *testing.T) {
	m, h := newTestServer(t)
	seedArticle(t, m, "First Post", true)
	seedArticle(t, m, "Second Post", true)
	seedArticle(t, m, "Hidden Draft", false)

	body := doJSON(t, h, http.MethodGet, "/api/articles?page=1", http.StatusOK)

	if got := body["total_count"].(float64); got != 2 {
		t.Fatalf("expected 2 published articles, got %v", got)
	}
	items := body["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestListArticlesFiltersByCategory(t *testing.T) {
	m, h := newTestServer(t)
	seedArticle(t, m, "Go Post", true)

	body := doJSON(t, h, http.MethodGet, "/api/articles?category=rust", http.StatusOK)
	if got := body["total_count"].(float64); got != 0 {
		t.Fatalf("expected empty result for unknown category, got %v items", got)
	}
}

func TestGetArticleEndpoint(t *testing.T) {
	m, h := newTestServer(t)
	art := seedArticle(t, m, "Readable Post", true)

	body := doJSON(t, h, http.MethodGet, "/api/articles/"+art.Slug, http.StatusOK)
	if body["title"] != "Readable Post" {
		t.Fatalf("expected article title, got %v", body["title"])
	}

	body = doJSON(t, h, http.MethodGet, "/api/articles/no-such-post", http.StatusNotFound)
	if body["success"] != false {
		t.Fatalf("expected success false, got %v", body["success"])
	}

	draft := seedArticle(t, m, "Secret Draft", false)
	doJSON(t, h, http.MethodGet, "/api/articles/"+draft.Slug, http.StatusNotFound)
}

func TestCategoryCountsEndpoint(t *testing.T) {
	m, h := newTestServer(t)
	seedArticle(t, m, "Counted Post", true)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var counts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("decode counts: %v", err)
	}
	if len(counts) != 1 || counts[0]["slug"] != "go" {
		t.Fatalf("unexpected counts payload: %v", counts)
	}
}

func TestNavPagesEndpoint(t *testing.T) {
	m, h := newTestServer(t)
	ctx := context.Background()

	if _, err := m.Pages().Create(ctx, pages.CreatePageRequest{
		Title:     "About",
		Content:   "<p>About me.</p>",
		ShowInNav: true,
		NavOrder:  1,
		Publish:   true,
	}); err != nil {
		t.Fatalf("create page: %v", err)
	}
	if _, err := m.Pages().Create(ctx, pages.CreatePageRequest{
		Title:   "Hidden",
		Content: "<p>Not in nav.</p>",
		Publish: true,
	}); err != nil {
		t.Fatalf("create page: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/pages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var nav []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &nav); err != nil {
		t.Fatalf("decode nav: %v", err)
	}
	if len(nav) != 1 || nav[0]["slug"] != "about" {
		t.Fatalf("unexpected nav payload: %v", nav)
	}

	body := doJSON(t, h, http.MethodGet, "/api/pages/about", http.StatusOK)
	if body["title"] != "About" {
		t.Fatalf("expected page title, got %v", body["title"])
	}
	doJSON(t, h, http.MethodGet, "/api/pages/missing", http.StatusNotFound)
}

func TestImageUploadEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "cover.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.WriteField("alt_text", "A cover image"); err != nil {
		t.Fatalf("write alt text: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var image map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &image); err != nil {
		t.Fatalf("decode image: %v", err)
	}
	if image["original_name"] != "cover.png" {
		t.Fatalf("unexpected original name: %v", image["original_name"])
	}
	if image["alt_text"] != "A cover image" {
		t.Fatalf("unexpected alt text: %v", image["alt_text"])
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/images", nil)
	listRec := httptest.NewRecorder()
	h.ServeHTTP(listRec, listReq)

	var images []map[string]any
	if err := json.Unmarshal(listRec.Body.Bytes(), &images); err != nil {
		t.Fatalf("decode image list: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("expected 1 stored image, got %d", len(images))
	}
}

func TestImageUploadRequiresFile(t *testing.T) {
	_, h := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("alt_text", "no file"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateEndpoints(t *testing.T) {
	_, h := newTestServer(t)

	body := doJSON(t, h, http.MethodPost, "/api/testdata/generate?count=25", http.StatusOK)
	if body["success"] != true {
		t.Fatalf("expected success true, got %v", body["success"])
	}
	if got := body["articlesCreated"].(float64); got != 25 {
		t.Fatalf("expected 25 articles created, got %v", got)
	}
	if got := body["requestedCount"].(float64); got != 25 {
		t.Fatalf("expected requested count 25, got %v", got)
	}

	doJSON(t, h, http.MethodPost, "/api/testdata/generate?count=abc", http.StatusBadRequest)
	doJSON(t, h, http.MethodPost, "/api/testdata/generate?count=100001", http.StatusBadRequest)
	doJSON(t, h, http.MethodPost, "/api/testdata/generate-public?count=1001", http.StatusBadRequest)
}

func TestClearAndStatsEndpoints(t *testing.T) {
	_, h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/api/testdata/generate-public?count=5", http.StatusOK)

	body := doJSON(t, h, http.MethodDelete, "/api/testdata/clear", http.StatusOK)
	if body["success"] != true {
		t.Fatalf("expected success true, got %v", body["success"])
	}
	if got := body["articlesDeleted"].(float64); got != 5 {
		t.Fatalf("expected 5 articles deleted, got %v", got)
	}

	body = doJSON(t, h, http.MethodGet, "/api/testdata/stats", http.StatusOK)
	if got := body["totalCategories"].(float64); got != 20 {
		t.Fatalf("expected 20 catalog categories, got %v", got)
	}
}

func TestHealthEndpoint(t *testing.T) {
	_, h := newTestServer(t)
	body := doJSON(t, h, http.MethodGet, "/healthz", http.StatusOK)
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
}
