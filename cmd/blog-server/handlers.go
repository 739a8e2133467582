package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	blog "github.com/mosite/go-blog"
	"github.com/mosite/go-blog/internal/articles"
	"github.com/mosite/go-blog/internal/media"
	"github.com/mosite/go-blog/internal/pages"
	"github.com/mosite/go-blog/internal/seeder"
	"github.com/mosite/go-blog/pkg/interfaces"
)

// maxUploadBytes caps image upload size at 10 MiB.
const maxUploadBytes = 10 << 20

type handlers struct {
	module *blog.Module
	logger interfaces.Logger
}

func newRouter(module *blog.Module, logger interfaces.Logger) http.Handler {
	h := &handlers{module: module, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", h.listArticles)
			r.Get("/{slug}", h.getArticle)
		})
		r.Get("/categories", h.listCategories)
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", h.listNavPages)
			r.Get("/{slug}", h.getPage)
		})
		r.Route("/images", func(r chi.Router) {
			r.Get("/", h.listImages)
			r.Post("/", h.uploadImage)
			r.Delete("/{id}", h.deleteImage)
		})
		r.Route("/testdata", func(r chi.Router) {
			r.Post("/generate-public", h.generatePublic)
			r.Post("/generate", h.generate)
			r.Delete("/clear", h.clear)
			r.Get("/stats", h.stats)
		})
	})

	return r
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// listArticles serves the public listing. Failures degrade to an empty page
// so the public surface never hard-errors on render.
func (h *handlers) listArticles(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	filter := articles.ListFilter{CategorySlug: r.URL.Query().Get("category")}

	result, err := h.module.Articles().ListPage(r.Context(), page, filter)
	if err != nil {
		h.logger.Error("article listing failed", "error", err)
		result = &articles.Page{
			Items:    []*articles.Article{},
			Page:     1,
			PageSize: articles.DefaultPageSize,
		}
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) getArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, err := h.module.Articles().GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, articles.ErrNotFound) {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		h.logger.Error("article lookup failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load article")
		return
	}
	if !article.IsPublished {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (h *handlers) listCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.module.Articles().CategoryCounts(r.Context())
	if err != nil {
		h.logger.Error("category counts failed", "error", err)
		counts = []*articles.CategoryCount{}
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *handlers) listNavPages(w http.ResponseWriter, r *http.Request) {
	nav, err := h.module.Pages().ListNav(r.Context())
	if err != nil {
		h.logger.Error("nav listing failed", "error", err)
		nav = []*pages.Page{}
	}
	writeJSON(w, http.StatusOK, nav)
}

func (h *handlers) getPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := h.module.Pages().GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		h.logger.Error("page lookup failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load page")
		return
	}
	// Drafts stay invisible on the public surface.
	if !page.IsPublished {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *handlers) listImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.module.Media().List(r.Context())
	if err != nil {
		h.logger.Error("image listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list images")
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *handlers) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	image, err := h.module.Media().Upload(r.Context(), media.UploadRequest{
		FileName:    header.Filename,
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		AltText:     r.FormValue("alt_text"),
		Caption:     r.FormValue("caption"),
	})
	if err != nil {
		if errors.Is(err, media.ErrNameRequired) || errors.Is(err, media.ErrEmptyFile) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("image upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not store image")
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

func (h *handlers) deleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := h.module.Media().Delete(r.Context(), id); err != nil {
		if errors.Is(err, media.ErrNotFound) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		h.logger.Error("image delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

func (h *handlers) generatePublic(w http.ResponseWriter, r *http.Request) {
	h.runGenerate(w, r, 10, seeder.MaxPublicCount,
		"count must be between 1 and 1,000 for the public endpoint")
}

func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	h.runGenerate(w, r, 1000, seeder.MaxAdminCount,
		"count must be between 1 and 100,000")
}

func (h *handlers) runGenerate(w http.ResponseWriter, r *http.Request, fallback, maxCount int, rangeMsg string) {
	count := fallback
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "count must be a number")
			return
		}
		count = parsed
	}
	if count <= 0 || count > maxCount {
		writeError(w, http.StatusBadRequest, rangeMsg)
		return
	}

	start := time.Now()
	result, err := h.module.Seeder().Generate(r.Context(), count)
	if err != nil {
		h.logger.Error("test data generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an error occurred while generating test data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"articlesCreated": result.Created,
		"requestedCount":  result.Requested,
		"batches":         result.Batches,
		"duration":        time.Since(start).String(),
	})
}

func (h *handlers) clear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result, err := h.module.Seeder().Clear(r.Context())
	if err != nil {
		h.logger.Error("test data clear failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an error occurred while clearing test data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"articlesDeleted":   result.ArticlesDeleted,
		"categoriesDeleted": result.CategoriesDeleted,
		"recordsDeleted":    result.ArticlesDeleted + result.CategoriesDeleted,
		"duration":          time.Since(start).String(),
	})
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.module.Seeder().Stats(r.Context())
	if err != nil {
		h.logger.Error("test data stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an error occurred while getting test data stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"totalCategories": stats.TotalCategories,
		"categories":      stats.Categories,
	})
}
