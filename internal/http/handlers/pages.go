package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hijamacare/site-engine/internal/content"
	"github.com/hijamacare/site-engine/internal/httpx"
	"github.com/hijamacare/site-engine/internal/modules"
	"github.com/hijamacare/site-engine/pkg/logging"
)

// PagesHandler resolves authored pages through the module registry.
type PagesHandler struct {
	store    content.Store
	registry *modules.Registry
	cache    *content.RenderCache
	logger   *logging.Logger
}

// NewPagesHandler creates a new pages handler. The cache may be nil.
func NewPagesHandler(store content.Store, registry *modules.Registry, cache *content.RenderCache, logger *logging.Logger) *PagesHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PagesHandler{store: store, registry: registry, cache: cache, logger: logger}
}

// PageResponse is the rendered page payload.
type PageResponse struct {
	Slug    string             `json:"slug"`
	Title   string             `json:"title"`
	Modules []modules.Rendered `json:"modules"`
}

// GetPage handles GET /pages/{slug}.
func (h *PagesHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "missing slug", http.StatusBadRequest)
		return
	}

	page, err := h.store.GetPage(r.Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrPageNotFound) {
			http.Error(w, "page not found", http.StatusNotFound)
			return
		}
		h.logger.Error("page lookup failed", "slug", slug, "error", err)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}

	rendered := h.cache.Get(r.Context(), slug)
	if rendered == nil {
		rendered = h.registry.Resolve(r.Context(), page.Modules)
		h.cache.Set(r.Context(), slug, rendered)
	}

	httpx.WriteJSON(w, http.StatusOK, PageResponse{
		Slug:    page.Slug,
		Title:   page.Title,
		Modules: rendered,
	})
}

// ListPages handles GET /pages.
func (h *PagesHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	slugs, err := h.store.Slugs(r.Context())
	if err != nil {
		h.logger.Error("slug listing failed", "error", err)
		http.Error(w, "failed to list pages", http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"pages": slugs})
}
