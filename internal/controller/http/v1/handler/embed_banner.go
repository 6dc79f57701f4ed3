package v1

import (
	"context"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	embedBannerURL = "/embed/{hook}"
)

type RenderBannerUsecase interface {
	RenderBanner(ctx context.Context, hook entity.Hook) template.HTML
}

// embedBannerHandler serves the banner fragment for a page hook. The body is
// empty whenever nothing should be shown.
type embedBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     RenderBannerUsecase
}

func NewEmbedBannerHandler(usecase RenderBannerUsecase) *embedBannerHandler {
	return &embedBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *embedBannerHandler) AddToRouter(r chi.Router) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(embedBannerURL, handler.ServeHTTP)
}

func (h *embedBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *embedBannerHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *embedBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	hook, ok := entity.ParseHook(chi.URLParam(r, "hook"))
	if !ok {
		http.Error(w, "unknown hook", http.StatusBadRequest)
		return
	}

	fragment := h.usecase.RenderBanner(r.Context(), hook)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.WriteString(w, string(fragment)); err != nil {
		slog.Error("error writing banner fragment", "error", err)
	}
}
