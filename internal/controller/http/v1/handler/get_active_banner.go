package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/The-Gleb/event_banner/internal/errors"
	"github.com/go-chi/chi/v5"
)

const (
	getActiveBannerURL = "/banner/active"
)

type GetActiveBannerUsecase interface {
	GetActiveBanner(ctx context.Context) (entity.Banner, error)
}

type getActiveBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     GetActiveBannerUsecase
}

func NewGetActiveBannerHandler(usecase GetActiveBannerUsecase) *getActiveBannerHandler {
	return &getActiveBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *getActiveBannerHandler) AddToRouter(r chi.Router) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(getActiveBannerURL, handler.ServeHTTP)
}

func (h *getActiveBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *getActiveBannerHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *getActiveBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	banner, err := h.usecase.GetActiveBanner(r.Context())
	if err != nil {
		switch errors.Code(err) {
		case errors.ErrNoDataFound:
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(banner)
	if err != nil {
		slog.Error("error encoding banner", "error", err)
		return
	}
}
