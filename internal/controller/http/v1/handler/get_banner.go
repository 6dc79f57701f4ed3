package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/The-Gleb/event_banner/internal/errors"
	"github.com/go-chi/chi/v5"
)

const (
	getBannerURL = "/banner/{id}"
)

type GetBannerUsecase interface {
	GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error)
}

type getBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     GetBannerUsecase
}

func NewGetBannerHandler(usecase GetBannerUsecase) *getBannerHandler {
	return &getBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *getBannerHandler) AddToRouter(r chi.Router) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(getBannerURL, handler.ServeHTTP)
}

func (h *getBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *getBannerHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *getBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	ID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || ID < 1 {
		http.Error(w, "invalid banner ID", http.StatusBadRequest)
		return
	}

	banner, err := h.usecase.GetBanner(r.Context(), entity.GetBannerDTO{BannerID: ID})
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
