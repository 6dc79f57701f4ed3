package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	getBannersURL = "/banner"

	defaultLimit = 100
)

type GetBannersUsecase interface {
	GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.BannerWithStatus, error)
}

type getBannersHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     GetBannersUsecase
}

func NewGetBannersHandler(usecase GetBannersUsecase) *getBannersHandler {
	return &getBannersHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *getBannersHandler) AddToRouter(r chi.Router) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(getBannersURL, handler.ServeHTTP)
}

func (h *getBannersHandler) Middlewares(md ...func(http.Handler) http.Handler) *getBannersHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *getBannersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	strLimit := r.URL.Query().Get("limit")
	strOffset := r.URL.Query().Get("offset")

	slog.Debug("query", "limit", strLimit, "offset", strOffset)

	limit := defaultLimit
	if strLimit != "" {
		var err error
		limit, err = strconv.Atoi(strLimit)
		if err != nil || limit < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	var offset int
	if strOffset != "" {
		var err error
		offset, err = strconv.Atoi(strOffset)
		if err != nil || offset < 0 {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
	}

	banners, err := h.usecase.GetBanners(r.Context(), entity.GetBannersDTO{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(banners)
	if err != nil {
		slog.Error("error encoding banners", "error", err)
		return
	}
}
