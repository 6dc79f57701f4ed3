package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/The-Gleb/event_banner/internal/errors"
	"github.com/go-chi/chi/v5"
)

const (
	updateBannerURL = "/banner/{id}"
)

type UpdateBannerUsecase interface {
	UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error
}

type updateBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     UpdateBannerUsecase
}

func NewUpdateBannerHandler(usecase UpdateBannerUsecase) *updateBannerHandler {
	return &updateBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *updateBannerHandler) AddToRouter(r chi.Router) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Patch(updateBannerURL, handler.ServeHTTP)
}

func (h *updateBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *updateBannerHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *updateBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	ID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || ID < 1 {
		http.Error(w, "invalid banner ID", http.StatusBadRequest)
		return
	}

	var dto entity.UpdateBannerDTO

	err = json.NewDecoder(r.Body).Decode(&dto)
	if err != nil {
		http.Error(w, "error decoding json request body", http.StatusBadRequest)
		return
	}

	dto.BannerID = ID

	err = h.usecase.UpdateBanner(r.Context(), dto)
	if err != nil {
		switch errors.Code(err) {
		case errors.ErrNoDataFound:
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case errors.ErrInvalidInput:
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
