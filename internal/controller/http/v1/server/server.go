package v1

import (
	"context"
	"net/http"

	handlers "github.com/The-Gleb/event_banner/internal/controller/http/v1/handler"
	middleware "github.com/The-Gleb/event_banner/internal/controller/http/v1/middleware"
	"github.com/go-chi/chi/v5"
)

const metricsURL = "/metrics"

type httpServer struct {
	server *http.Server
}

type Usecases struct {
	CreateBanner    handlers.CreateBannerUsecase
	DeleteBanner    handlers.DeleteBannerUsecase
	GetBanner       handlers.GetBannerUsecase
	GetBanners      handlers.GetBannersUsecase
	UpdateBanner    handlers.UpdateBannerUsecase
	GetActiveBanner handlers.GetActiveBannerUsecase
	RenderBanner    handlers.RenderBannerUsecase
	CheckToken      middleware.CheckTokenUsecase
}

func NewServer(address string, usecases Usecases, metricsHandler http.Handler) (*httpServer, error) {
	server := &http.Server{
		Addr:    address,
		Handler: NewRouter(usecases, metricsHandler),
	}

	return &httpServer{server: server}, nil
}

// NewRouter mounts the public embed routes and the token protected admin
// routes.
func NewRouter(usecases Usecases, metricsHandler http.Handler) *chi.Mux {
	createBannerHandler := handlers.NewCreateBannerHandler(usecases.CreateBanner)
	deleteBannerHandler := handlers.NewDeleteBannerHandler(usecases.DeleteBanner)
	getBannerHandler := handlers.NewGetBannerHandler(usecases.GetBanner)
	getBannersHandler := handlers.NewGetBannersHandler(usecases.GetBanners)
	updateBannerHandler := handlers.NewUpdateBannerHandler(usecases.UpdateBanner)
	getActiveBannerHandler := handlers.NewGetActiveBannerHandler(usecases.GetActiveBanner)
	embedBannerHandler := handlers.NewEmbedBannerHandler(usecases.RenderBanner)

	checkTokenMiddleware := middleware.NewAuthMiddleware(usecases.CheckToken)

	r := chi.NewMux()

	embedBannerHandler.AddToRouter(r)
	getActiveBannerHandler.AddToRouter(r)
	if metricsHandler != nil {
		r.Method(http.MethodGet, metricsURL, metricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(checkTokenMiddleware.Do)

		createBannerHandler.AddToRouter(r)
		deleteBannerHandler.AddToRouter(r)
		getBannerHandler.AddToRouter(r)
		getBannersHandler.AddToRouter(r)
		updateBannerHandler.AddToRouter(r)
	})

	return r
}

func (s *httpServer) Start() error {
	return s.server.ListenAndServe()
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
