package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	cache "github.com/The-Gleb/event_banner/internal/adapter/cache/redis"
	db "github.com/The-Gleb/event_banner/internal/adapter/db/postgres"
	"github.com/The-Gleb/event_banner/internal/config"
	v1 "github.com/The-Gleb/event_banner/internal/controller/http/v1/server"
	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/The-Gleb/event_banner/internal/domain/render"
	"github.com/The-Gleb/event_banner/internal/domain/service"
	"github.com/The-Gleb/event_banner/internal/domain/usecase"
	"github.com/The-Gleb/event_banner/internal/logger"
	"github.com/The-Gleb/event_banner/internal/metrics"
	"github.com/The-Gleb/event_banner/pkg/client/postgresql"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	configFile := os.Getenv("CONFIG_FILE")
	cfg := config.MustBuild(configFile)

	logger.Initialize(cfg.LogLevel)
	slog.Info("config is built",
		"run_address", cfg.RunAddress,
		"timezone", cfg.Timezone,
		"auto_render", cfg.Display.AutoRender,
		"location", cfg.Display.Location,
	)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", cfg.DB.Username, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.DbName)
	postgresClient, err := postgresql.NewClient(ctx, dsn)
	if err != nil {
		return err
	}
	defer postgresClient.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: "",
		DB:       0,
	})
	defer redisClient.Close()

	err = db.RunMigrations(dsn)
	if err != nil {
		return err
	}

	bannerStorage := db.NewBannerStorage(postgresClient)
	tokenStorage := db.NewTokenStorage(postgresClient)
	activeIDCache := cache.NewRedisCache(redisClient, cfg.ActiveIDKey, cfg.ActiveIDExpiry)

	if cfg.AdminToken != "" {
		if err := tokenStorage.EnsureToken(ctx, cfg.AdminToken, true); err != nil {
			return err
		}
	}

	m := metrics.New()
	renderer := render.NewRenderer(cfg.Render.InlineStyles)
	displayOptions := entity.DisplayOptions{
		AutoRender: cfg.Display.AutoRender,
		Location:   entity.Location(cfg.Display.Location),
	}

	bannerService := service.NewBannerService(bannerStorage, activeIDCache, renderer, m, displayOptions, cfg.Location())
	tokenService := service.NewTokenService(tokenStorage)

	s, err := v1.NewServer(
		cfg.RunAddress,
		v1.Usecases{
			CreateBanner:    usecase.NewCreateBannerUsecase(bannerService),
			DeleteBanner:    usecase.NewDeleteBannerUsecase(bannerService),
			GetBanner:       usecase.NewGetBannerUsecase(bannerService),
			GetBanners:      usecase.NewGetBannersUsecase(bannerService),
			UpdateBanner:    usecase.NewUpdateBannerUsecase(bannerService),
			GetActiveBanner: usecase.NewGetActiveBannerUsecase(bannerService),
			RenderBanner:    usecase.NewRenderBannerUsecase(bannerService),
			CheckToken:      usecase.NewCheckTokenUsecase(tokenService),
		},
		m.Handler(),
	)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		<-ctx.Done()

		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Stop(ctxShutdown)
		if err != nil {
			slog.Error("server shutdown error", "error", err)
			return
		}
		slog.Info("server was successfuly shutdown")
	}()

	slog.Info("starting server", "address", cfg.RunAddress)
	if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		cancel()
		wg.Wait()
		return err
	}

	wg.Wait()

	return nil
}
