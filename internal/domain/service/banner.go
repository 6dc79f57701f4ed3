package service

import (
	"context"
	"html/template"
	"log/slog"
	"net/url"
	"time"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/The-Gleb/event_banner/internal/domain/usecase"
	"github.com/The-Gleb/event_banner/internal/errors"
	"github.com/The-Gleb/event_banner/internal/metrics"
)

var _ usecase.BannerService = new(bannerService)
var _ usecase.TokenService = new(tokenService)

type BannerStorage interface {
	CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error)
	DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) error
	GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error)
	GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error)
	GetPublishedBanners(ctx context.Context) ([]entity.Banner, error)
	UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error
}

// ActiveIDCache keeps the id of the last selected banner between requests.
type ActiveIDCache interface {
	GetActiveID(ctx context.Context) (int64, bool, error)
	SetActiveID(ctx context.Context, id *int64) error
}

type Renderer interface {
	Sanitize(text string) string
	Render(banner entity.Banner) template.HTML
}

type BannerMetrics interface {
	Selection(outcome string)
	Render(hook string, rendered bool)
}

type bannerService struct {
	storage  BannerStorage
	cache    ActiveIDCache
	renderer Renderer
	metrics  BannerMetrics
	options  entity.DisplayOptions
	loc      *time.Location
	now      func() time.Time
}

func NewBannerService(
	storage BannerStorage,
	cache ActiveIDCache,
	renderer Renderer,
	metrics BannerMetrics,
	options entity.DisplayOptions,
	loc *time.Location,
) *bannerService {
	if loc == nil {
		loc = time.UTC
	}
	return &bannerService{
		storage:  storage,
		cache:    cache,
		renderer: renderer,
		metrics:  metrics,
		options:  options.Sanitize(),
		loc:      loc,
		now:      time.Now,
	}
}

func (service *bannerService) CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error) {
	if err := validateLink(dto.Link); err != nil {
		return 0, err
	}

	dto.Text = service.renderer.Sanitize(dto.Text)
	dto.Start = SanitizeDateTime(dto.Start, service.loc)
	dto.End = SanitizeDateTime(dto.End, service.loc)

	return service.storage.CreateBanner(ctx, dto)
}

func (service *bannerService) DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) error {
	return service.storage.DeleteBanner(ctx, dto)
}

func (service *bannerService) GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error) {
	return service.storage.GetBanner(ctx, dto)
}

// GetBanners lists banners for admins, flagging the one currently shown.
func (service *bannerService) GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.BannerWithStatus, error) {
	banners, err := service.storage.GetBanners(ctx, dto)
	if err != nil {
		return nil, err
	}

	active, hasActive := service.activeBanner(ctx)

	result := make([]entity.BannerWithStatus, 0, len(banners))
	for _, banner := range banners {
		result = append(result, entity.BannerWithStatus{
			Banner: banner,
			Active: hasActive && banner.BannerID == active.BannerID,
		})
	}

	return result, nil
}

func (service *bannerService) UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error {
	if dto.Link != nil {
		if err := validateLink(*dto.Link); err != nil {
			return err
		}
	}

	if dto.Text != nil {
		text := service.renderer.Sanitize(*dto.Text)
		dto.Text = &text
	}
	if dto.Start != nil {
		start := SanitizeDateTime(*dto.Start, service.loc)
		dto.Start = &start
	}
	if dto.End != nil {
		end := SanitizeDateTime(*dto.End, service.loc)
		dto.End = &end
	}

	return service.storage.UpdateBanner(ctx, dto)
}

func (service *bannerService) GetActiveBanner(ctx context.Context) (entity.Banner, error) {
	banner, ok := service.activeBanner(ctx)
	if !ok {
		return entity.Banner{}, errors.NewDomainError(errors.ErrNoDataFound, "no active banner")
	}

	return banner, nil
}

// RenderBanner returns the fragment for hook. Nothing is returned when the hook
// is not the configured embedding point or no banner is active.
func (service *bannerService) RenderBanner(ctx context.Context, hook entity.Hook) template.HTML {
	if !service.options.ShouldRender(hook) {
		slog.Debug("render skipped", "hook", hook, "location", service.options.Location, "auto_render", service.options.AutoRender)
		service.metrics.Render(string(hook), false)
		return ""
	}

	banner, ok := service.activeBanner(ctx)
	if !ok {
		slog.Debug("render skipped: no active banner found", "hook", hook)
		service.metrics.Render(string(hook), false)
		return ""
	}

	out := service.renderer.Render(banner)
	service.metrics.Render(string(hook), out != "")
	if out != "" {
		slog.Debug("rendered banner", "banner_id", banner.BannerID, "hook", hook)
	}

	return out
}

func (service *bannerService) activeBanner(ctx context.Context) (entity.Banner, bool) {
	banners, err := service.storage.GetPublishedBanners(ctx)
	if err != nil {
		slog.Error("error listing published banners, treating as none", "error", err)
		banners = nil
	}
	if len(banners) == 0 {
		slog.Debug("no published banners found")
	}

	var cachedID *int64
	id, ok, readErr := service.cache.GetActiveID(ctx)
	switch {
	case readErr != nil:
		slog.Error("error reading active banner id", "error", readErr)
	case ok:
		cachedID = &id
	}

	selected, newID := SelectActive(banners, service.now(), service.loc, cachedID)

	switch {
	case selected == nil:
		service.metrics.Selection(metrics.OutcomeNone)
	case cachedID != nil && *cachedID == *newID:
		service.metrics.Selection(metrics.OutcomeSticky)
	default:
		service.metrics.Selection(metrics.OutcomeFirst)
	}

	// the stored id is unknown after a failed read and is left untouched
	if readErr == nil && !sameID(cachedID, newID) {
		if err := service.cache.SetActiveID(ctx, newID); err != nil {
			slog.Error("error saving active banner id", "error", err)
		}
	}

	if selected == nil {
		return entity.Banner{}, false
	}

	return *selected, true
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func validateLink(link string) error {
	if link == "" {
		return nil
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewDomainError(errors.ErrInvalidInput, "link must be an absolute http(s) URL")
	}

	return nil
}
