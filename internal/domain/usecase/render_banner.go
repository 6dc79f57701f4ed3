package usecase

import (
	"context"
	"html/template"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
)

type renderBannerUsecase struct {
	bannerService BannerService
}

func NewRenderBannerUsecase(bannerService BannerService) *renderBannerUsecase {
	return &renderBannerUsecase{bannerService}
}

func (u *renderBannerUsecase) RenderBanner(ctx context.Context, hook entity.Hook) template.HTML {
	return u.bannerService.RenderBanner(ctx, hook)
}
