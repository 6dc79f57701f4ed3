package usecase

import (
	"context"
	"html/template"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
)

type BannerService interface {
	CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error)
	DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) error
	GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error)
	GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.BannerWithStatus, error)
	UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error
	GetActiveBanner(ctx context.Context) (entity.Banner, error)
	RenderBanner(ctx context.Context, hook entity.Hook) template.HTML
}

type createBannerUsecase struct {
	bannerService BannerService
}

func NewCreateBannerUsecase(bannerService BannerService) *createBannerUsecase {
	return &createBannerUsecase{bannerService}
}

func (u *createBannerUsecase) CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error) {
	return u.bannerService.CreateBanner(ctx, dto)
}
