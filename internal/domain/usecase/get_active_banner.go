package usecase

import (
	"context"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
)

type getActiveBannerUsecase struct {
	bannerService BannerService
}

func NewGetActiveBannerUsecase(bannerService BannerService) *getActiveBannerUsecase {
	return &getActiveBannerUsecase{bannerService}
}

func (u *getActiveBannerUsecase) GetActiveBanner(ctx context.Context) (entity.Banner, error) {
	return u.bannerService.GetActiveBanner(ctx)
}
