package usecase

import (
	"context"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
)

type getBannersUsecase struct {
	bannerService BannerService
}

func NewGetBannersUsecase(bannerService BannerService) *getBannersUsecase {
	return &getBannersUsecase{bannerService}
}

func (u *getBannersUsecase) GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.BannerWithStatus, error) {
	return u.bannerService.GetBanners(ctx, dto)
}
