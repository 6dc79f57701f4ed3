package entity

type GetBannersDTO struct {
	Limit  int
	Offset int
}

type GetBannerDTO struct {
	BannerID int64
}

type CreateBannerDTO struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Link      string `json:"link"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Manual    bool   `json:"manual"`
	Published bool   `json:"published"`
}

// UpdateBannerDTO carries a partial update. Nil fields keep their stored value.
type UpdateBannerDTO struct {
	BannerID  int64
	Title     *string `json:"title"`
	Text      *string `json:"text"`
	Link      *string `json:"link"`
	Start     *string `json:"start"`
	End       *string `json:"end"`
	Manual    *bool   `json:"manual"`
	Published *bool   `json:"published"`
}

type DeleteBannerDTO struct {
	BannerID int64
}
