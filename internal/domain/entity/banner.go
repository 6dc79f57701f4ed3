package entity

import "time"

// DateTimeLayout is the storage format of banner schedule bounds.
const DateTimeLayout = "2006-01-02 15:04"

type Banner struct {
	BannerID  int64     `json:"banner_id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Text      string    `json:"text" db:"text"`
	Link      string    `json:"link" db:"link"`
	Start     string    `json:"start" db:"start_at"`
	End       string    `json:"end" db:"end_at"`
	Manual    bool      `json:"manual" db:"manual"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BannerWithStatus is a banner as listed to admins, flagged when it is the
// banner currently shown on the site.
type BannerWithStatus struct {
	Banner
	Active bool `json:"active"`
}
