package service

import (
	"log/slog"
	"time"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
)

// IsActiveRaw reports whether a banner is eligible at now, ignoring which
// banner is currently selected.
func IsActiveRaw(banner entity.Banner, now time.Time, loc *time.Location) bool {
	if banner.Manual {
		slog.Debug("banner active (manual)", "banner_id", banner.BannerID)
		return true
	}

	if banner.Start == "" && banner.End == "" {
		slog.Debug("banner inactive (no schedule set)", "banner_id", banner.BannerID)
		return false
	}

	start, hasStart := ParseLocalDateTime(banner.Start, loc)
	end, hasEnd := ParseLocalDateTime(banner.End, loc)
	slog.Debug("banner schedule check",
		"banner_id", banner.BannerID,
		"now", now,
		"start", banner.Start,
		"end", banner.End,
	)

	if hasStart && now.Before(start) {
		return false
	}
	if hasEnd && now.After(end) {
		return false
	}

	return true
}

// SelectActive picks the single active banner out of banners, which must be
// ordered newest first. A cachedID still among the candidates wins over the
// first candidate. The returned id is what should be cached for the next call;
// it is nil when no banner is active.
func SelectActive(banners []entity.Banner, now time.Time, loc *time.Location, cachedID *int64) (*entity.Banner, *int64) {
	candidates := make([]entity.Banner, 0, len(banners))
	for _, banner := range banners {
		if !banner.Published {
			continue
		}
		if IsActiveRaw(banner, now, loc) {
			slog.Debug("active candidate found", "banner_id", banner.BannerID)
			candidates = append(candidates, banner)
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	if cachedID != nil {
		for i := range candidates {
			if candidates[i].BannerID == *cachedID {
				id := *cachedID
				return &candidates[i], &id
			}
		}
	}

	first := candidates[0]
	id := first.BannerID
	slog.Debug("active banner set", "banner_id", id)

	return &first, &id
}
