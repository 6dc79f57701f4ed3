package entity

import "log/slog"

// Location is the configured automatic embedding point.
type Location string

const (
	LocationTop          Location = "top"
	LocationBottom       Location = "bottom"
	LocationOnDemandOnly Location = "on_demand_only"
)

// Hook identifies the page point asking for a banner.
type Hook string

const (
	HookTop      Hook = "top"
	HookBottom   Hook = "bottom"
	HookOnDemand Hook = "on_demand"
)

func ParseHook(s string) (Hook, bool) {
	switch h := Hook(s); h {
	case HookTop, HookBottom, HookOnDemand:
		return h, true
	default:
		return "", false
	}
}

type DisplayOptions struct {
	AutoRender bool
	Location   Location
}

// Sanitize normalizes the location. An unrecognized location disables
// automatic rendering.
func (o DisplayOptions) Sanitize() DisplayOptions {
	switch o.Location {
	case LocationTop, LocationBottom, LocationOnDemandOnly:
		return o
	}

	slog.Warn("unknown banner location, automatic rendering disabled", "location", o.Location)

	return DisplayOptions{
		AutoRender: false,
		Location:   LocationTop,
	}
}

// ShouldRender reports whether a banner is emitted at hook. The on-demand
// hook always renders; automatic hooks render only when they match the
// configured location.
func (o DisplayOptions) ShouldRender(hook Hook) bool {
	if hook == HookOnDemand {
		return true
	}

	if !o.AutoRender {
		return false
	}

	switch o.Location {
	case LocationTop:
		return hook == HookTop
	case LocationBottom:
		return hook == HookBottom
	default:
		return false
	}
}
