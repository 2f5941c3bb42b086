package domain

import (
	"fmt"
	"strings"
)

// Platform is one of the gaming platforms whose activity can hold focus.
type Platform string

const (
	PlatformNone        Platform = ""
	PlatformNintendo    Platform = "nintendo"
	PlatformPlayStation Platform = "playstation"
	PlatformSteam       Platform = "steam"
	PlatformXbox        Platform = "xbox"
)

// SourceTwitch feeds presence buttons and has its own login session, but it
// is never a focusable Platform.
const SourceTwitch = "twitch"

var platforms = [...]Platform{
	PlatformNintendo,
	PlatformPlayStation,
	PlatformSteam,
	PlatformXbox,
}

// Platforms returns every focusable platform in canonical order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms[:])
	return out
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformNintendo, PlatformPlayStation, PlatformSteam, PlatformXbox:
		return true
	default:
		return false
	}
}

func (p Platform) IsNone() bool {
	return p == PlatformNone
}

func (p Platform) String() string {
	if p == PlatformNone {
		return "none"
	}
	return string(p)
}

// Label is the human readable platform name.
func (p Platform) Label() string {
	switch p {
	case PlatformNintendo:
		return "Nintendo"
	case PlatformPlayStation:
		return "PlayStation"
	case PlatformSteam:
		return "Steam"
	case PlatformXbox:
		return "Xbox"
	default:
		return "None"
	}
}

// ParsePlatform accepts a platform name. "none" and "" map to PlatformNone.
func ParsePlatform(raw string) (Platform, error) {
	normalized := Platform(strings.ToLower(strings.TrimSpace(raw)))
	if normalized == "" || normalized == "none" {
		return PlatformNone, nil
	}
	if !normalized.Valid() {
		return PlatformNone, fmt.Errorf("%w: %q", ErrUnknownPlatform, raw)
	}
	return normalized, nil
}
