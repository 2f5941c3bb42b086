package application

import (
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/richpresence-cli/internal/domain"
)

type DisplayMode string

const (
	DisplayLight DisplayMode = "light"
	DisplayDark  DisplayMode = "dark"
)

func ParseDisplayMode(raw string) (DisplayMode, bool) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(raw))) {
	case DisplayLight, "":
		return DisplayLight, true
	case DisplayDark:
		return DisplayDark, true
	default:
		return DisplayLight, false
	}
}

type brand struct {
	glyph string
	light string
	dark  string
}

func brandOf(p domain.Platform) (brand, bool) {
	switch p {
	case domain.PlatformNintendo:
		return brand{glyph: "icons/brand/nintendo-switch.svg", light: "#e60012", dark: "#e60012"}, true
	case domain.PlatformPlayStation:
		return brand{glyph: "icons/brand/sony-playstation.svg", light: "#003791", dark: "#003791"}, true
	case domain.PlatformSteam:
		return brand{glyph: "icons/brand/steam.svg", light: "#171a21", dark: "#ffffff"}, true
	case domain.PlatformXbox:
		return brand{glyph: "icons/brand/microsoft-xbox.svg", light: "#107c10", dark: "#107c10"}, true
	default:
		return brand{}, false
	}
}

// BrandGlyph is the icon reference shown for an idle platform.
func BrandGlyph(p domain.Platform) string {
	b, _ := brandOf(p)
	return b.glyph
}

// BrandColor is the fill of an idle platform's glyph. Only Steam changes
// between light and dark mode.
func BrandColor(p domain.Platform, mode DisplayMode) string {
	b, ok := brandOf(p)
	if !ok {
		return ""
	}
	if mode == DisplayDark {
		return b.dark
	}
	return b.light
}

// StyleDescriptor describes how to paint a platform tile. Live tiles draw
// Image as a background; idle tiles mask Image with Color.
type StyleDescriptor struct {
	Live  bool   `json:"live"`
	Image string `json:"image,omitempty"`
	Color string `json:"color,omitempty"`
}

func (s StyleDescriptor) IsZero() bool {
	return s == StyleDescriptor{}
}

// CSS renders the descriptor as declarations in a fixed order.
func (s StyleDescriptor) CSS() string {
	var decls []string
	switch {
	case s.Live:
		decls = []string{
			"background-image: " + cssURL(s.Image),
			"background-position: center",
			"background-repeat: no-repeat",
			"background-size: contain",
		}
	case s.Image != "":
		decls = []string{
			"background-color: " + s.Color,
			"mask-image: " + cssURL(s.Image),
			"mask-position: center",
			"mask-repeat: no-repeat",
			"mask-size: contain",
		}
	default:
		return ""
	}
	return strings.Join(decls, "; ") + ";"
}

func cssURL(ref string) string {
	return "url(" + strconv.Quote(ref) + ")"
}

// PresenceImage is the image shown for a platform: the live large image, or
// the brand glyph when no presence is recorded. Unknown platforms yield "".
func PresenceImage(p domain.Platform, presence *domain.Presence) string {
	if !p.Valid() {
		return ""
	}
	if presence != nil {
		return presence.LargeImage
	}
	return BrandGlyph(p)
}

// PresenceStyle is the tile style of a platform. Unknown platforms yield the
// zero descriptor.
func PresenceStyle(p domain.Platform, presence *domain.Presence, mode DisplayMode) StyleDescriptor {
	if !p.Valid() {
		return StyleDescriptor{}
	}
	if presence != nil {
		return StyleDescriptor{Live: true, Image: presence.LargeImage}
	}
	return StyleDescriptor{Image: BrandGlyph(p), Color: BrandColor(p, mode)}
}

// PresenceBoard holds the latest presence per platform. Records are replaced
// wholesale.
type PresenceBoard struct {
	mu      sync.RWMutex
	records map[domain.Platform]*domain.Presence
}

func NewPresenceBoard() *PresenceBoard {
	return &PresenceBoard{records: map[domain.Platform]*domain.Presence{}}
}

// Set stores a copy of presence. nil marks the platform idle.
func (b *PresenceBoard) Set(p domain.Platform, presence *domain.Presence) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if presence == nil {
		delete(b.records, p)
		return
	}
	record := *presence
	b.records[p] = &record
}

func (b *PresenceBoard) Get(p domain.Platform) *domain.Presence {
	b.mu.RLock()
	defer b.mu.RUnlock()

	record, ok := b.records[p]
	if !ok {
		return nil
	}
	out := *record
	return &out
}

func (b *PresenceBoard) PresenceImage(p domain.Platform) string {
	return PresenceImage(p, b.Get(p))
}

func (b *PresenceBoard) PresenceStyle(p domain.Platform, mode DisplayMode) StyleDescriptor {
	return PresenceStyle(p, b.Get(p), mode)
}
