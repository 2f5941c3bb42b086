package application

import (
	"testing"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func livePresence() *domain.Presence {
	return &domain.Presence{
		Details:    "Halo Infinite",
		LargeImage: "https://store-images.example.com/halo.png",
		StartedAt:  time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestPresenceStyleLiveUsesBackgroundImage(t *testing.T) {
	for _, p := range domain.Platforms() {
		for _, mode := range []DisplayMode{DisplayLight, DisplayDark} {
			style := PresenceStyle(p, livePresence(), mode)
			assert.True(t, style.Live)
			assert.Empty(t, style.Color)
			assert.Equal(t,
				`background-image: url("https://store-images.example.com/halo.png"); background-position: center; background-repeat: no-repeat; background-size: contain;`,
				style.CSS())
			assert.NotContains(t, style.CSS(), "mask-image")
		}
	}
}

func TestPresenceStyleIdleMasksBrandGlyph(t *testing.T) {
	for _, p := range domain.Platforms() {
		style := PresenceStyle(p, nil, DisplayLight)
		assert.False(t, style.Live)
		assert.Equal(t, BrandGlyph(p), style.Image)
		assert.NotEmpty(t, style.Color)
		assert.Contains(t, style.CSS(), "mask-image")
		assert.NotContains(t, style.CSS(), "background-image")
	}

	assert.Equal(t,
		`background-color: #107c10; mask-image: url("icons/brand/microsoft-xbox.svg"); mask-position: center; mask-repeat: no-repeat; mask-size: contain;`,
		PresenceStyle(domain.PlatformXbox, nil, DisplayDark).CSS())
}

func TestBrandColorOnlySteamDependsOnMode(t *testing.T) {
	for _, p := range domain.Platforms() {
		light := BrandColor(p, DisplayLight)
		dark := BrandColor(p, DisplayDark)
		if p == domain.PlatformSteam {
			assert.NotEqual(t, light, dark)
			continue
		}
		assert.Equal(t, light, dark, "platform %s", p)
	}
}

func TestPresenceImage(t *testing.T) {
	assert.Equal(t, "https://store-images.example.com/halo.png", PresenceImage(domain.PlatformXbox, livePresence()))
	assert.Equal(t, "icons/brand/microsoft-xbox.svg", PresenceImage(domain.PlatformXbox, nil))
	assert.Empty(t, PresenceImage("sega", nil))
	assert.True(t, PresenceStyle("sega", livePresence(), DisplayLight).IsZero())
	assert.Empty(t, StyleDescriptor{}.CSS())
}

func TestPresenceBoardRoundTripReturnsIdenticalFallback(t *testing.T) {
	board := NewPresenceBoard()

	for _, mode := range []DisplayMode{DisplayLight, DisplayDark} {
		before := board.PresenceStyle(domain.PlatformSteam, mode).CSS()
		beforeImage := board.PresenceImage(domain.PlatformSteam)

		board.Set(domain.PlatformSteam, livePresence())
		assert.Contains(t, board.PresenceStyle(domain.PlatformSteam, mode).CSS(), "background-image")

		board.Set(domain.PlatformSteam, nil)
		assert.Equal(t, before, board.PresenceStyle(domain.PlatformSteam, mode).CSS())
		assert.Equal(t, beforeImage, board.PresenceImage(domain.PlatformSteam))
	}
}

func TestPresenceBoardStoresCopies(t *testing.T) {
	board := NewPresenceBoard()
	presence := livePresence()
	board.Set(domain.PlatformXbox, presence)

	presence.LargeImage = "mutated"
	got := board.Get(domain.PlatformXbox)
	assert.Equal(t, "https://store-images.example.com/halo.png", got.LargeImage)

	got.LargeImage = "mutated again"
	assert.Equal(t, "https://store-images.example.com/halo.png", board.PresenceImage(domain.PlatformXbox))
}

func TestParseDisplayMode(t *testing.T) {
	mode, ok := ParseDisplayMode("Dark")
	assert.True(t, ok)
	assert.Equal(t, DisplayDark, mode)

	mode, ok = ParseDisplayMode("")
	assert.True(t, ok)
	assert.Equal(t, DisplayLight, mode)

	_, ok = ParseDisplayMode("sepia")
	assert.False(t, ok)
}
