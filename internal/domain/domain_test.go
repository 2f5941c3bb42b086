package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Platform
		wantErr bool
	}{
		{name: "xbox", raw: "xbox", want: PlatformXbox},
		{name: "mixed case with spaces", raw: "  PlayStation ", want: PlatformPlayStation},
		{name: "none keyword", raw: "none", want: PlatformNone},
		{name: "empty", raw: "", want: PlatformNone},
		{name: "twitch is not focusable", raw: "twitch", wantErr: true},
		{name: "unknown", raw: "dreamcast", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlatform(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatformsReturnsCopyInCanonicalOrder(t *testing.T) {
	got := Platforms()
	assert.Equal(t, []Platform{PlatformNintendo, PlatformPlayStation, PlatformSteam, PlatformXbox}, got)

	got[0] = PlatformXbox
	assert.Equal(t, PlatformNintendo, Platforms()[0])
}

func TestActivityConfigPriorityOrderDedupesAndAppendsMissing(t *testing.T) {
	cfg := ActivityConfig{Priority: []Platform{PlatformXbox, PlatformSteam, PlatformXbox, Platform("sega")}}

	assert.Equal(t, []Platform{PlatformXbox, PlatformSteam, PlatformNintendo, PlatformPlayStation}, cfg.PriorityOrder())
}

func TestActivityConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     ActivityConfig
		wantErr string
	}{
		{name: "valid", cfg: ActivityConfig{Priority: []Platform{PlatformXbox, PlatformSteam}}},
		{name: "duplicate", cfg: ActivityConfig{Priority: []Platform{PlatformXbox, PlatformXbox}}, wantErr: "duplicate platform"},
		{name: "unknown priority", cfg: ActivityConfig{Priority: []Platform{"sega"}}, wantErr: "unknown platform"},
		{name: "unknown enabled", cfg: ActivityConfig{Enabled: map[Platform]bool{"sega": true}}, wantErr: "unknown platform"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestActivityConfigCloneIsIndependent(t *testing.T) {
	cfg := ActivityConfig{
		Enabled:  map[Platform]bool{PlatformXbox: true},
		Priority: []Platform{PlatformXbox},
	}
	clone := cfg.Clone()
	clone.Enabled[PlatformXbox] = false
	clone.Priority[0] = PlatformSteam

	assert.True(t, cfg.IsEnabled(PlatformXbox))
	assert.Equal(t, PlatformXbox, cfg.Priority[0])
}

func TestFocusStateConsistent(t *testing.T) {
	cfg := ActivityConfig{Enabled: map[Platform]bool{PlatformXbox: true}}

	assert.True(t, FocusState{}.Consistent(cfg))
	assert.True(t, FocusState{Focused: PlatformXbox}.Consistent(cfg))
	assert.False(t, FocusState{Focused: PlatformSteam}.Consistent(cfg))
}

func TestProviderConfigLogoutURL(t *testing.T) {
	cfg := ProviderConfig{
		ID:         ProviderXbox,
		ClientID:   "client",
		Authority:  "https://login.example.com/consumers/",
		LogoutPath: "/oauth2/v2.0/logout",
	}

	got, ok, err := cfg.LogoutURL("user@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://login.example.com/consumers/oauth2/v2.0/logout?logout_hint=user%40example.com", got)

	_, ok, err = cfg.LogoutURL("")
	require.NoError(t, err)
	assert.False(t, ok)

	cfg.Authority = ""
	_, ok, err = cfg.LogoutURL("user@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	cfg.Authority = "ftp://login.example.com"
	_, _, err = cfg.LogoutURL("user@example.com")
	assert.ErrorContains(t, err, "http or https")
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKindNone, KindOf(nil))
	assert.Equal(t, ErrorKindBusy, KindOf(fmt.Errorf("login: %w", ErrBusy)))
	assert.Equal(t, ErrorKindInteractionRequired, KindOf(ErrInteractionRequired))
	assert.Equal(t, ErrorKindLogoutNotificationFailed, KindOf(ErrLogoutNotificationFailed))
	assert.Equal(t, ErrorKindAcquisitionFailed, KindOf(errors.New("boom")))
}

func TestDiffersModuloTime(t *testing.T) {
	base := Presence{
		Details:     "Halo Infinite",
		LargeImage:  "https://store-images.example.com/halo.png",
		StartedAt:   time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
		StoreButton: &Button{Label: "xbox.com", URL: "https://xbox.com/halo"},
	}
	later := base
	later.StartedAt = base.StartedAt.Add(time.Hour)
	later.StoreButton = &Button{Label: "xbox.com", URL: "https://xbox.com/halo"}

	other := base
	other.Details = "Forza Horizon 5"

	assert.False(t, DiffersModuloTime(nil, nil))
	assert.True(t, DiffersModuloTime(&base, nil))
	assert.True(t, DiffersModuloTime(nil, &base))
	assert.False(t, DiffersModuloTime(&base, &later))
	assert.True(t, DiffersModuloTime(&base, &other))
}

func TestTwitchButton(t *testing.T) {
	assert.Nil(t, TwitchButton(""))
	assert.Equal(t, &Button{Label: "twitch", URL: "https://www.twitch.tv/directory/game/Halo%20Infinite"}, TwitchButton("Halo Infinite"))
}

func TestAccountDisplayNameFallsBackToID(t *testing.T) {
	assert.Equal(t, "gamer@example.com", Account{ID: "acc-1", Username: "gamer@example.com"}.DisplayName())
	assert.Equal(t, "acc-1", Account{ID: "acc-1"}.DisplayName())
	assert.Equal(t, "richpresence/xbox/acc-1/oauth_tokens", TokenSecretRef(ProviderXbox, "acc-1"))
}
