package application

import (
	"context"
	"testing"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatus(t *testing.T) {
	t.Parallel()

	cfg := allEnabled()
	cfg.Enabled[domain.PlatformNintendo] = false
	focus := NewFocusService(cfg, nil, discardLogger())
	require.NoError(t, focus.Focus(context.Background(), domain.PlatformXbox))

	board := NewPresenceBoard()
	board.Set(domain.PlatformXbox, livePresence())

	sessions := []domain.Session{
		{Provider: domain.ProviderTwitch, State: domain.SessionFailed, LastError: domain.ErrorKindAcquisitionFailed},
		{Provider: domain.ProviderXbox, State: domain.SessionAuthenticated, Account: &domain.Account{ID: "oid-1", Username: "gamer@example.com"}},
	}

	status := BuildStatus(sessions, focus, board, DisplayDark)

	assert.Equal(t, "xbox", status.Focused)
	assert.True(t, status.PollingActive)
	assert.Equal(t, DisplayDark, status.Mode)

	require.Len(t, status.Sessions, 2)
	assert.Equal(t, domain.ErrorKindAcquisitionFailed, status.Sessions[0].LastError)
	assert.Empty(t, status.Sessions[0].Account)
	assert.Equal(t, "gamer@example.com", status.Sessions[1].Account)

	require.Len(t, status.Platforms, 4)
	assert.Equal(t, domain.PlatformNintendo, status.Platforms[0].Platform)
	assert.False(t, status.Platforms[0].Enabled)

	xbox := status.Platforms[3]
	assert.Equal(t, domain.PlatformXbox, xbox.Platform)
	assert.True(t, xbox.Focused)
	assert.True(t, xbox.Style.Live)
	assert.Equal(t, "Halo Infinite", xbox.Presence.Details)
	assert.Contains(t, xbox.CSS, "background-image")

	steam := status.Platforms[2]
	assert.False(t, steam.Style.Live)
	assert.Equal(t, "#ffffff", steam.Style.Color)
	assert.Contains(t, steam.CSS, "mask-image")
}

func TestBuildStatusWithoutFocus(t *testing.T) {
	t.Parallel()

	focus := NewFocusService(domain.ActivityConfig{}, nil, discardLogger())
	status := BuildStatus(nil, focus, NewPresenceBoard(), DisplayLight)

	assert.Equal(t, "none", status.Focused)
	assert.Empty(t, status.Sessions)
	assert.Len(t, status.Platforms, len(domain.Platforms()))
}
