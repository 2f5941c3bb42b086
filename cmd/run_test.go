package cmd

import (
	"context"
	"io"
	"maps"
	"testing"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyReloadUpdatesIntervalsAndIdlesDisabledPlatforms(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, enabledPlatformsConfig))
	t.Setenv("HOME", home)
	t.Setenv("RP_CONFIG", "")
	t.Setenv("RP_SECRETS_BACKEND", "file")
	t.Setenv("RP_LOGIN_OPEN_BROWSER", "false")

	a := &app{}
	require.NoError(t, a.wire(rootFlags{}, io.Discard))
	ctx := context.Background()
	require.NoError(t, a.focus.Focus(ctx, domain.PlatformSteam))
	a.board.Set(domain.PlatformSteam, &domain.Presence{Details: "Hades"})

	reloaded := a.cfg
	reloaded.Activity = a.cfg.Activity.Clone()
	reloaded.Activity.Enabled[domain.PlatformSteam] = false
	reloaded.PollIntervals = maps.Clone(a.cfg.PollIntervals)
	reloaded.PollIntervals[domain.PlatformXbox] = 45 * time.Second

	applyReload(ctx, a, reloaded, nil)

	assert.Equal(t, 45*time.Second, a.poller.Intervals()[domain.PlatformXbox])
	assert.Nil(t, a.board.Get(domain.PlatformSteam))
	assert.Equal(t, domain.PlatformXbox, a.focus.Focused())
}

func TestApplyReloadKeepsSettingsOnError(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, enabledPlatformsConfig))
	t.Setenv("HOME", home)
	t.Setenv("RP_CONFIG", "")
	t.Setenv("RP_SECRETS_BACKEND", "file")

	a := &app{}
	require.NoError(t, a.wire(rootFlags{}, io.Discard))
	before := a.poller.Intervals()

	applyReload(context.Background(), a, a.cfg, assert.AnError)

	assert.Equal(t, before, a.poller.Intervals())
	assert.True(t, a.focus.ActivityConfig().IsEnabled(domain.PlatformSteam))
}
