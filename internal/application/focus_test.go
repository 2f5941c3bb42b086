package application

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allEnabled() domain.ActivityConfig {
	return domain.ActivityConfig{
		PollingActive: true,
		Enabled: map[domain.Platform]bool{
			domain.PlatformNintendo:    true,
			domain.PlatformPlayStation: true,
			domain.PlatformSteam:       true,
			domain.PlatformXbox:        true,
		},
		Priority: []domain.Platform{
			domain.PlatformNintendo,
			domain.PlatformPlayStation,
			domain.PlatformSteam,
			domain.PlatformXbox,
		},
	}
}

func TestNextFocus(t *testing.T) {
	onlySteam := allEnabled()
	onlySteam.Enabled = map[domain.Platform]bool{domain.PlatformSteam: true}

	tests := []struct {
		name     string
		cfg      domain.ActivityConfig
		excluded domain.Platform
		want     domain.Platform
	}{
		{name: "first enabled", cfg: allEnabled(), want: domain.PlatformNintendo},
		{name: "skips excluded", cfg: allEnabled(), excluded: domain.PlatformNintendo, want: domain.PlatformPlayStation},
		{name: "only enabled is excluded", cfg: onlySteam, excluded: domain.PlatformSteam, want: domain.PlatformNone},
		{name: "nothing enabled", cfg: domain.ActivityConfig{}, want: domain.PlatformNone},
		{name: "respects priority", cfg: domain.ActivityConfig{
			Enabled:  map[domain.Platform]bool{domain.PlatformSteam: true, domain.PlatformXbox: true},
			Priority: []domain.Platform{domain.PlatformXbox, domain.PlatformSteam},
		}, want: domain.PlatformXbox},
		{name: "unknown excluded is ignored", cfg: onlySteam, excluded: "sega", want: domain.PlatformSteam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextFocus(tt.cfg, tt.excluded))
		})
	}
}

func TestFocusServiceUnfocusPicksFirstOtherInPriority(t *testing.T) {
	service := NewFocusService(allEnabled(), nil, discardLogger())
	ctx := context.Background()

	require.NoError(t, service.Focus(ctx, domain.PlatformPlayStation))

	next, err := service.Unfocus(ctx, domain.PlatformPlayStation)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformNintendo, next)
	assert.Equal(t, domain.PlatformNintendo, service.Focused())
}

func TestFocusServiceUnfocusOnlyEnabledGivesNone(t *testing.T) {
	cfg := allEnabled()
	cfg.Enabled = map[domain.Platform]bool{domain.PlatformXbox: true}
	service := NewFocusService(cfg, nil, discardLogger())
	ctx := context.Background()

	require.NoError(t, service.Focus(ctx, domain.PlatformXbox))
	next, err := service.Unfocus(ctx, domain.PlatformXbox)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformNone, next)
}

func TestFocusServiceFocusRejectsDisabledAndUnknown(t *testing.T) {
	cfg := allEnabled()
	cfg.Enabled[domain.PlatformSteam] = false
	service := NewFocusService(cfg, nil, discardLogger())
	ctx := context.Background()

	require.NoError(t, service.Focus(ctx, domain.PlatformXbox))

	assert.ErrorIs(t, service.Focus(ctx, domain.PlatformSteam), domain.ErrPlatformDisabled)
	assert.ErrorIs(t, service.Focus(ctx, "sega"), domain.ErrUnknownPlatform)
	assert.Equal(t, domain.PlatformXbox, service.Focused())

	require.NoError(t, service.Focus(ctx, domain.PlatformNone))
	assert.Equal(t, domain.PlatformNone, service.Focused())
}

func TestFocusServiceSetActivityConfigDoesNotRederive(t *testing.T) {
	service := NewFocusService(allEnabled(), nil, discardLogger())
	ctx := context.Background()
	require.NoError(t, service.Focus(ctx, domain.PlatformXbox))

	cfg := allEnabled()
	cfg.Enabled[domain.PlatformXbox] = false
	service.SetActivityConfig(cfg)
	assert.Equal(t, domain.PlatformXbox, service.Focused())

	next, err := service.Rederive(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformNintendo, next)
}

func TestFocusServiceRederiveKeepsEnabledFocus(t *testing.T) {
	service := NewFocusService(allEnabled(), nil, discardLogger())
	ctx := context.Background()
	require.NoError(t, service.Focus(ctx, domain.PlatformSteam))

	next, err := service.Rederive(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformSteam, next)
}

func TestFocusServiceConfigIsCopied(t *testing.T) {
	cfg := allEnabled()
	service := NewFocusService(cfg, nil, discardLogger())

	cfg.Enabled[domain.PlatformXbox] = false
	assert.True(t, service.ActivityConfig().IsEnabled(domain.PlatformXbox))
}

func TestFocusServicePersistsAndRestores(t *testing.T) {
	repo := mocks.NewMockFocusRepository(t)
	service := NewFocusService(allEnabled(), repo, discardLogger())
	ctx := context.Background()

	repo.EXPECT().Save(mockAnyContext(), domain.FocusState{Focused: domain.PlatformSteam}).Return(nil).Once()
	require.NoError(t, service.Focus(ctx, domain.PlatformSteam))

	cfg := allEnabled()
	cfg.Enabled[domain.PlatformSteam] = false
	restored := NewFocusService(cfg, repo, discardLogger())
	repo.EXPECT().Load(mockAnyContext()).Return(domain.FocusState{Focused: domain.PlatformSteam}, nil).Once()
	repo.EXPECT().Save(mockAnyContext(), domain.FocusState{Focused: domain.PlatformNintendo}).Return(nil).Once()

	got, err := restored.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformNintendo, got)
}

func TestFocusServiceSaveErrorKeepsInMemoryFocus(t *testing.T) {
	repo := mocks.NewMockFocusRepository(t)
	service := NewFocusService(allEnabled(), repo, discardLogger())

	repo.EXPECT().Save(mockAnyContext(), domain.FocusState{Focused: domain.PlatformXbox}).Return(errors.New("read-only fs")).Once()
	err := service.Focus(context.Background(), domain.PlatformXbox)
	assert.ErrorContains(t, err, "save focus")
	assert.Equal(t, domain.PlatformXbox, service.Focused())
}

func TestFocusStaysConsistentAfterRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	platforms := domain.Platforms()
	ctx := context.Background()

	for run := 0; run < 200; run++ {
		service := NewFocusService(allEnabled(), nil, discardLogger())

		for step := 0; step < 30; step++ {
			p := platforms[rng.Intn(len(platforms))]
			switch rng.Intn(4) {
			case 0:
				_ = service.Focus(ctx, p)
			case 1:
				_, _ = service.Unfocus(ctx, p)
			case 2, 3:
				cfg := service.ActivityConfig()
				cfg.Enabled[p] = !cfg.Enabled[p]
				shuffled := append([]domain.Platform(nil), platforms...)
				rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
				cfg.Priority = shuffled
				service.SetActivityConfig(cfg)
			}

			_, err := service.Rederive(ctx)
			require.NoError(t, err)

			state := domain.FocusState{Focused: service.Focused()}
			require.True(t, state.Consistent(service.ActivityConfig()),
				"run %d step %d: focus %s is not enabled", run, step, state.Focused)
		}
	}
}
