package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
)

// NextFocus returns the first enabled platform in priority order other than
// excluded, or domain.PlatformNone.
func NextFocus(cfg domain.ActivityConfig, excluded domain.Platform) domain.Platform {
	for _, p := range cfg.PriorityOrder() {
		if p == excluded {
			continue
		}
		if cfg.IsEnabled(p) {
			return p
		}
	}
	return domain.PlatformNone
}

// FocusService owns the focus cell. The activity config is swapped wholesale
// and never mutated in place.
type FocusService struct {
	repo   ports.FocusRepository
	logger *slog.Logger

	cfg atomic.Pointer[domain.ActivityConfig]

	mu    sync.Mutex
	state domain.FocusState
}

// NewFocusService starts with no focus. repo may be nil.
func NewFocusService(cfg domain.ActivityConfig, repo ports.FocusRepository, logger *slog.Logger) *FocusService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &FocusService{
		repo:   repo,
		logger: logger.With(slog.String("component", "focus")),
	}
	s.SetActivityConfig(cfg)
	return s
}

// ActivityConfig returns a copy of the current config.
func (s *FocusService) ActivityConfig() domain.ActivityConfig {
	return s.cfg.Load().Clone()
}

// SetActivityConfig replaces the config. Focus is not re-derived until
// Rederive is called.
func (s *FocusService) SetActivityConfig(cfg domain.ActivityConfig) {
	clone := cfg.Clone()
	s.cfg.Store(&clone)
}

func (s *FocusService) Focused() domain.Platform {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Focused
}

// Restore loads the persisted focus and re-derives it against the current
// config.
func (s *FocusService) Restore(ctx context.Context) (domain.Platform, error) {
	if s.repo == nil {
		return s.Focused(), nil
	}

	state, err := s.repo.Load(ctx)
	if err != nil {
		return domain.PlatformNone, fmt.Errorf("load focus: %w", err)
	}

	s.mu.Lock()
	if state.Focused.IsNone() || state.Focused.Valid() {
		s.state = state
	} else {
		s.state = domain.FocusState{}
	}
	s.mu.Unlock()

	return s.Rederive(ctx)
}

// Focus sets the focus directly without consulting priority. PlatformNone
// clears it. Platforms that are not enabled are rejected.
func (s *FocusService) Focus(ctx context.Context, p domain.Platform) error {
	if !p.IsNone() && !p.Valid() {
		return fmt.Errorf("focus: %w: %q", domain.ErrUnknownPlatform, p)
	}
	if !p.IsNone() && !s.ActivityConfig().IsEnabled(p) {
		return fmt.Errorf("focus %s: %w", p, domain.ErrPlatformDisabled)
	}

	return s.write(ctx, p)
}

// Unfocus moves focus to the next enabled platform in priority order,
// skipping p.
func (s *FocusService) Unfocus(ctx context.Context, p domain.Platform) (domain.Platform, error) {
	next := NextFocus(s.ActivityConfig(), p)
	return next, s.write(ctx, next)
}

// Rederive keeps a focus that is still enabled and otherwise picks the next
// one in priority order.
func (s *FocusService) Rederive(ctx context.Context) (domain.Platform, error) {
	cfg := s.ActivityConfig()

	s.mu.Lock()
	current := s.state
	s.mu.Unlock()

	if current.Focused.IsNone() || cfg.IsEnabled(current.Focused) {
		return current.Focused, nil
	}

	next := NextFocus(cfg, domain.PlatformNone)
	s.logger.Info("focused platform disabled; re-deriving focus",
		slog.String("from", current.Focused.String()),
		slog.String("to", next.String()),
	)
	return next, s.write(ctx, next)
}

func (s *FocusService) write(ctx context.Context, p domain.Platform) error {
	s.mu.Lock()
	s.state = domain.FocusState{Focused: p}
	state := s.state
	s.mu.Unlock()

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(ctx, state); err != nil {
		return fmt.Errorf("save focus: %w", err)
	}
	return nil
}
