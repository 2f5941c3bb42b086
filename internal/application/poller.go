package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
	"github.com/robfig/cron/v3"
)

const (
	DefaultPollInterval     = 30 * time.Second
	DefaultXboxPollInterval = 10 * time.Second
)

// DefaultPollIntervals returns the tick of every platform.
func DefaultPollIntervals() map[domain.Platform]time.Duration {
	intervals := make(map[domain.Platform]time.Duration, len(domain.Platforms()))
	for _, p := range domain.Platforms() {
		intervals[p] = DefaultPollInterval
	}
	intervals[domain.PlatformXbox] = DefaultXboxPollInterval
	return intervals
}

// ActivityConfigSource yields the current activity config.
type ActivityConfigSource interface {
	ActivityConfig() domain.ActivityConfig
}

// Poller feeds the presence board from per-platform sources on a schedule.
type Poller struct {
	board     *PresenceBoard
	config    ActivityConfigSource
	sources   map[domain.Platform]ports.PresenceSource
	intervals map[domain.Platform]time.Duration
	logger    *slog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

func NewPoller(board *PresenceBoard, config ActivityConfigSource, sources []ports.PresenceSource, intervals map[domain.Platform]time.Duration, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}

	bySource := make(map[domain.Platform]ports.PresenceSource, len(sources))
	for _, source := range sources {
		bySource[source.Platform()] = source
	}
	return &Poller{
		board:     board,
		config:    config,
		sources:   bySource,
		intervals: mergeIntervals(intervals),
		logger:    logger.With(slog.String("component", "poller")),
	}
}

// PollOnce polls one platform and reports whether the board changed. Nothing
// is polled while polling is inactive or the platform is disabled, and the
// platform's last record is dropped. Errors leave the board untouched.
func (p *Poller) PollOnce(ctx context.Context, platform domain.Platform) (bool, error) {
	cfg := p.config.ActivityConfig()
	if !cfg.PollingActive || !cfg.IsEnabled(platform) {
		if p.board.Get(platform) == nil {
			return false, nil
		}
		p.board.Set(platform, nil)
		return true, nil
	}
	source, ok := p.sources[platform]
	if !ok {
		return false, nil
	}

	next, err := source.Poll(ctx)
	if err != nil {
		return false, fmt.Errorf("poll %s: %w", platform, err)
	}
	if next != nil && next.TwitchButton == nil {
		next.TwitchButton = domain.TwitchButton(next.Details)
	}

	// Same activity: keep the previous record and its start time.
	if !domain.DiffersModuloTime(p.board.Get(platform), next) {
		return false, nil
	}
	p.board.Set(platform, next)
	return true, nil
}

// Start schedules every platform with a source. Stop cancels the schedule.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron != nil {
		return errors.New("poller already started")
	}
	c, err := p.schedule(ctx)
	if err != nil {
		return err
	}
	p.cron = c
	return nil
}

// Stop halts the schedule and waits for running polls.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
	p.cron = nil
}

// Intervals returns a copy of the effective poll intervals.
func (p *Poller) Intervals() map[domain.Platform]time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	return maps.Clone(p.intervals)
}

// SetIntervals replaces the poll intervals and reports whether they changed.
// A running schedule is rebuilt with the new intervals.
func (p *Poller) SetIntervals(ctx context.Context, intervals map[domain.Platform]time.Duration) (bool, error) {
	merged := mergeIntervals(intervals)

	p.mu.Lock()
	defer p.mu.Unlock()

	if maps.Equal(merged, p.intervals) {
		return false, nil
	}
	p.intervals = merged
	if p.cron == nil {
		return true, nil
	}

	<-p.cron.Stop().Done()
	p.cron = nil
	c, err := p.schedule(ctx)
	if err != nil {
		return true, err
	}
	p.cron = c
	return true, nil
}

// schedule starts a cron with one job per platform. Callers hold p.mu.
func (p *Poller) schedule(ctx context.Context) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	for _, platform := range p.platforms() {
		platform := platform
		schedule := "@every " + p.intervals[platform].String()
		if _, err := c.AddFunc(schedule, func() { p.tick(ctx, platform) }); err != nil {
			return nil, fmt.Errorf("schedule %s poll: %w", platform, err)
		}
		p.logger.Debug("scheduled presence poll",
			slog.String("platform", platform.String()),
			slog.Duration("interval", p.intervals[platform]),
		)
	}
	c.Start()
	return c, nil
}

// PollAll polls every platform once, in canonical order.
func (p *Poller) PollAll(ctx context.Context) {
	for _, platform := range p.platforms() {
		p.tick(ctx, platform)
	}
}

func (p *Poller) tick(ctx context.Context, platform domain.Platform) {
	if ctx.Err() != nil {
		return
	}
	changed, err := p.PollOnce(ctx, platform)
	if err != nil {
		p.logger.Warn("presence poll failed", slog.String("platform", platform.String()), slog.Any("error", err))
		return
	}
	if changed {
		p.logger.Debug("presence updated", slog.String("platform", platform.String()))
	}
}

func (p *Poller) platforms() []domain.Platform {
	out := make([]domain.Platform, 0, len(p.sources))
	for platform := range p.sources {
		out = append(out, platform)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func mergeIntervals(intervals map[domain.Platform]time.Duration) map[domain.Platform]time.Duration {
	merged := DefaultPollIntervals()
	for p, interval := range intervals {
		if interval > 0 {
			merged[p] = interval
		}
	}
	return merged
}
