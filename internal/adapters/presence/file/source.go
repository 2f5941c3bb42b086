package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// presenceSchema is the snapshot an external bridge writes for one platform.
type presenceSchema struct {
	Details      string        `toml:"details"`
	State        string        `toml:"state"`
	LargeImage   string        `toml:"large_image"`
	LargeText    string        `toml:"large_text"`
	SmallImage   string        `toml:"small_image"`
	SmallText    string        `toml:"small_text"`
	StartedAt    *time.Time    `toml:"started_at"`
	StoreButton  *buttonSchema `toml:"store_button"`
	TwitchButton *buttonSchema `toml:"twitch_button"`
}

type buttonSchema struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// Source reads <dir>/<platform>.toml on every poll. A missing file or one
// without details means the platform is idle.
type Source struct {
	platform domain.Platform
	path     string
}

var _ ports.PresenceSource = (*Source)(nil)

func NewSource(dir string, platform domain.Platform) (*Source, error) {
	if !platform.Valid() {
		return nil, fmt.Errorf("presence source %q: %w", platform, domain.ErrUnknownPlatform)
	}
	return &Source{platform: platform, path: filepath.Join(dir, string(platform)+".toml")}, nil
}

// NewSources builds one source per focusable platform.
func NewSources(dir string) []ports.PresenceSource {
	sources := make([]ports.PresenceSource, 0, len(domain.Platforms()))
	for _, p := range domain.Platforms() {
		sources = append(sources, &Source{platform: p, path: filepath.Join(dir, string(p)+".toml")})
	}
	return sources
}

func (s *Source) Platform() domain.Platform {
	return s.platform
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Poll(ctx context.Context) (*domain.Presence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s presence: %w", s.platform, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s presence: %w", s.platform, err)
	}

	var snapshot presenceSchema
	if err := toml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode %s presence: %w", s.platform, err)
	}
	if snapshot.Details == "" {
		return nil, nil
	}

	startedAt := info.ModTime().UTC()
	if snapshot.StartedAt != nil {
		startedAt = snapshot.StartedAt.UTC()
	}

	return &domain.Presence{
		Details:      snapshot.Details,
		State:        snapshot.State,
		LargeImage:   snapshot.LargeImage,
		LargeText:    snapshot.LargeText,
		SmallImage:   snapshot.SmallImage,
		SmallText:    snapshot.SmallText,
		StartedAt:    startedAt,
		StoreButton:  toButton(snapshot.StoreButton),
		TwitchButton: toButton(snapshot.TwitchButton),
	}, nil
}

func toButton(b *buttonSchema) *domain.Button {
	if b == nil || b.URL == "" {
		return nil
	}
	return &domain.Button{Label: b.Label, URL: b.URL}
}
