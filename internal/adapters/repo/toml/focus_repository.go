package toml

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	focusPathKey  = "focus.path"
	focusFileName = "focus.toml"
)

// FocusRepository keeps the focused platform between CLI runs.
type FocusRepository struct {
	path  string
	mu    *sync.RWMutex
	clock ports.Clock
}

var _ ports.FocusRepository = (*FocusRepository)(nil)

func NewFocusRepository(cfg *viper.Viper, clock ports.Clock) (*FocusRepository, error) {
	path, err := resolvePath(cfg, focusPathKey, focusFileName)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &FocusRepository{path: path, mu: lockForPath(path), clock: clock}, nil
}

// Load returns no focus when nothing was saved yet.
func (r *FocusRepository) Load(ctx context.Context) (domain.FocusState, error) {
	if err := ctx.Err(); err != nil {
		return domain.FocusState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var file focusFile
	if err := readTOML(r.path, &file); err != nil {
		return domain.FocusState{}, err
	}
	if err := validateVersion("focus", file.Version); err != nil {
		return domain.FocusState{}, err
	}

	focused, err := domain.ParsePlatform(file.Focused)
	if err != nil {
		return domain.FocusState{}, fmt.Errorf("decode focus file: %w", err)
	}
	return domain.FocusState{Focused: focused}, nil
}

func (r *FocusRepository) Save(ctx context.Context, state domain.FocusState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := focusFile{
		Focused:   state.Focused.String(),
		UpdatedAt: r.clock.Now().UTC().Format(time.RFC3339),
	}
	applyVersion(&file.Version)

	return writeTOML(r.path, file)
}
