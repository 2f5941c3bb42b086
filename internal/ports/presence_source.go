package ports

import (
	"context"

	"github.com/bnema/richpresence-cli/internal/domain"
)

// PresenceSource returns the latest presence of one platform, nil when idle.
type PresenceSource interface {
	Platform() domain.Platform
	Poll(ctx context.Context) (*domain.Presence, error)
}
