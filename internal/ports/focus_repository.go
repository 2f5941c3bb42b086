package ports

import (
	"context"

	"github.com/bnema/richpresence-cli/internal/domain"
)

type FocusRepository interface {
	Load(ctx context.Context) (domain.FocusState, error)
	Save(ctx context.Context, state domain.FocusState) error
}
