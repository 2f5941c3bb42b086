package ports

import (
	"context"

	"github.com/bnema/richpresence-cli/internal/domain"
)

type AccountRepository interface {
	List(ctx context.Context, provider domain.ProviderID) ([]domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
	Delete(ctx context.Context, provider domain.ProviderID, id domain.AccountID) error
}
