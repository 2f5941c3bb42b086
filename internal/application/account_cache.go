package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/richpresence-cli/internal/domain"
)

// AccountLister is the read side of a provider's account cache.
type AccountLister interface {
	Accounts(ctx context.Context) ([]domain.Account, error)
}

// AccountCache is the lookup of previously authenticated accounts for one
// provider. Accounts remembered by the owning manager are visible to the next
// read even before the identity client has persisted them.
type AccountCache struct {
	source AccountLister
	logger *slog.Logger

	mu        sync.RWMutex
	overlay   []domain.Account
	forgotten map[domain.AccountID]struct{}
}

func NewAccountCache(source AccountLister, logger *slog.Logger) *AccountCache {
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountCache{
		source:    source,
		logger:    logger,
		forgotten: map[domain.AccountID]struct{}{},
	}
}

// Accounts returns the remembered accounts first, then the source's accounts
// in the source's iteration order.
func (c *AccountCache) Accounts(ctx context.Context) ([]domain.Account, error) {
	var listed []domain.Account
	if c.source != nil {
		var err error
		listed, err = c.source.Accounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("list cached accounts: %w", err)
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(c.overlay)+len(listed))
	seen := make(map[domain.AccountID]struct{}, len(c.overlay)+len(listed))
	for _, account := range c.overlay {
		seen[account.ID] = struct{}{}
		accounts = append(accounts, account)
	}
	for _, account := range listed {
		if _, ok := seen[account.ID]; ok {
			continue
		}
		if _, ok := c.forgotten[account.ID]; ok {
			continue
		}
		seen[account.ID] = struct{}{}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Select returns the first cached account. Several cached accounts are not
// disambiguated: the first one wins and a diagnostic is logged.
func (c *AccountCache) Select(ctx context.Context) (domain.Account, bool, error) {
	accounts, err := c.Accounts(ctx)
	if err != nil {
		return domain.Account{}, false, err
	}

	switch len(accounts) {
	case 0:
		return domain.Account{}, false, nil
	case 1:
		return accounts[0], true, nil
	default:
		c.logger.Debug("multiple accounts detected; selecting first account",
			slog.Int("accounts", len(accounts)),
			slog.String("account_id", string(accounts[0].ID)),
		)
		return accounts[0], true, nil
	}
}

func (c *AccountCache) remember(account domain.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.forgotten, account.ID)
	for i := range c.overlay {
		if c.overlay[i].ID == account.ID {
			c.overlay[i] = account
			return
		}
	}
	c.overlay = append(c.overlay, account)
}

func (c *AccountCache) forget(id domain.AccountID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	overlay := c.overlay[:0]
	for _, account := range c.overlay {
		if account.ID != id {
			overlay = append(overlay, account)
		}
	}
	c.overlay = overlay
	c.forgotten[id] = struct{}{}
}
