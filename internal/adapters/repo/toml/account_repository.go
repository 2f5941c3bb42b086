package toml

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	accountsPathKey  = "accounts.path"
	accountsFileName = "accounts.toml"
)

// AccountRepository stores authenticated accounts of every provider in one
// TOML file.
type AccountRepository struct {
	path  string
	mu    *sync.RWMutex
	clock ports.Clock
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(cfg *viper.Viper, clock ports.Clock) (*AccountRepository, error) {
	path, err := resolvePath(cfg, accountsPathKey, accountsFileName)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AccountRepository{path: path, mu: lockForPath(path), clock: clock}, nil
}

func (r *AccountRepository) Path() string {
	return r.path
}

// List returns the provider's accounts in file order.
func (r *AccountRepository) List(ctx context.Context, provider domain.ProviderID) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.read()
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		if domain.ProviderID(entry.Provider) != provider {
			continue
		}
		accounts = append(accounts, fromAccountSchema(entry))
	}
	return accounts, nil
}

func (r *AccountRepository) Save(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return err
	}

	encoded := toAccountSchema(account, r.clock.Now())
	updated := false
	for i := range file.Accounts {
		if file.Accounts[i].Provider == encoded.Provider && file.Accounts[i].ID == encoded.ID {
			file.Accounts[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Accounts = append(file.Accounts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return writeTOML(r.path, file)
}

func (r *AccountRepository) Delete(ctx context.Context, provider domain.ProviderID, id domain.AccountID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return err
	}

	kept := file.Accounts[:0]
	found := false
	for _, entry := range file.Accounts {
		if domain.ProviderID(entry.Provider) == provider && domain.AccountID(entry.ID) == id {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrAccountNotFound
	}
	file.Accounts = kept

	return writeTOML(r.path, file)
}

func (r *AccountRepository) read() (accountsFile, error) {
	var file accountsFile
	if err := readTOML(r.path, &file); err != nil {
		return accountsFile{}, err
	}
	if err := validateVersion("accounts", file.Version); err != nil {
		return accountsFile{}, err
	}
	applyVersion(&file.Version)
	return file, nil
}

func toAccountSchema(account domain.Account, now time.Time) accountSchema {
	secretRef := account.SecretRef
	if secretRef == "" {
		secretRef = domain.TokenSecretRef(account.Provider, account.ID)
	}

	return accountSchema{
		ID:        string(account.ID),
		Provider:  string(account.Provider),
		Username:  account.Username,
		LoginHint: account.LoginHint,
		SecretRef: secretRef,
		UpdatedAt: now.UTC().Format(time.RFC3339),
		Claims:    account.Claims,
	}
}

func fromAccountSchema(entry accountSchema) domain.Account {
	return domain.Account{
		ID:        domain.AccountID(entry.ID),
		Provider:  domain.ProviderID(entry.Provider),
		Username:  entry.Username,
		LoginHint: entry.LoginHint,
		SecretRef: entry.SecretRef,
		Claims:    entry.Claims,
	}
}
