package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
)

// ClientFactory builds the identity client of a provider on first use.
type ClientFactory func(provider domain.ProviderConfig) (ports.IdentityClient, error)

// SessionRegistry owns one SessionManager per configured provider. Managers
// are independent and may run acquisitions concurrently.
type SessionRegistry struct {
	providers map[domain.ProviderID]domain.ProviderConfig
	factory   ClientFactory
	opener    ports.PromptOpener
	opts      []SessionManagerOption

	mu       sync.Mutex
	managers map[domain.ProviderID]*SessionManager
}

func NewSessionRegistry(providers []domain.ProviderConfig, factory ClientFactory, opener ports.PromptOpener, opts ...SessionManagerOption) *SessionRegistry {
	byID := make(map[domain.ProviderID]domain.ProviderConfig, len(providers))
	for _, provider := range providers {
		byID[provider.ID] = provider
	}

	return &SessionRegistry{
		providers: byID,
		factory:   factory,
		opener:    opener,
		opts:      opts,
		managers:  map[domain.ProviderID]*SessionManager{},
	}
}

// Providers lists the configured provider ids in sorted order.
func (r *SessionRegistry) Providers() []domain.ProviderID {
	ids := make([]domain.ProviderID, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Manager returns the provider's manager, creating it on first use.
func (r *SessionRegistry) Manager(id domain.ProviderID) (*SessionManager, error) {
	provider, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if manager, ok := r.managers[id]; ok {
		return manager, nil
	}

	client, err := r.factory(provider)
	if err != nil {
		return nil, fmt.Errorf("create identity client for %s: %w", id, err)
	}
	opener := r.opener
	if scoped, ok := opener.(ports.ProviderScopedOpener); ok {
		opener = scoped.ForProvider(id)
	}
	manager := NewSessionManager(provider, client, opener, r.opts...)
	r.managers[id] = manager

	return manager, nil
}

func (r *SessionRegistry) Login(ctx context.Context, id domain.ProviderID, scopes []string) (*domain.Account, error) {
	manager, err := r.Manager(id)
	if err != nil {
		return nil, err
	}
	return manager.Login(ctx, r.scopes(manager, scopes))
}

func (r *SessionRegistry) LoginInteractive(ctx context.Context, id domain.ProviderID, scopes []string) (*domain.Account, error) {
	manager, err := r.Manager(id)
	if err != nil {
		return nil, err
	}
	return manager.LoginInteractive(ctx, r.scopes(manager, scopes))
}

func (r *SessionRegistry) Logout(ctx context.Context, id domain.ProviderID) error {
	manager, err := r.Manager(id)
	if err != nil {
		return err
	}
	return manager.Logout(ctx)
}

func (r *SessionRegistry) Resume(ctx context.Context, id domain.ProviderID) (*domain.Account, error) {
	manager, err := r.Manager(id)
	if err != nil {
		return nil, err
	}
	return manager.Resume(ctx, r.scopes(manager, nil))
}

func (r *SessionRegistry) Forget(ctx context.Context, id domain.ProviderID) (int, error) {
	manager, err := r.Manager(id)
	if err != nil {
		return 0, err
	}
	return manager.Forget(ctx)
}

// Session reports a provider's session. Providers without a manager yet are
// unauthenticated.
func (r *SessionRegistry) Session(id domain.ProviderID) (domain.Session, error) {
	if _, ok := r.providers[id]; !ok {
		return domain.Session{}, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, id)
	}

	r.mu.Lock()
	manager, ok := r.managers[id]
	r.mu.Unlock()
	if !ok {
		return domain.NewSession(id), nil
	}
	return manager.Session(), nil
}

// Sessions reports every configured provider's session, sorted by provider.
func (r *SessionRegistry) Sessions() []domain.Session {
	ids := r.Providers()
	sessions := make([]domain.Session, 0, len(ids))
	for _, id := range ids {
		session, err := r.Session(id)
		if err != nil {
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions
}

func (r *SessionRegistry) scopes(manager *SessionManager, requested []string) []string {
	if len(requested) > 0 {
		return requested
	}
	defaults := manager.Provider().Scopes
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}
