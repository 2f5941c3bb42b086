package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
	"github.com/google/uuid"
)

// SessionManager drives the session of one identity provider.
//
// Login, LoginInteractive and Logout are single flight: a call issued while
// another one runs returns domain.ErrBusy before doing any I/O.
type SessionManager struct {
	provider domain.ProviderConfig
	client   ports.IdentityClient
	opener   ports.PromptOpener
	cache    *AccountCache
	logger   *slog.Logger
	clock    ports.Clock

	newAttemptID func() string

	inFlight atomic.Bool

	mu      sync.RWMutex
	session domain.Session
}

type SessionManagerOption func(*SessionManager)

func WithLogger(logger *slog.Logger) SessionManagerOption {
	return func(m *SessionManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithClock(clock ports.Clock) SessionManagerOption {
	return func(m *SessionManager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithAttemptIDs overrides the generator of acquisition attempt ids.
func WithAttemptIDs(next func() string) SessionManagerOption {
	return func(m *SessionManager) {
		if next != nil {
			m.newAttemptID = next
		}
	}
}

func NewSessionManager(provider domain.ProviderConfig, client ports.IdentityClient, opener ports.PromptOpener, opts ...SessionManagerOption) *SessionManager {
	m := &SessionManager{
		provider:     provider,
		client:       client,
		opener:       opener,
		logger:       slog.Default(),
		clock:        ports.SystemClock{},
		newAttemptID: uuid.NewString,
		session:      domain.NewSession(provider.ID),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(
		slog.String("component", "session"),
		slog.String("provider", string(provider.ID)),
	)
	m.cache = NewAccountCache(client, m.logger)

	return m
}

func (m *SessionManager) Provider() domain.ProviderConfig {
	return m.provider
}

func (m *SessionManager) Cache() *AccountCache {
	return m.cache
}

// Session returns a snapshot of the managed session.
func (m *SessionManager) Session() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := m.session
	if snapshot.Account != nil {
		account := *snapshot.Account
		snapshot.Account = &account
	}
	return snapshot
}

// Login resolves to an account or nil. Silent acquisition runs when an
// account is known; an interaction-required answer falls through to exactly
// one interactive attempt with the same scopes. Every other failure is logged
// and recorded on the session. The only returned error is domain.ErrBusy.
func (m *SessionManager) Login(ctx context.Context, scopes []string) (*domain.Account, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrBusy
	}
	defer m.inFlight.Store(false)

	logger := m.logger.With(slog.String("attempt_id", m.newAttemptID()))
	started := m.clock.Now()

	account, err := m.login(ctx, scopes, logger)
	if err != nil {
		m.fail(err)
		logger.Warn("login failed",
			slog.String("error_kind", string(domain.KindOf(err))),
			slog.Duration("elapsed", m.clock.Now().Sub(started)),
			slog.Any("error", err),
		)
		return nil, nil
	}

	logger.Info("login succeeded",
		slog.String("account_id", string(account.ID)),
		slog.Duration("elapsed", m.clock.Now().Sub(started)),
	)
	return account, nil
}

// LoginInteractive skips the silent path and surfaces interactive failures
// wrapped with domain.ErrAcquisitionFailed.
func (m *SessionManager) LoginInteractive(ctx context.Context, scopes []string) (*domain.Account, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrBusy
	}
	defer m.inFlight.Store(false)

	logger := m.logger.With(slog.String("attempt_id", m.newAttemptID()))

	account, err := m.acquireInteractively(ctx, scopes, logger)
	if err != nil {
		m.fail(err)
		logger.Warn("interactive login failed", slog.Any("error", err))
		return nil, err
	}

	logger.Info("interactive login succeeded", slog.String("account_id", string(account.ID)))
	return account, nil
}

// Resume restores a session from the account cache without ever prompting.
// It returns nil when no account is cached or the cached one needs
// interaction; other failures are recorded like in Login.
func (m *SessionManager) Resume(ctx context.Context, scopes []string) (*domain.Account, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrBusy
	}
	defer m.inFlight.Store(false)

	logger := m.logger.With(slog.String("attempt_id", m.newAttemptID()))

	m.mu.RLock()
	if current := m.session.Account; current != nil && m.session.State == domain.SessionAuthenticated {
		out := *current
		m.mu.RUnlock()
		return &out, nil
	}
	m.mu.RUnlock()

	known, ok := m.knownAccount(ctx, logger)
	if !ok {
		return nil, nil
	}

	m.setState(domain.SessionAcquiringSilently)
	acquired, err := m.client.AcquireSilently(ctx, known, scopes)
	switch {
	case err == nil:
		logger.Info("session resumed", slog.String("account_id", string(acquired.ID)))
		return m.authenticated(acquired), nil
	case errors.Is(err, domain.ErrInteractionRequired):
		logger.Info("cached account needs interaction", slog.String("account_id", string(known.ID)))
		m.reset()
		return nil, nil
	default:
		m.fail(fmt.Errorf("acquire token silently: %w", err))
		logger.Warn("resume failed", slog.Any("error", err))
		return nil, nil
	}
}

// Forget drops every cached account of the provider without notifying it.
// It is the way out for accounts that can no longer be resumed.
func (m *SessionManager) Forget(ctx context.Context) (int, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return 0, domain.ErrBusy
	}
	defer m.inFlight.Store(false)

	accounts, err := m.cache.Accounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("list cached accounts: %w", err)
	}

	var errs []error
	removed := 0
	for _, account := range accounts {
		m.cache.forget(account.ID)
		if err := m.client.RemoveAccount(ctx, account); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", account.ID, err))
			continue
		}
		removed++
	}

	m.reset()
	return removed, errors.Join(errs...)
}

func (m *SessionManager) login(ctx context.Context, scopes []string, logger *slog.Logger) (*domain.Account, error) {
	m.setState(domain.SessionAcquiringSilently)

	known, ok := m.knownAccount(ctx, logger)
	if !ok {
		logger.Debug("no cached account; starting interactive acquisition")
		return m.acquireInteractively(ctx, scopes, logger)
	}

	acquired, err := m.client.AcquireSilently(ctx, known, scopes)
	if err == nil {
		return m.authenticated(acquired), nil
	}
	if !errors.Is(err, domain.ErrInteractionRequired) {
		return nil, fmt.Errorf("acquire token silently: %w", err)
	}

	logger.Info("silent acquisition requires interaction", slog.String("account_id", string(known.ID)))
	return m.acquireInteractively(ctx, scopes, logger)
}

func (m *SessionManager) knownAccount(ctx context.Context, logger *slog.Logger) (domain.Account, bool) {
	m.mu.RLock()
	current := m.session.Account
	m.mu.RUnlock()
	if current != nil {
		return *current, true
	}

	account, ok, err := m.cache.Select(ctx)
	if err != nil {
		logger.Warn("read account cache", slog.Any("error", err))
		return domain.Account{}, false
	}
	return account, ok
}

func (m *SessionManager) acquireInteractively(ctx context.Context, scopes []string, logger *slog.Logger) (*domain.Account, error) {
	m.setState(domain.SessionAcquiringInteractively)
	logger.Debug("opening interactive prompt", slog.Any("scopes", scopes))

	acquired, err := m.client.AcquireInteractively(ctx, scopes, m.opener)
	if err != nil {
		return nil, fmt.Errorf("%w: interactive: %w", domain.ErrAcquisitionFailed, err)
	}
	return m.authenticated(acquired), nil
}

func (m *SessionManager) authenticated(account domain.Account) *domain.Account {
	if account.Provider == "" {
		account.Provider = m.provider.ID
	}
	// The cache must see the account before the session reports it.
	m.cache.remember(account)

	m.mu.Lock()
	defer m.mu.Unlock()

	current := account
	m.session.Account = &current
	m.session.State = domain.SessionAuthenticated
	m.session.LastError = domain.ErrorKindNone

	out := account
	return &out
}

func (m *SessionManager) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session.Account = nil
	m.session.State = domain.SessionFailed
	m.session.LastError = domain.KindOf(err)
}

func (m *SessionManager) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = domain.NewSession(m.provider.ID)
}

func (m *SessionManager) setState(state domain.SessionState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session.State = state
}

// Logout always completes locally. A failed provider notification is logged
// and never returned; the only returned error is domain.ErrBusy.
func (m *SessionManager) Logout(ctx context.Context) error {
	if !m.inFlight.CompareAndSwap(false, true) {
		return domain.ErrBusy
	}
	defer m.inFlight.Store(false)

	m.mu.Lock()
	if m.session.Account == nil {
		m.mu.Unlock()
		return nil
	}
	account := *m.session.Account
	m.session.State = domain.SessionLoggingOut
	m.mu.Unlock()

	logger := m.logger.With(slog.String("account_id", string(account.ID)))

	if err := m.notifyLogout(ctx, account); err != nil {
		logger.Warn("logout notification failed",
			slog.String("error_kind", string(domain.KindOf(err))),
			slog.Any("error", err),
		)
	}

	m.cache.forget(account.ID)
	if err := m.client.RemoveAccount(ctx, account); err != nil {
		logger.Warn("remove cached account", slog.Any("error", err))
	}

	m.reset()

	logger.Info("logged out")
	return nil
}

func (m *SessionManager) notifyLogout(ctx context.Context, account domain.Account) error {
	logoutURL, ok, err := m.provider.LogoutURL(account.LoginHint)
	if err != nil {
		return fmt.Errorf("%w: build url: %w", domain.ErrLogoutNotificationFailed, err)
	}
	if !ok {
		m.logger.Debug("skipping logout notification: no authority, logout path or login hint")
		return nil
	}
	if m.opener == nil {
		return fmt.Errorf("%w: no prompt opener", domain.ErrLogoutNotificationFailed)
	}
	if err := m.opener.Open(ctx, logoutURL); err != nil {
		return fmt.Errorf("%w: open: %w", domain.ErrLogoutNotificationFailed, err)
	}
	return nil
}
