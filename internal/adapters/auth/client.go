package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports"
	"golang.org/x/oauth2"
)

type Mode string

const (
	ModeBrowser Mode = "browser"
	ModeDevice  Mode = "device"
)

func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeBrowser, "":
		return ModeBrowser, nil
	case ModeDevice:
		return ModeDevice, nil
	default:
		return "", fmt.Errorf("unsupported login mode %q", raw)
	}
}

// Endpoints are paths relative to the provider authority.
type Endpoints struct {
	AuthPath   string
	TokenPath  string
	DevicePath string
}

type Options struct {
	Provider   domain.ProviderConfig
	Endpoints  Endpoints
	Mode       Mode
	ListenAddr string
	// Timeout bounds an interactive acquisition when the caller's context
	// has no deadline.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// silentErrorCodes are token endpoint errors that only a new interactive
// sign-in can resolve.
var silentErrorCodes = map[string]struct{}{
	"invalid_grant":        {},
	"interaction_required": {},
	"login_required":       {},
	"consent_required":     {},
}

// Client is an OAuth 2.0 public client for one provider. Tokens live in the
// secret store and accounts in the account repository.
type Client struct {
	opts     Options
	accounts ports.AccountRepository
	secrets  ports.SecretStore
	logger   *slog.Logger
}

func NewClient(opts Options, accounts ports.AccountRepository, secrets ports.SecretStore, logger *slog.Logger) (*Client, error) {
	if err := opts.Provider.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.Provider.Authority) == "" {
		return nil, fmt.Errorf("provider %s: authority is required", opts.Provider.ID)
	}
	if accounts == nil {
		return nil, errors.New("account repository is required")
	}
	if secrets == nil {
		return nil, errors.New("secret store is required")
	}
	if opts.Mode == "" {
		opts.Mode = ModeBrowser
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		opts:     opts,
		accounts: accounts,
		secrets:  secrets,
		logger: logger.With(
			slog.String("component", "identity"),
			slog.String("provider", string(opts.Provider.ID)),
		),
	}, nil
}

func (c *Client) Accounts(ctx context.Context) ([]domain.Account, error) {
	return c.accounts.List(ctx, c.opts.Provider.ID)
}

func (c *Client) RemoveAccount(ctx context.Context, account domain.Account) error {
	var errs []error
	if err := c.secrets.Delete(ctx, c.secretRef(account)); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		errs = append(errs, fmt.Errorf("delete cached tokens: %w", err))
	}
	if err := c.accounts.Delete(ctx, c.opts.Provider.ID, account.ID); err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		errs = append(errs, fmt.Errorf("delete account: %w", err))
	}
	return errors.Join(errs...)
}

// AcquireSilently returns the account when its cached access token is still
// valid, otherwise refreshes it. A missing or rejected refresh token, or a
// cached grant without the requested scopes, yields
// domain.ErrInteractionRequired.
func (c *Client) AcquireSilently(ctx context.Context, account domain.Account, scopes []string) (domain.Account, error) {
	raw, err := c.secrets.Get(ctx, c.secretRef(account))
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Account{}, fmt.Errorf("no cached tokens: %w", domain.ErrInteractionRequired)
		}
		return domain.Account{}, fmt.Errorf("read cached tokens: %w", err)
	}

	cached, err := decodeTokens(raw)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: %w", domain.ErrInteractionRequired, err)
	}

	// A refresh keeps the original grant, so a wider request needs consent.
	if !cached.covers(scopes) {
		return domain.Account{}, fmt.Errorf("cached grant %q lacks requested scopes: %w", cached.Scope, domain.ErrInteractionRequired)
	}

	current := cached.oauth2Token()
	if current.Valid() {
		return account, nil
	}
	if current.RefreshToken == "" {
		return domain.Account{}, fmt.Errorf("access token expired without refresh token: %w", domain.ErrInteractionRequired)
	}

	conf, err := c.config("", scopes)
	if err != nil {
		return domain.Account{}, err
	}
	refreshed, err := conf.TokenSource(c.httpContext(ctx), current).Token()
	if err != nil {
		return domain.Account{}, classifyTokenError("refresh token", err)
	}

	c.logger.Debug("access token refreshed", slog.String("account_id", string(account.ID)))
	return c.store(ctx, refreshed, cached, account)
}

// AcquireInteractively runs the configured flow and hands its URL to opener.
func (c *Client) AcquireInteractively(ctx context.Context, scopes []string, opener ports.PromptOpener) (domain.Account, error) {
	if opener == nil {
		return domain.Account{}, errors.New("prompt opener is required")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	var (
		tok *oauth2.Token
		err error
	)
	switch c.opts.Mode {
	case ModeDevice:
		tok, err = c.deviceFlow(ctx, scopes, opener)
	default:
		tok, err = c.browserFlow(ctx, scopes, opener)
	}
	if err != nil {
		return domain.Account{}, err
	}

	// Without a scope in the response the grant is what was asked for.
	return c.store(ctx, tok, storedTokens{Scope: strings.Join(scopes, " ")}, domain.Account{})
}

func (c *Client) browserFlow(ctx context.Context, scopes []string, opener ports.PromptOpener) (*oauth2.Token, error) {
	state, err := NewState()
	if err != nil {
		return nil, err
	}
	callback, err := StartCallbackServer(c.opts.ListenAddr, state)
	if err != nil {
		return nil, err
	}
	defer func() { _ = callback.Close() }()

	conf, err := c.config(callback.RedirectURI(), scopes)
	if err != nil {
		return nil, err
	}

	verifier := oauth2.GenerateVerifier()
	authURL := conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	c.logger.Debug("opening authorization url", slog.String("redirect_uri", callback.RedirectURI()))
	if err := opener.Open(ctx, authURL); err != nil {
		return nil, fmt.Errorf("open authorization url: %w", err)
	}

	code, err := callback.WaitForCode(ctx)
	if err != nil {
		return nil, err
	}

	tok, err := conf.Exchange(c.httpContext(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, classifyTokenError("exchange authorization code", err)
	}
	return tok, nil
}

func (c *Client) deviceFlow(ctx context.Context, scopes []string, opener ports.PromptOpener) (*oauth2.Token, error) {
	conf, err := c.config("", scopes)
	if err != nil {
		return nil, err
	}
	if conf.Endpoint.DeviceAuthURL == "" {
		return nil, fmt.Errorf("provider %s has no device authorization endpoint", c.opts.Provider.ID)
	}

	httpCtx := c.httpContext(ctx)
	device, err := conf.DeviceAuth(httpCtx)
	if err != nil {
		return nil, classifyTokenError("request device code", err)
	}

	if presenter, ok := opener.(ports.DeviceCodePresenter); ok {
		err = presenter.PresentDeviceCode(ctx, device.VerificationURI, device.UserCode)
	} else {
		verificationURL := device.VerificationURIComplete
		if verificationURL == "" {
			verificationURL = device.VerificationURI
		}
		err = opener.Open(ctx, verificationURL)
	}
	if err != nil {
		return nil, fmt.Errorf("present device code: %w", err)
	}

	tok, err := conf.DeviceAccessToken(httpCtx, device)
	if err != nil {
		return nil, classifyTokenError("poll device token", err)
	}
	return tok, nil
}

// store persists tokens and the account derived from the id token. known is
// used when the token response carries no id token.
func (c *Client) store(ctx context.Context, tok *oauth2.Token, previous storedTokens, known domain.Account) (domain.Account, error) {
	stored := storedFromOAuth2(tok, previous)

	claims, err := parseIDToken(stored.IDToken)
	if err != nil {
		return domain.Account{}, err
	}
	account := accountFromClaims(c.opts.Provider.ID, claims)
	if known.ID != "" && (len(claims) == 0 || account.ID == known.ID) {
		account = mergeAccount(known, account)
	}

	encoded, err := encodeTokens(stored)
	if err != nil {
		return domain.Account{}, err
	}
	if err := c.secrets.Put(ctx, account.SecretRef, encoded); err != nil {
		return domain.Account{}, fmt.Errorf("store tokens: %w", err)
	}
	if err := c.accounts.Save(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("save account: %w", err)
	}

	c.logger.Debug("account stored",
		slog.String("account_id", string(account.ID)),
		slog.Any("claims", sortedClaimKeys(account.Claims)),
	)
	return account, nil
}

func mergeAccount(known, fresh domain.Account) domain.Account {
	out := known
	if fresh.Username != "" {
		out.Username = fresh.Username
	}
	if fresh.LoginHint != "" {
		out.LoginHint = fresh.LoginHint
	}
	if len(fresh.Claims) > 0 {
		out.Claims = fresh.Claims
	}
	if out.SecretRef == "" {
		out.SecretRef = domain.TokenSecretRef(out.Provider, out.ID)
	}
	return out
}

func (c *Client) config(redirectURL string, scopes []string) (*oauth2.Config, error) {
	authURL, err := endpointURL(c.opts.Provider.Authority, c.opts.Endpoints.AuthPath)
	if err != nil {
		return nil, err
	}
	tokenURL, err := endpointURL(c.opts.Provider.Authority, c.opts.Endpoints.TokenPath)
	if err != nil {
		return nil, err
	}
	var deviceURL string
	if c.opts.Endpoints.DevicePath != "" {
		deviceURL, err = endpointURL(c.opts.Provider.Authority, c.opts.Endpoints.DevicePath)
		if err != nil {
			return nil, err
		}
	}
	if len(scopes) == 0 {
		scopes = c.opts.Provider.Scopes
	}

	return &oauth2.Config{
		ClientID:    c.opts.Provider.ClientID,
		RedirectURL: redirectURL,
		Scopes:      scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:       authURL,
			TokenURL:      tokenURL,
			DeviceAuthURL: deviceURL,
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}, nil
}

func (c *Client) httpContext(ctx context.Context) context.Context {
	if c.opts.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, c.opts.HTTPClient)
}

func (c *Client) secretRef(account domain.Account) string {
	if account.SecretRef != "" {
		return account.SecretRef
	}
	return domain.TokenSecretRef(c.opts.Provider.ID, account.ID)
}

func classifyTokenError(op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if _, ok := silentErrorCodes[retrieveErr.ErrorCode]; ok {
			return fmt.Errorf("%s: %s: %w", op, retrieveErr.ErrorCode, domain.ErrInteractionRequired)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func endpointURL(authority, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("endpoint path is required")
	}

	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(authority), "/"))
	if err != nil {
		return "", fmt.Errorf("parse authority: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return "", errors.New("authority must use http or https")
	}
	if base.Host == "" {
		return "", errors.New("authority host is required")
	}

	base.Path = strings.TrimRight(base.Path, "/") + "/" + strings.TrimLeft(path, "/")
	return base.String(), nil
}
