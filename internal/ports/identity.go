package ports

import (
	"context"

	"github.com/bnema/richpresence-cli/internal/domain"
)

// PromptOpener presents a provider-hosted URL to the user (system browser,
// embedded view, device-code display) and unblocks once it has been handed
// off or the context is done.
type PromptOpener interface {
	Open(ctx context.Context, url string) error
}

// IdentityClient talks to one identity provider.
//
// AcquireSilently returns domain.ErrInteractionRequired (possibly wrapped)
// when only an interactive prompt can produce a credential; any other error
// is a plain failure. Accounts exposes the provider's account cache.
type IdentityClient interface {
	AcquireSilently(ctx context.Context, account domain.Account, scopes []string) (domain.Account, error)
	AcquireInteractively(ctx context.Context, scopes []string, opener PromptOpener) (domain.Account, error)
	Accounts(ctx context.Context) ([]domain.Account, error)
	RemoveAccount(ctx context.Context, account domain.Account) error
}

// DeviceCodePresenter is implemented by openers that can show a device user
// code next to the verification URL.
type DeviceCodePresenter interface {
	PresentDeviceCode(ctx context.Context, verificationURL, userCode string) error
}

// ProviderScopedOpener is implemented by openers that label prompts with the
// provider they belong to.
type ProviderScopedOpener interface {
	ForProvider(id domain.ProviderID) PromptOpener
}
