package domain

import "strings"

type AccountID string

// Account is an identity previously authenticated against a provider.
type Account struct {
	ID       AccountID
	Provider ProviderID
	Username string
	// LoginHint pre-fills logout and re-login flows. Usually the login_hint
	// claim of the last id token.
	LoginHint string
	Claims    map[string]string
	// SecretRef points to the cached token entry, typically
	// "richpresence/<provider>/<account>/oauth_tokens".
	SecretRef string
}

func (a Account) DisplayName() string {
	if name := strings.TrimSpace(a.Username); name != "" {
		return name
	}
	return string(a.ID)
}

// TokenSecretRef is the secret-store key holding an account's cached tokens.
func TokenSecretRef(provider ProviderID, id AccountID) string {
	return "richpresence/" + string(provider) + "/" + string(id) + "/oauth_tokens"
}
