package auth

import (
	"fmt"
	"sort"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// defaultAccountID names the account of providers that return no id token.
const defaultAccountID domain.AccountID = "default"

var claimKeys = []string{"oid", "sub", "tid", "preferred_username", "email", "name", "login_hint"}

// parseIDToken reads claims without verifying the signature. The token came
// straight from the token endpoint over TLS.
func parseIDToken(raw string) (map[string]string, error) {
	if raw == "" {
		return map[string]string{}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("parse id token: %w", err)
	}

	out := make(map[string]string, len(claimKeys))
	for _, key := range claimKeys {
		if value, ok := claims[key].(string); ok && value != "" {
			out[key] = value
		}
	}
	return out, nil
}

func accountFromClaims(provider domain.ProviderID, claims map[string]string) domain.Account {
	id := domain.AccountID(firstClaim(claims, "oid", "sub"))
	if id == "" {
		id = defaultAccountID
	}

	return domain.Account{
		ID:        id,
		Provider:  provider,
		Username:  firstClaim(claims, "preferred_username", "email", "name"),
		LoginHint: firstClaim(claims, "login_hint", "preferred_username", "email"),
		Claims:    claims,
		SecretRef: domain.TokenSecretRef(provider, id),
	}
}

func firstClaim(claims map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := claims[key]; value != "" {
			return value
		}
	}
	return ""
}

func sortedClaimKeys(claims map[string]string) []string {
	keys := make([]string, 0, len(claims))
	for key := range claims {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
