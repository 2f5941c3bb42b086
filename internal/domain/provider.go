package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type ProviderID string

const (
	ProviderXbox   ProviderID = "xbox"
	ProviderTwitch ProviderID = ProviderID(SourceTwitch)
)

// ProviderConfig is created once at startup and never mutated.
type ProviderConfig struct {
	ID       ProviderID
	ClientID string
	// Authority is optional. Without it no logout notification is sent.
	Authority  string
	LogoutPath string
	Scopes     []string
}

func (c ProviderConfig) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return errors.New("provider id is required")
	}
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("provider %s: client id is required", c.ID)
	}
	return nil
}

// LogoutURL builds the provider-hosted logout address for a login hint.
// ok is false when the authority, logout path or hint is missing.
func (c ProviderConfig) LogoutURL(loginHint string) (string, bool, error) {
	authority := strings.TrimRight(strings.TrimSpace(c.Authority), "/")
	if authority == "" || strings.TrimSpace(c.LogoutPath) == "" || strings.TrimSpace(loginHint) == "" {
		return "", false, nil
	}

	base, err := url.Parse(authority)
	if err != nil {
		return "", false, fmt.Errorf("parse authority: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return "", false, errors.New("authority must use http or https")
	}
	if base.Host == "" {
		return "", false, errors.New("authority host is required")
	}

	base.Path = strings.TrimRight(base.Path, "/") + "/" + strings.TrimLeft(c.LogoutPath, "/")
	q := base.Query()
	q.Set("logout_hint", loginHint)
	base.RawQuery = q.Encode()

	return base.String(), true, nil
}
