package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// storedTokens is the JSON document kept in the secret store per account.
type storedTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
}

func decodeTokens(secretValue string) (storedTokens, error) {
	var tokens storedTokens
	if err := json.Unmarshal([]byte(secretValue), &tokens); err != nil {
		return storedTokens{}, fmt.Errorf("decode oauth tokens: %w", err)
	}
	if strings.TrimSpace(tokens.AccessToken) == "" {
		return storedTokens{}, errors.New("oauth tokens missing access_token")
	}
	return tokens, nil
}

func encodeTokens(tokens storedTokens) (string, error) {
	payload, err := json.Marshal(tokens)
	if err != nil {
		return "", fmt.Errorf("encode oauth tokens: %w", err)
	}
	return string(payload), nil
}

// storedFromOAuth2 keeps the previous id token and refresh token when a
// refresh response omits them.
func storedFromOAuth2(tok *oauth2.Token, previous storedTokens) storedTokens {
	out := storedTokens{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		IDToken:      previous.IDToken,
		Scope:        previous.Scope,
	}
	if out.RefreshToken == "" {
		out.RefreshToken = previous.RefreshToken
	}
	if idToken, ok := tok.Extra("id_token").(string); ok && idToken != "" {
		out.IDToken = idToken
	}
	if scope := grantedScope(tok.Extra("scope")); scope != "" {
		out.Scope = scope
	}
	if !tok.Expiry.IsZero() {
		out.ExpiresAt = tok.Expiry.Unix()
	}
	return out
}

func (t storedTokens) oauth2Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
	}
	if t.ExpiresAt > 0 {
		tok.Expiry = time.Unix(t.ExpiresAt, 0)
	}
	return tok
}

// grantedScope reads the scope field of a token response. Most providers
// send a space separated string; Twitch sends an array.
func grantedScope(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// Providers do not always echo these back in the granted scope.
var implicitScopes = map[string]struct{}{
	"openid":         {},
	"profile":        {},
	"email":          {},
	"offline_access": {},
}

// covers reports whether the cached grant includes every requested scope.
// Scopes compare case-insensitively. An unknown grant covers anything.
func (t storedTokens) covers(requested []string) bool {
	if strings.TrimSpace(t.Scope) == "" {
		return true
	}
	granted := map[string]struct{}{}
	for _, scope := range strings.Fields(t.Scope) {
		granted[strings.ToLower(scope)] = struct{}{}
	}
	for _, scope := range requested {
		key := strings.ToLower(strings.TrimSpace(scope))
		if key == "" {
			continue
		}
		if _, ok := implicitScopes[key]; ok {
			continue
		}
		if _, ok := granted[key]; !ok {
			return false
		}
	}
	return true
}
