package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
)

const callbackPath = "/auth/callback"

const signedInPage = "Signed in. You can close this window and return to rp."

var (
	ErrStateMismatch = errors.New("oauth callback state mismatch")
	ErrMissingState  = errors.New("expected state is required")
	errMissingCode   = errors.New("missing authorization code")
)

// ProviderError is an error the provider reported on the redirect.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return e.Code + ": " + e.Description
}

// NewState returns a random OAuth state value.
func NewState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

type redirect struct {
	code string
	err  error
}

// CallbackServer receives the authorization code redirect on loopback. Only
// the first redirect counts.
type CallbackServer struct {
	state    string
	listener net.Listener
	server   *http.Server
	once     sync.Once
	result   chan redirect
	close    sync.Once
	closeErr error
}

func StartCallbackServer(listenAddr string, expectedState string) (*CallbackServer, error) {
	if expectedState == "" {
		return nil, ErrMissingState
	}
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	cb := &CallbackServer{
		state:    expectedState,
		listener: listener,
		result:   make(chan redirect, 1),
	}
	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, cb.serveRedirect)
	cb.server = &http.Server{Handler: mux}

	go func() {
		err := cb.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			cb.deliver(redirect{err: fmt.Errorf("serve oauth callback: %w", err)})
		}
	}()

	return cb, nil
}

func (c *CallbackServer) RedirectURI() string {
	addr, ok := c.listener.Addr().(*net.TCPAddr)
	if !ok {
		return "http://localhost" + callbackPath
	}
	return fmt.Sprintf("http://localhost:%d%s", addr.Port, callbackPath)
}

// WaitForCode blocks until the redirect arrives or ctx is done, then closes
// the server.
func (c *CallbackServer) WaitForCode(ctx context.Context) (string, error) {
	defer func() { _ = c.Close() }()

	select {
	case got := <-c.result:
		return got.code, got.err
	case <-ctx.Done():
		return "", fmt.Errorf("wait for oauth callback: %w", ctx.Err())
	}
}

func (c *CallbackServer) Close() error {
	c.close.Do(func() { c.closeErr = c.server.Close() })
	return c.closeErr
}

func (c *CallbackServer) serveRedirect(w http.ResponseWriter, r *http.Request) {
	got := parseRedirect(r, c.state)
	c.deliver(got)

	switch {
	case errors.Is(got.err, ErrStateMismatch):
		http.Error(w, "state mismatch", http.StatusBadRequest)
	case got.err != nil:
		http.Error(w, "sign-in was not completed", http.StatusBadRequest)
	default:
		_, _ = w.Write([]byte(signedInPage))
	}
}

func parseRedirect(r *http.Request, state string) redirect {
	query := r.URL.Query()
	if query.Get("state") != state {
		return redirect{err: ErrStateMismatch}
	}
	if code := query.Get("error"); code != "" {
		return redirect{err: &ProviderError{Code: code, Description: query.Get("error_description")}}
	}
	if query.Get("code") == "" {
		return redirect{err: errMissingCode}
	}
	return redirect{code: query.Get("code")}
}

func (c *CallbackServer) deliver(got redirect) {
	c.once.Do(func() { c.result <- got })
}
