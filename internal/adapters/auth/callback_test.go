package auth

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackServerReturnsCodeOnSuccess(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI() + "?code=auth-code&state=expected-state")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Signed in")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	code, err := server.WaitForCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "auth-code", code)
}

func TestCallbackServerReturnsErrorOnStateMismatch(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI() + "?code=auth-code&state=wrong-state")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = server.WaitForCode(context.Background())
	assert.ErrorIs(t, err, ErrStateMismatch)
}

func TestCallbackServerReportsProviderError(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI() + "?state=expected-state&error=access_denied&error_description=user+cancelled")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	_, err = server.WaitForCode(context.Background())
	assert.EqualError(t, err, "access_denied: user cancelled")
}

func TestCallbackServerStopsWaitingWhenContextEnds(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = server.WaitForCode(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStartCallbackServerRequiresExpectedState(t *testing.T) {
	t.Parallel()

	_, err := StartCallbackServer("127.0.0.1:0", "")
	assert.ErrorIs(t, err, ErrMissingState)
}

func TestNewStateIsRandom(t *testing.T) {
	first, err := NewState()
	require.NoError(t, err)
	second, err := NewState()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Len(t, first, 22)
}

func TestCallbackServerKeepsFirstRedirect(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	for _, query := range []string{"?code=first&state=expected-state", "?code=second&state=expected-state"} {
		resp, err := http.Get(server.RedirectURI() + query)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	code, err := server.WaitForCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", code)
}

func TestProviderErrorWithoutDescription(t *testing.T) {
	t.Parallel()

	var err error = &ProviderError{Code: "access_denied"}
	assert.EqualError(t, err, "access_denied")
}
