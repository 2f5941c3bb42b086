package chain

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	filestore "github.com/bnema/richpresence-cli/internal/adapters/secrets/file"
	"github.com/bnema/richpresence-cli/internal/domain"
	portmocks "github.com/bnema/richpresence-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tokenKey = "richpresence/xbox/oid-1/oauth_tokens"

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockSecretStore(t))
	assert.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockSecretStore(t), nil)
	assert.ErrorIs(t, err, errNilFallbackStore)

	assert.Panics(t, func() { NewStore(nil, nil) })
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackAndLogs(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback, WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
	assert.Contains(t, logs.String(), "secret backend fallback")
	assert.Contains(t, logs.String(), "op=get")
}

func TestStoreGetCombinesErrorsAndKeepsNotFound(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, tokenKey, "secret").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, tokenKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), tokenKey, "secret"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, tokenKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), tokenKey, "secret"))
}

func TestStoreDeleteFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), tokenKey))
}

func TestStoreDoesNotFallbackOnCancelledContext(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", context.Canceled).Once()
	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(context.DeadlineExceeded).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Delete(context.Background(), tokenKey), context.DeadlineExceeded)
}

func TestStoreWithRealFileFallback(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "secrets")
	primary := portmocks.NewMockSecretStore(t)
	primary.EXPECT().Put(mock.Anything, tokenKey, "tokens").Return(errors.New("no pass")).Once()
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", errors.New("no pass")).Once()

	store := NewStore(primary, filestore.NewStore(root))
	require.NoError(t, store.Put(context.Background(), tokenKey, "tokens"))

	got, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tokens", got)
}
