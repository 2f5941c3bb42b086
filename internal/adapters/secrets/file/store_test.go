package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenKey = "richpresence/xbox/oid-1/oauth_tokens"

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid secret key"},
		{name: "traversal", key: "../escape", wantErr: "invalid secret key"},
		{name: "parent only", key: "..", wantErr: "invalid secret key"},
		{name: "collapses to parent", key: "a/../../secret", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStoreAcceptsDottedFileNames(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Put(context.Background(), "..hidden", "v"))

	got, err := store.Get(context.Background(), "..hidden")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), tokenKey, "first"))
	require.NoError(t, store.Put(context.Background(), tokenKey, "second"))

	got, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	info, err := os.Stat(filepath.Join(root, tokenKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(filepath.Join(root, tokenKey)))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreGetMissingSecret(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	_, err := store.Get(context.Background(), tokenKey)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Put(context.Background(), tokenKey, "value"))

	require.NoError(t, store.Delete(context.Background(), tokenKey))
	require.NoError(t, store.Delete(context.Background(), tokenKey))

	_, err := store.Get(context.Background(), tokenKey)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, tokenKey, "v"), context.Canceled)
	_, err := store.Get(ctx, tokenKey)
	assert.ErrorIs(t, err, context.Canceled)
}
