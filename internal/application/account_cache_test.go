package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountCacheSelectEmpty(t *testing.T) {
	client := mocks.NewMockIdentityClient(t)
	client.EXPECT().Accounts(mockAnyContext()).Return(nil, nil).Once()

	cache := NewAccountCache(client, discardLogger())
	_, ok, err := cache.Select(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountCacheSelectFirstAndLogsDiagnostic(t *testing.T) {
	client := mocks.NewMockIdentityClient(t)
	client.EXPECT().Accounts(mockAnyContext()).Return([]domain.Account{{ID: "acc-1"}, {ID: "acc-2"}}, nil).Once()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cache := NewAccountCache(client, logger)

	account, ok, err := cache.Select(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.AccountID("acc-1"), account.ID)
	assert.Contains(t, logs.String(), "multiple accounts detected")
}

func TestAccountCacheRememberedAccountIsVisibleFirst(t *testing.T) {
	client := mocks.NewMockIdentityClient(t)
	client.EXPECT().Accounts(mockAnyContext()).Return([]domain.Account{{ID: "acc-2"}, {ID: "acc-1", Username: "stale"}}, nil)

	cache := NewAccountCache(client, discardLogger())
	cache.remember(domain.Account{ID: "acc-1", Username: "fresh"})

	accounts, err := cache.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "fresh", accounts[0].Username)
	assert.Equal(t, domain.AccountID("acc-2"), accounts[1].ID)
}

func TestAccountCacheForgetHidesSourceAccount(t *testing.T) {
	client := mocks.NewMockIdentityClient(t)
	client.EXPECT().Accounts(mockAnyContext()).Return([]domain.Account{{ID: "acc-1"}, {ID: "acc-2"}}, nil)

	cache := NewAccountCache(client, discardLogger())
	cache.remember(domain.Account{ID: "acc-1"})
	cache.forget("acc-1")

	accounts, err := cache.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Account{{ID: "acc-2"}}, accounts)

	cache.remember(domain.Account{ID: "acc-1"})
	accounts, err = cache.Accounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestAccountCacheSourceError(t *testing.T) {
	client := mocks.NewMockIdentityClient(t)
	client.EXPECT().Accounts(mockAnyContext()).Return(nil, errors.New("corrupt cache")).Once()

	cache := NewAccountCache(client, discardLogger())
	_, _, err := cache.Select(context.Background())
	assert.ErrorContains(t, err, "corrupt cache")
}
