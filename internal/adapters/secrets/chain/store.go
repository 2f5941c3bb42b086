package chain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	filestore "github.com/bnema/richpresence-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/richpresence-cli/internal/adapters/secrets/pass"
	"github.com/bnema/richpresence-cli/internal/ports"
)

// Store tries primary first and falls back to the second backend on any
// error other than context cancellation.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   *slog.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, opts ...Option) *Store {
	store, err := NewStoreChecked(primary, fallback, opts...)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore, opts ...Option) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	store := &Store{
		primary:  primary,
		fallback: fallback,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// NewPassFirstWithFileFallback prefers pass and keeps tokens under fileRoot
// on machines without it.
func NewPassFirstWithFileFallback(fileRoot string, opts ...Option) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(), filestore.NewStore(fileRoot), opts...)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}
	s.logFallback(ctx, "put", key, err)

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}
	s.logFallback(ctx, "get", key, err)

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}
	s.logFallback(ctx, "delete", key, err)

	fallbackErr := s.fallback.Delete(ctx, key)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
}

func (s *Store) logFallback(ctx context.Context, op, key string, err error) {
	s.logger.DebugContext(ctx, "secret backend fallback", "op", op, "key", key, "error", err)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
