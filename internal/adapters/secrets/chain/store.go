package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/pixeloracle/internal/adapters/secrets/file"
	passstore "github.com/bnema/pixeloracle/internal/adapters/secrets/pass"
	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
)

// Store consults primary first and falls back on any error other than cancellation.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassFirstWithFileFallback builds the credential chain used at startup.
func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

// Get reports domain.ErrSecretNotFound only when neither backend has the key; any other
// failure surfaces both backend errors.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if isMissing(err) && errors.Is(fallbackErr, domain.ErrSecretNotFound) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes the key from both backends so a stale fallback copy cannot resurface.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err == nil || errors.Is(err, passstore.ErrUnavailable):
		return fallbackErr
	case fallbackErr == nil:
		return err
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
}

func isMissing(err error) bool {
	return errors.Is(err, domain.ErrSecretNotFound) || errors.Is(err, passstore.ErrUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
