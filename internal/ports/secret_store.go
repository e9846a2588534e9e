package ports

import "context"

// SecretStore holds agent credentials keyed like "pixeloracle/private_key".
// Get reports domain.ErrSecretNotFound for keys it does not hold.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
