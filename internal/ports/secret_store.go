package ports

import "context"

// SecretStore is the durable key-value capability backing the credential
// pair and other small secrets.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
