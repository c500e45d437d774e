package ports

import "context"

// KVStore is a durable client-local key-value store. Get returns an error
// wrapping domain.ErrKeyNotFound when the key has never been written.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
