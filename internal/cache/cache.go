package cache

import (
	"context"
	"time"
)

// Cache is the shared key-value collaborator. Carts use the hash
// operations (one hash per collection, one field per user); the token
// verification and product list caches use plain keys with a TTL.
type Cache interface {
	HGet(ctx context.Context, key, field string) (string, bool, error)
	HSet(ctx context.Context, key, field, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
}
