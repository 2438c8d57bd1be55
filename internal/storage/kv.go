package storage

import "context"

// KV is the persisted key-value store behind the cart. Values round-trip
// through JSON; Get reports whether the key was present. There is no TTL:
// a cart lives until it is cleared.
type KV interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// CartKey is the single fixed key for the persisted cart. Every handler
// that touches the cart reads and writes this key.
const CartKey = "cart"
