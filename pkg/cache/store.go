package cache

import (
	"context"
	"time"
)

// Store is a byte-level cache shared across processes. It holds encoded
// results (codec output) keyed by hashed strings; backends never define
// their own value format.
//
// Get reports a miss with hit == false and a nil error; errors are reserved
// for backend failures.
type Store interface {
	// Get retrieves a value from the store.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
