package storage

import (
	"context"
)

// KeyValue defines durable client storage (the localStorage analog).
// Values are opaque strings; callers serialize structured data themselves.
type KeyValue interface {
	// Get returns the value stored under key.
	// Returns ErrNotFound if the key does not exist
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error
	Remove(ctx context.Context, key string) error
}
