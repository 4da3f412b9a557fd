package sessionstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has no persisted value.
// Callers treat it as "no session", not as a failure.
var ErrKeyNotFound = errors.New("sessionstore: key not found")

// Store is the durable key-value port the session manager persists through.
// Implementations hold small string values under independent keys; deleting
// a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
