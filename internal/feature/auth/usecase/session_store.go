package usecase

import "context"

// SessionStore abstracts the durable key-value store that holds the session
// pointer across process restarts.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/kvstore).
type SessionStore interface {
	// Get returns the value stored under key.
	// It returns ErrSessionNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key.
	// Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
