// Package store defines the opaque string key-value store the application
// persists all state into, and its backends. Values are whole JSON blobs
// (or short preference strings); the store itself knows nothing about
// their shape.
package store

import "context"

// Keys under which the application persists its state.
const (
	KeyTemplates   = "fitness-day-templates"
	KeySessions    = "fitness-workout-sessions"
	KeyUnit        = "fitness-unit"
	KeyRestSeconds = "fitness-rest-seconds"
)

// Error constants for the store layer.
var (
	ErrNotFound = StoreError("key not found")
)

// StoreError helps distinguish store errors from everything else.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// KV is the persistence contract: get/set/delete whole string values by
// key. Get returns ErrNotFound when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
