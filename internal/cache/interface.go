package cache

import (
	"context"
	"time"
)

// Store defines the interface for query cache operations.
//
// A cache miss is not an error: Get reports presence through its boolean
// return, and write operations never fail the caller. Backends that can
// fail internally, such as Redis, log the failure and degrade to a miss
// so readers fall through to the database.
type Store interface {
	// Get returns the value cached under key, or (nil, false) when the
	// key is absent or its TTL has elapsed.
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores value under key for the given TTL, replacing any
	// existing entry for that key.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)

	// Delete removes a single key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string)

	// DeletePattern removes every key that contains pattern as a
	// substring. Passing a key-family prefix such as "properties:list:"
	// clears the whole family.
	DeletePattern(ctx context.Context, pattern string)

	// Clear drops all entries.
	Clear(ctx context.Context)

	// Len reports the number of stored entries, including entries whose
	// TTL has elapsed but which have not been read since.
	Len(ctx context.Context) int

	// Close releases backend resources.
	Close() error
}

// Logger defines the logging interface used by the cache package
type Logger interface {
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
