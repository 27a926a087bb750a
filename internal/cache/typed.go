package cache

import (
	"context"
	"encoding/json"
)

// GetTyped returns the value cached under key as a T. Values held by
// the memory backend are returned by type assertion; values from the
// redis backend arrive as JSON bytes and are decoded. A type mismatch
// or decode failure counts as a miss, never an error.
func GetTyped[T any](ctx context.Context, store Store, key string) (T, bool) {
	var zero T

	value, ok := store.Get(ctx, key)
	if !ok {
		return zero, false
	}

	if typed, ok := value.(T); ok {
		return typed, true
	}

	if data, ok := value.([]byte); ok {
		var decoded T
		if err := json.Unmarshal(data, &decoded); err == nil {
			return decoded, true
		}
	}

	return zero, false
}
