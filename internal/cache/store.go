package cache

import "fmt"

// NewStore builds the Store selected by backend. An empty backend name
// falls back to the in-memory store.
func NewStore(backend string, redisConfig *RedisConfig, logger Logger) (Store, error) {
	switch backend {
	case BackendRedis:
		return NewRedisStore(redisConfig, logger)
	case BackendMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", backend)
	}
}
