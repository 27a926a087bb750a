package cache

import "time"

// Backend names accepted by NewStore
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Tiers groups the three cache durations used across the query layer.
// Short suits fast-changing listings, Medium suits single entities and
// curated sets, Long suits aggregates that change rarely.
type Tiers struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// DefaultTiers returns the standard TTL tiers
func DefaultTiers() Tiers {
	return Tiers{
		Short:  30 * time.Second,
		Medium: 5 * time.Minute,
		Long:   30 * time.Minute,
	}
}

// RedisConfig represents Redis connection settings for the redis backend
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// entry is a stored value with its expiry deadline
type entry struct {
	value     interface{}
	expiresAt time.Time
}
