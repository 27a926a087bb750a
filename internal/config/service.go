package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ConfigService implements the Service interface
type ConfigService struct {
	logger Logger
}

// NewConfigService creates a new configuration service
func NewConfigService(logger Logger) *ConfigService {
	return &ConfigService{
		logger: logger,
	}
}

// Load loads the configuration from the specified path
func (s *ConfigService) Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	// Use test configuration file if ENV is set to test
	if os.Getenv("ENV") == "test" {
		v.SetConfigName("config_test")
	} else {
		v.SetConfigName("config")
	}
	v.SetConfigType("yaml")

	// Set default values
	s.setDefaults(v)

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Validate the configuration
	if err := s.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	s.logger.LogInfo("Configuration loaded successfully", nil)
	return &config, nil
}

// setDefaults sets default values for configuration
func (s *ConfigService) setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.pool.maxOpen", 100)
	v.SetDefault("database.pool.maxIdle", 10)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl.short", "30s")
	v.SetDefault("cache.ttl.medium", "5m")
	v.SetDefault("cache.ttl.long", "30m")
	v.SetDefault("property.maxImageSize", 10*1024*1024) // 10MB
	v.SetDefault("property.maxImages", 20)
	v.SetDefault("property.minTitleLength", 3)
	v.SetDefault("property.maxTitleLength", 120)
	v.SetDefault("property.maxDescLength", 5000)
	v.SetDefault("property.allowedFormats", []string{".jpg", ".jpeg", ".png", ".webp"})
	v.SetDefault("booking.maxStayNights", 90)
	v.SetDefault("contact.maxMessageLength", 4000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("storage.s3.region", "us-east-1")
}

// validate performs validation on the configuration
func (s *ConfigService) validate(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("invalid server port")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if config.Database.Dbname == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.Port <= 0 {
		return fmt.Errorf("invalid database port")
	}

	switch config.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid cache backend: %s", config.Cache.Backend)
	}

	if config.Cache.Backend == "redis" && config.Redis.Addr == "" {
		return fmt.Errorf("redis address is required for redis cache backend")
	}

	if config.Cache.TTL.Short <= 0 || config.Cache.TTL.Medium <= 0 || config.Cache.TTL.Long <= 0 {
		return fmt.Errorf("cache TTL values must be positive")
	}

	return nil
}
