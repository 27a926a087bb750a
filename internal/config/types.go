package config

import "time"

// Config represents the application configuration
type Config struct {
	Environment string         `mapstructure:"environment" yaml:"environment"`
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Redis       RedisConfig    `yaml:"redis"`
	Cache       CacheConfig    `yaml:"cache"`
	Storage     StorageConfig  `yaml:"storage"`
	Logging     LoggingConfig  `yaml:"logging"`
	Property    PropertyConfig `yaml:"property"`
	Booking     BookingConfig  `yaml:"booking"`
	Contact     ContactConfig  `yaml:"contact"`
}

// ServerConfig represents server configuration settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig represents database configuration settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	Port     int    `mapstructure:"port"`
	Sslmode  string `mapstructure:"sslmode"`
	Timezone string `mapstructure:"timezone"`
	Pool     struct {
		MaxOpen int `mapstructure:"maxOpen"`
		MaxIdle int `mapstructure:"maxIdle"`
	} `mapstructure:"pool"`
}

// RedisConfig represents Redis configuration settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig represents query cache configuration settings
type CacheConfig struct {
	// Backend selects the cache store implementation (memory or redis)
	Backend string `mapstructure:"backend"`
	TTL     struct {
		Short  time.Duration `mapstructure:"short"`
		Medium time.Duration `mapstructure:"medium"`
		Long   time.Duration `mapstructure:"long"`
	} `mapstructure:"ttl"`
}

// StorageConfig represents storage configuration settings
type StorageConfig struct {
	S3 S3Config `mapstructure:"s3"`
}

// S3Config represents S3 configuration settings
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	UseSSL          bool   `mapstructure:"useSSL"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
}

// PropertyConfig represents property listing configuration settings
type PropertyConfig struct {
	MaxImageSize   int64    `mapstructure:"maxImageSize"`
	MaxImages      int      `mapstructure:"maxImages"`
	MinTitleLength int      `mapstructure:"minTitleLength"`
	MaxTitleLength int      `mapstructure:"maxTitleLength"`
	MaxDescLength  int      `mapstructure:"maxDescLength"`
	AllowedFormats []string `mapstructure:"allowedFormats"`
}

// BookingConfig represents booking configuration settings
type BookingConfig struct {
	MaxStayNights int `mapstructure:"maxStayNights"`
}

// ContactConfig represents contact form configuration settings
type ContactConfig struct {
	MaxMessageLength int `mapstructure:"maxMessageLength"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	Output      string `mapstructure:"output" yaml:"output"`
	Development bool   `mapstructure:"development" yaml:"development"`

	File struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Path    string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"file" yaml:"file"`
}
