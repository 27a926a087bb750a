package testhelper

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/verandalabs/veranda-stays/backend/migrations"
)

// Config represents the minimal configuration needed for the test environment.
type Config struct {
	Environment string `mapstructure:"environment"`
	Server      struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"`
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"dbname"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	Logging struct {
		Level       string `mapstructure:"level"`
		Format      string `mapstructure:"format"`
		Output      string `mapstructure:"output"`
		Development bool   `mapstructure:"development"`
	} `mapstructure:"logging"`
}

// LoadTestConfig loads the test configuration from config_test.yaml.
func LoadTestConfig() (*Config, error) {
	// Tests run at different directory depths, so try a few locations
	envFiles := []string{
		".env.test",
		"../.env.test",
		"../../.env.test",
		"../../../.env.test",
	}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.BindEnv("database.password", "DB_PASSWORD")

	// TEST_CONFIG_FILE explicitly specifies the config file location
	if cfgFile := os.Getenv("TEST_CONFIG_FILE"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config_test")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath("../..")
		v.AddConfigPath("../../..")

		// Walk up from the working directory to find the module root
		if wd, err := os.Getwd(); err == nil {
			dir := wd
			for i := 0; i < 5; i++ {
				if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
					v.AddConfigPath(dir)
					break
				}
				parentDir := filepath.Dir(dir)
				if parentDir == dir {
					break
				}
				dir = parentDir
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetupTestDB connects to the test database and runs migrations.
func SetupTestDB(t *testing.T) *gorm.DB {
	cfg, err := LoadTestConfig()
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}

	logger := NewTestLogger(false)

	if testDB := os.Getenv("TEST_DB"); testDB != "" {
		logger.LogInfo("Overriding database name", map[string]interface{}{
			"test_db": testDB,
		})
		cfg.Database.Name = testDB
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Migrations are gated on the environment, force them on for tests
	os.Setenv("ENV", "test")
	os.Setenv("AUTO_MIGRATE", "true")

	if err := migrations.RunMigrations(db, "up"); err != nil {
		t.Fatalf("failed to run test migrations: %v", err)
	}

	return db
}
