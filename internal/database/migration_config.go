package database

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"
)

// MigrationConfig holds configuration for database migrations
type MigrationConfig struct {
	Environment string
	AutoMigrate bool
	ForceRun    bool
	Logger      Logger
	db          *gorm.DB
}

// NewMigrationConfig creates a new migration configuration
func NewMigrationConfig(db *gorm.DB, logger Logger) *MigrationConfig {
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	// AUTO_MIGRATE overrides the default, which is on in development only
	autoMigrate := env == "development"
	if autoMigrateEnv := os.Getenv("AUTO_MIGRATE"); autoMigrateEnv != "" {
		autoMigrate = autoMigrateEnv == "true"
	}

	return &MigrationConfig{
		Environment: env,
		AutoMigrate: autoMigrate,
		ForceRun:    os.Getenv("FORCE_MIGRATION") == "true",
		Logger:      logger,
		db:          db,
	}
}

// InitializeMigrationTable creates the migrations tracking table
func (c *MigrationConfig) InitializeMigrationTable() error {
	if err := c.db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %v", err)
	}
	return nil
}

// HasMigrationBeenApplied checks if a specific migration has already been run
func (c *MigrationConfig) HasMigrationBeenApplied(name string) (bool, error) {
	var count int64
	err := c.db.Model(&MigrationRecord{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// RecordMigration records a successful migration
func (c *MigrationConfig) RecordMigration(name string, content string) error {
	hash := sha256.Sum256([]byte(content))
	hashStr := hex.EncodeToString(hash[:])

	// Determine the batch number for this run
	var batchNo int
	err := c.db.Model(&MigrationRecord{}).Select("COALESCE(MAX(batch_no), 0) + 1").Row().Scan(&batchNo)
	if err != nil {
		return fmt.Errorf("failed to determine batch number: %v", err)
	}

	record := MigrationRecord{
		Name:      name,
		Hash:      hashStr,
		AppliedAt: time.Now(),
		BatchNo:   batchNo,
	}

	return c.db.Create(&record).Error
}

// GetAppliedMigrations returns a list of all applied migrations
func (c *MigrationConfig) GetAppliedMigrations() ([]MigrationRecord, error) {
	var migrations []MigrationRecord
	err := c.db.Order("applied_at").Find(&migrations).Error
	return migrations, err
}

// ShouldRunMigration determines if migrations should be executed
func (c *MigrationConfig) ShouldRunMigration() bool {
	// FORCE_MIGRATION bypasses the environment gate
	if c.ForceRun {
		return true
	}

	if c.Environment == "development" || c.Environment == "test" {
		return c.AutoMigrate
	}

	// In production, don't run migrations unless forced
	return false
}

// ShouldAutoMigrate determines if auto-migration should run
func (c *MigrationConfig) ShouldAutoMigrate() bool {
	return c.AutoMigrate
}
