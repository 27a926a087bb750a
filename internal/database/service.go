package database

import (
	"fmt"
	"time"

	"github.com/verandalabs/veranda-stays/backend/internal/account"
	"github.com/verandalabs/veranda-stays/backend/internal/booking"
	"github.com/verandalabs/veranda-stays/backend/internal/config"
	"github.com/verandalabs/veranda-stays/backend/internal/contact"
	"github.com/verandalabs/veranda-stays/backend/internal/payment"
	"github.com/verandalabs/veranda-stays/backend/internal/property"
	"github.com/verandalabs/veranda-stays/backend/internal/review"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// slowQueryThreshold flags statements worth a warning log
const slowQueryThreshold = 200 * time.Millisecond

// DatabaseService implements the Service interface
type DatabaseService struct {
	config          *config.DatabaseConfig
	logger          Logger
	db              *gorm.DB
	migrationConfig *MigrationConfig
}

// NewDatabaseService creates a new database service instance
func NewDatabaseService(config *config.DatabaseConfig, logger Logger) *DatabaseService {
	return &DatabaseService{
		config: config,
		logger: logger,
	}
}

// Connect establishes a connection to the database
func (s *DatabaseService) Connect() (*gorm.DB, error) {
	s.logger.LogInfo(fmt.Sprintf("Attempting to connect to database: %s", s.config.Dbname), nil)

	// Construct DSN from configuration
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		s.config.Host,
		s.config.User,
		s.config.Password,
		s.config.Dbname,
		s.config.Port,
		s.config.Sslmode,
		s.config.Timezone,
	)

	s.logger.LogInfo(fmt.Sprintf("Using database connection string (without credentials): host=%s dbname=%s port=%d",
		s.config.Host, s.config.Dbname, s.config.Port), nil)

	gormConfig := &gorm.Config{
		PrepareStmt: true, // Enable prepared statement cache
		Logger:      NewGormLogger(s.logger, slowQueryThreshold),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %v", err)
	}

	var currentDB string
	if err := sqlDB.QueryRow("SELECT current_database()").Scan(&currentDB); err != nil {
		s.logger.LogWarn(fmt.Sprintf("Failed to get current database: %v", err), nil)
	} else {
		s.logger.LogInfo(fmt.Sprintf("Connected to database: %s", currentDB), nil)
	}

	sqlDB.SetMaxOpenConns(s.config.Pool.MaxOpen)
	sqlDB.SetMaxIdleConns(s.config.Pool.MaxIdle)

	// Initialize migration config now that we have the database connection
	s.migrationConfig = NewMigrationConfig(db, s.logger)
	s.logger.LogInfo(fmt.Sprintf("Initialized migration config for environment: %s", s.migrationConfig.Environment), nil)

	// Initialize migration tracking table
	if err := s.migrationConfig.InitializeMigrationTable(); err != nil {
		return nil, fmt.Errorf("failed to initialize migration tracking: %v", err)
	}

	migrations, err := s.migrationConfig.GetAppliedMigrations()
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %v", err)
	}
	s.logger.LogInfo(fmt.Sprintf("Found %d previously applied migrations", len(migrations)), nil)

	// Only run auto-migration in development or when explicitly enabled
	if s.migrationConfig.ShouldAutoMigrate() {
		if err = db.AutoMigrate(
			&account.Guest{},
			&account.Host{},
			&property.Property{},
			&property.PropertyImage{},
			&booking.Booking{},
			&payment.PaymentMethod{},
			&payment.Payment{},
			&review.Review{},
			&contact.ContactMessage{},
		); err != nil {
			return nil, fmt.Errorf("auto migration failed: %v", err)
		}
		s.logger.LogInfo("Auto-migration completed successfully", nil)
	} else {
		s.logger.LogInfo("Skipping auto-migration based on environment configuration", nil)
	}

	s.db = db
	return db, nil
}

// Close closes the database connection
func (s *DatabaseService) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database instance: %v", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %v", err)
		}
	}
	return nil
}
