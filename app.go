package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verandalabs/veranda-stays/backend/internal/account"
	"github.com/verandalabs/veranda-stays/backend/internal/booking"
	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	"github.com/verandalabs/veranda-stays/backend/internal/config"
	"github.com/verandalabs/veranda-stays/backend/internal/contact"
	"github.com/verandalabs/veranda-stays/backend/internal/database"
	httpHandler "github.com/verandalabs/veranda-stays/backend/internal/http"
	"github.com/verandalabs/veranda-stays/backend/internal/logger"
	"github.com/verandalabs/veranda-stays/backend/internal/payment"
	"github.com/verandalabs/veranda-stays/backend/internal/property"
	"github.com/verandalabs/veranda-stays/backend/internal/review"
	"github.com/verandalabs/veranda-stays/backend/internal/storage/s3"
)

// version is reported by the health endpoint
const version = "1.0.0"

// App holds all application dependencies
type App struct {
	ctx       context.Context
	Config    *config.Config
	logger    logger.Logger
	responses httpHandler.ResponseHandler
	db        *gorm.DB
	dbService *database.DatabaseService
	cache     cache.Store
	storage   *s3.Service
	router    *gin.Engine
	server    *http.Server

	accounts   account.Service
	properties property.Service
	bookings   booking.Service
	payments   payment.Service
	reviews    review.Service
	contacts   contact.Service
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize logger
	appLogger, err := newAppLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %v", err)
	}

	// Initialize database
	dbService := database.NewDatabaseService(&cfg.Database, appLogger)
	db, err := dbService.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %v", err)
	}

	// Initialize query cache
	store, err := cache.NewStore(cfg.Cache.Backend, &cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %v", err)
	}
	tiers := cache.Tiers{
		Short:  cfg.Cache.TTL.Short,
		Medium: cfg.Cache.TTL.Medium,
		Long:   cfg.Cache.TTL.Long,
	}

	// Initialize object storage
	storageService, err := s3.NewService(&cfg.Storage.S3, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %v", err)
	}

	// Initialize repositories
	accountRepo := account.NewRepository(db)
	propertyRepo := property.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	reviewRepo := review.NewRepository(db)
	contactRepo := contact.NewRepository(db)

	// Initialize services. The booking repository doubles as the
	// collaborator that answers active-booking and completed-stay
	// questions for listings and reviews.
	accountService := account.NewService(accountRepo, store, tiers, appLogger)
	propertyService := property.NewService(propertyRepo, store, tiers, storageService, accountService, bookingRepo, &cfg.Property, appLogger)
	bookingService := booking.NewService(bookingRepo, store, tiers, propertyService, accountService, &cfg.Booking, appLogger)
	paymentService := payment.NewService(paymentRepo, store, tiers, bookingService, appLogger)
	reviewService := review.NewService(reviewRepo, store, tiers, bookingRepo, appLogger)
	contactService := contact.NewService(contactRepo, store, tiers, &cfg.Contact, appLogger)

	app := &App{
		ctx:        ctx,
		Config:     cfg,
		logger:     appLogger,
		responses:  httpHandler.NewResponseHandler(appLogger),
		db:         db,
		dbService:  dbService,
		cache:      store,
		storage:    storageService,
		accounts:   accountService,
		properties: propertyService,
		bookings:   bookingService,
		payments:   paymentService,
		reviews:    reviewService,
		contacts:   contactService,
	}

	// Setup router and routes
	app.router = app.setupRouter()

	return app, nil
}

// newAppLogger builds the application logger from configuration
func newAppLogger(cfg *config.LoggingConfig) (logger.Logger, error) {
	loggerConfig := &logger.Config{
		Level:       logger.Level(cfg.Level),
		Format:      cfg.Format,
		Output:      cfg.Output,
		Development: cfg.Development,
	}
	loggerConfig.File.Enabled = cfg.File.Enabled
	loggerConfig.File.Path = cfg.File.Path
	return logger.NewLogger(loggerConfig)
}

// Run starts the HTTP server without blocking the caller
func (a *App) Run() error {
	port := a.Config.Server.Port
	a.logger.LogInfo(fmt.Sprintf("Starting server on port %d", port), nil)

	a.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: a.router,
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.LogError(err, "Server failed")
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	a.logger.LogInfo("Initiating graceful shutdown", nil)

	// Create a timeout context for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop accepting new requests and drain in-flight ones
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.LogWarn("Error shutting down HTTP server", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close cache connections
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.LogWarn("Error closing cache connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close object storage connections
	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			a.logger.LogWarn("Error closing object storage connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close database connections
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.logger.LogWarn("Error closing database connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.logger.LogInfo("Application shutdown complete", nil)
	return nil
}
