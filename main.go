package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/verandalabs/veranda-stays/backend/internal/config"
	"github.com/verandalabs/veranda-stays/backend/internal/logger"
)

// @title           Veranda Stays API
// @version         1.0
// @description     API server for the Veranda Stays rental platform

// @contact.name   API Support
// @contact.email  support@verandastays.com

// @host      localhost:8080
// @BasePath  /
func main() {
	ctx := context.Background()

	// Initialize logger for bootstrapping
	bootstrapLogger, err := logger.NewLogger(&logger.Config{Level: logger.DebugLevel})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Load configuration
	configService := config.NewConfigService(bootstrapLogger)
	cfg, err := configService.Load(".")
	if err != nil {
		bootstrapLogger.LogFatal(err, "Failed to load configuration")
	}

	// Create a context that will be canceled on interrupt
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")
		cancel()
	}()

	// Create and run application
	app, err := NewApp(ctx, cfg)
	if err != nil {
		bootstrapLogger.LogFatal(err, "Failed to initialize application")
	}

	// Start the application
	if err := app.Run(); err != nil {
		log.Printf("Application error: %v", err)
	}

	// Wait for context cancellation
	<-ctx.Done()

	// Perform graceful shutdown
	if err := app.Shutdown(); err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}
}
