// @title           Muscat API
// @version         1.0
// @description     This is the Muscat music catalog API server.

// @host      localhost:8080
// @BasePath  /

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"time"

	_ "modernc.org/sqlite"

	_ "muscat-v0/docs" // Swagger docs

	apiserver "muscat-v0/internal/api"
	cataloginfra "muscat-v0/internal/catalog/infrastructure"
	configapp "muscat-v0/internal/config/application"
	"muscat-v0/internal/infrastructure/database"
	"muscat-v0/internal/infrastructure/logger"
)

func run() error {
	port := flag.String("port", "", "Port to listen on (default 8080)")
	dbPath := flag.String("db", "", "Path to the SQLite database file")
	envFile := flag.String("env-file", "", "Path to a .env file")
	logLevel := flag.String("log-level", "", "Log level: DEBUG, INFO, WARN, ERROR")
	logFormat := flag.String("log-format", "", "Log format: text or json")
	logOutput := flag.String("log-output", "", "Log output: stdout, stderr, or a file path")
	devMode := flag.Bool("dev", false, "Enable development mode (serves Swagger UI)")
	flag.Parse()

	// Bootstrap logger so env-file loading can be reported; replaced below
	// once the effective log settings are known
	bootLogger := logger.NewLogger()
	configapp.LoadEnvFile(bootLogger, *envFile)

	cfg := configapp.LoadRuntimeConfig(*port, *logLevel, *logFormat, *logOutput, *dbPath, *devMode)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)
	logger.SetDefaultLogger(appLogger)

	appLogger.Info("Starting Muscat", "version", "1.0")

	sigCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Initialize database connections
	appLogger.Debug("Connecting to database", "file", cfg.DBPath)
	dbRead, err := database.ConnectSQLite(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to connect to read database", "err", err)
		return fmt.Errorf("failed to connect to read database: %w", err)
	}
	defer dbRead.Close()
	dbRead.SetMaxOpenConns(runtime.NumCPU())
	appLogger.Debug("Read database configured", "max_open_conns", runtime.NumCPU())

	dbWrite, err := database.ConnectSQLite(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to connect to write database", "err", err)
		return fmt.Errorf("failed to connect to write database: %w", err)
	}
	defer dbWrite.Close()
	dbWrite.SetMaxOpenConns(1)
	appLogger.Debug("Write database configured", "max_open_conns", 1)

	// Run migrations
	appLogger.Debug("Running database migrations")
	if err := database.Migrate(dbWrite); err != nil {
		appLogger.Error("Failed to run migrations", "err", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	appLogger.Debug("Database schema up to date")

	// Initialize catalog repository
	appLogger.Debug("Initializing catalog repository")
	catalogRepo := cataloginfra.NewRepository(dbRead, dbWrite)

	// Initialize API server
	appLogger.Debug("Initializing API server")
	apiServer, err := apiserver.NewServer(appLogger, cfg, catalogRepo)
	if err != nil {
		appLogger.Error("Failed to create API server", "err", err)
		return fmt.Errorf("failed to create API server: %w", err)
	}
	appLogger.Debug("API server initialized")

	// Start API server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("API server error", "err", err)
			serverErrChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	appLogger.Info("Muscat started successfully, waiting for shutdown signal")

	// Wait for interrupt or server error
	select {
	case <-sigCtx.Done():
		appLogger.Info("Shutdown signal received, starting graceful shutdown")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("API server shutdown error", "err", err)
			return fmt.Errorf("API server shutdown error: %w", err)
		}

		appLogger.Info("Graceful shutdown completed")
		return nil
	case err := <-serverErrChan:
		appLogger.Error("Server error received", "err", err)
		return err
	}
}

func main() {
	if err := run(); err != nil {
		// Use default logger for final error message if run() failed early
		logger := logger.DefaultLogger()
		logger.Error("Application error", "err", err)
		os.Exit(1)
	}
}
