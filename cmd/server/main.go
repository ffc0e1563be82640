// Package main implements the entry point for the user API server.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	"github.com/cnetwk/user-api/internal/api"
	"github.com/cnetwk/user-api/internal/config"
	"github.com/cnetwk/user-api/internal/platform/logger"
	"github.com/cnetwk/user-api/internal/platform/postgres"
	"github.com/cnetwk/user-api/internal/service"
	"github.com/cnetwk/user-api/internal/service/auth"
)

// application holds the shared dependencies of the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	userHandler *api.UserHandler
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
	}
}

// initializeApp loads configuration and wires up application components.
// Dependencies are constructed explicitly and passed by argument; nothing
// is framework-managed.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewUserStore(db, appLogger)
	hasher := auth.NewBcryptHasher(0)
	userService := service.NewUserService(userStore, hasher, hasher, appLogger)
	userHandler := api.NewUserHandler(userService, appLogger)

	return &application{
		config:      cfg,
		logger:      appLogger,
		db:          db,
		userHandler: userHandler,
	}, nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
