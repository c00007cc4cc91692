package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/mcptest/todo-backend/internal/config"
	"github.com/mcptest/todo-backend/internal/handlers"
	"github.com/mcptest/todo-backend/internal/logging"
	"github.com/mcptest/todo-backend/internal/storage"
	"github.com/mcptest/todo-backend/internal/todo"
)

// apiCmd runs the HTTP API server.
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the todo HTTP API server",
	RunE:  runAPIServer,
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := storage.NewFirestoreStore(ctx, cfg.ProjectID, cfg.Collection)
	if err != nil {
		logger.Error("Failed to create store", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", slog.Any("error", err))
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	service := todo.NewService(store)
	handlers.NewTodoHandler(service, logger).Register(e)

	logger.Info("Todo API server starting",
		slog.String("port", cfg.Port),
		slog.String("collection", cfg.Collection))

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", slog.Any("error", err))
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", slog.Any("error", err))
		return err
	}

	logger.Info("Todo API server stopped")
	return nil
}
