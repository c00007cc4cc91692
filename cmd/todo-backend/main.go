// Package main implements the todo backend executable. The root command runs
// an MCP server exposing the todo tools over stdio; the api subcommand runs
// the HTTP API over the same service layer.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mcptest/todo-backend/internal/config"
	"github.com/mcptest/todo-backend/internal/logging"
	"github.com/mcptest/todo-backend/internal/server"
	"github.com/mcptest/todo-backend/internal/storage"
	"github.com/mcptest/todo-backend/internal/todo"
	"github.com/mcptest/todo-backend/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "todo-backend",
	Short: "Todo backend with HTTP API and MCP tool server",
	Long: `Todo backend manages a collection of todo items in Firestore and exposes
them through two front-ends: a JSON HTTP API and a Model Context Protocol
server consumed by AI-agent hosts. The root command runs the MCP server on
stdio.`,
	RunE: runMCPServer,
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")

	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(initCmd)
}

// runMCPServer starts the MCP server on stdio.
func runMCPServer(cmd *cobra.Command, args []string) error {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Println(version.GetVersion().String())
		return nil
	}

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
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", slog.Any("error", err))
		}
	}()

	srv, err := server.New(&server.Options{
		Logger:  logger,
		Service: todo.NewService(store),
	})
	if err != nil {
		logger.Error("Failed to create server", slog.Any("error", err))
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error("Failed to start server", slog.Any("error", err))
		return fmt.Errorf("failed to start server: %w", err)
	}

	transport := mcp.NewStdioTransport()

	logger.Info("Todo MCP server starting",
		slog.String("version", version.GetVersion().Version),
		slog.String("collection", cfg.Collection),
		slog.Int("tools_available", srv.GetRegistry().Count()))

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Serve(ctx, transport)
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Server error", slog.Any("error", err))
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Error stopping server", slog.Any("error", err))
	}

	logger.Info("Todo MCP server stopped")
	return nil
}
