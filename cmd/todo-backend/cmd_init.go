package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcptest/todo-backend/internal/config"
	"github.com/mcptest/todo-backend/internal/logging"
	"github.com/mcptest/todo-backend/internal/storage"
)

// initCmd resets the todos collection so integration environments start clean.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Reset the todos collection",
	Long:  `Deletes every record in the todos collection. Firestore creates collections implicitly, so after the wipe the table is ready for use.`,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel)
	ctx := context.Background()

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

	deleted, err := store.DeleteAll(ctx)
	if err != nil {
		logger.Error("Failed to reset collection", slog.Any("error", err))
		return err
	}

	logger.Info("Collection reset",
		slog.String("collection", cfg.Collection),
		slog.Int("deleted", deleted))
	return nil
}
