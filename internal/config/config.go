// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcptest/todo-backend/internal/errors"
)

// Config holds the runtime configuration shared by both front-ends.
type Config struct {
	// ProjectID is the Google Cloud project hosting the Firestore database.
	ProjectID string

	// Collection is the name of the todos collection.
	Collection string

	// Port is the HTTP listen port for the API server.
	Port string

	// LogLevel controls the structured logger verbosity.
	LogLevel string
}

// Load reads configuration from the environment, consulting a .env file
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		return nil, errors.New("GOOGLE_CLOUD_PROJECT environment variable is required")
	}

	return &Config{
		ProjectID:  projectID,
		Collection: getEnv("TODOS_COLLECTION", "todos"),
		Port:       getEnv("PORT", "8000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
