// Package tools provides the registry and common types for MCP tools.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcptest/todo-backend/internal/todo"
)

// Context contains common dependencies needed by tools.
type Context struct {
	Logger  Logger
	Service *todo.Service
}

// Logger defines the logging interface for tools.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithTool(toolName string) Logger
}

// ServerTool couples an MCP tool schema with its registration function. The
// RegisterFunc closes over the typed handler so mcp.AddTool can infer the
// argument schema.
type ServerTool struct {
	Tool         *mcp.Tool
	RegisterFunc func(server *mcp.Server)
}
