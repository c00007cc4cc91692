// Package todo provides registration for todo management tools.
package todo

import (
	"github.com/mcptest/todo-backend/internal/tools"
)

// CreateTodoTools creates all todo management tools using MCP SDK patterns.
func CreateTodoTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateCreateTodoTool(ctx),
		CreateListTodosTool(ctx),
		CreateGetTodoTool(ctx),
		CreateUpdateTodoTool(ctx),
		CreateDeleteTodoTool(ctx),
	}
}
