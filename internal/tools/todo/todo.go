// Package todo provides the MCP tools exposing the todo service to agent hosts.
package todo

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcptest/todo-backend/internal/errors"
	"github.com/mcptest/todo-backend/internal/models"
	"github.com/mcptest/todo-backend/internal/tools"
)

// CreateTodoArgs represents the arguments for the create_todo tool.
type CreateTodoArgs struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ListTodosArgs represents the arguments for the list_todos tool.
type ListTodosArgs struct{}

// TodoIDArgs represents the arguments for tools addressing one todo by id.
type TodoIDArgs struct {
	TodoID string `json:"todo_id"`
}

// UpdateTodoArgs represents the arguments for the update_todo tool. Absent
// fields leave the record unchanged.
type UpdateTodoArgs struct {
	TodoID      string  `json:"todo_id"`
	Completed   *bool   `json:"completed,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func createTodoHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[CreateTodoArgs]) (*mcp.CallToolResultFor[any], error) {
	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[CreateTodoArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments

		created, err := ctx.Service.Create(ctxReq, args.Title, args.Description)
		if err != nil {
			ctx.Logger.WithTool("create_todo").Error("Failed to create todo", "error", err)
			return tools.ErrorResponsef("failed to create todo: %v", err), nil
		}

		return tools.SuccessResponsef("✓ Created todo: %s\nID: %s", created.Title, created.ID), nil
	}
}

func listTodosHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[ListTodosArgs]) (*mcp.CallToolResultFor[any], error) {
	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ListTodosArgs]) (*mcp.CallToolResultFor[any], error) {
		todos, err := ctx.Service.List(ctxReq)
		if err != nil {
			ctx.Logger.WithTool("list_todos").Error("Failed to list todos", "error", err)
			return tools.ErrorResponsef("failed to list todos: %v", err), nil
		}

		return tools.SuccessResponse(renderList(todos)), nil
	}
}

func getTodoHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[TodoIDArgs]) (*mcp.CallToolResultFor[any], error) {
	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[TodoIDArgs]) (*mcp.CallToolResultFor[any], error) {
		got, err := ctx.Service.Get(ctxReq, params.Arguments.TodoID)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				return tools.SuccessResponse("Todo not found"), nil
			}
			ctx.Logger.WithTool("get_todo").Error("Failed to get todo", "error", err)
			return tools.ErrorResponsef("failed to get todo: %v", err), nil
		}

		return tools.SuccessResponse(renderDetail(got)), nil
	}
}

func updateTodoHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[UpdateTodoArgs]) (*mcp.CallToolResultFor[any], error) {
	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[UpdateTodoArgs]) (*mcp.CallToolResultFor[any], error) {
		args := params.Arguments
		patch := models.TodoPatch{
			Title:       args.Title,
			Description: args.Description,
			Completed:   args.Completed,
		}

		updated, err := ctx.Service.Update(ctxReq, args.TodoID, patch)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				return tools.SuccessResponse("Todo not found"), nil
			}
			ctx.Logger.WithTool("update_todo").Error("Failed to update todo", "error", err)
			return tools.ErrorResponsef("failed to update todo: %v", err), nil
		}

		return tools.SuccessResponsef("✓ Updated: %s", updated.Title), nil
	}
}

func deleteTodoHandler(ctx *tools.Context) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[TodoIDArgs]) (*mcp.CallToolResultFor[any], error) {
	return func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[TodoIDArgs]) (*mcp.CallToolResultFor[any], error) {
		if err := ctx.Service.Delete(ctxReq, params.Arguments.TodoID); err != nil {
			ctx.Logger.WithTool("delete_todo").Error("Failed to delete todo", "error", err)
			return tools.ErrorResponsef("failed to delete todo: %v", err), nil
		}

		return tools.SuccessResponse("✓ Todo deleted"), nil
	}
}

// CreateCreateTodoTool creates the create_todo tool.
func CreateCreateTodoTool(ctx *tools.Context) *tools.ServerTool {
	handler := createTodoHandler(ctx)

	tool := &mcp.Tool{
		Name:        "create_todo",
		Description: "Create a new todo item",
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// CreateListTodosTool creates the list_todos tool.
func CreateListTodosTool(ctx *tools.Context) *tools.ServerTool {
	handler := listTodosHandler(ctx)

	tool := &mcp.Tool{
		Name:        "list_todos",
		Description: "List all todo items",
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// CreateGetTodoTool creates the get_todo tool.
func CreateGetTodoTool(ctx *tools.Context) *tools.ServerTool {
	handler := getTodoHandler(ctx)

	tool := &mcp.Tool{
		Name:        "get_todo",
		Description: "Get a specific todo item by ID",
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// CreateUpdateTodoTool creates the update_todo tool.
func CreateUpdateTodoTool(ctx *tools.Context) *tools.ServerTool {
	handler := updateTodoHandler(ctx)

	tool := &mcp.Tool{
		Name:        "update_todo",
		Description: "Update a todo item (title, description, or completion status)",
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// CreateDeleteTodoTool creates the delete_todo tool.
func CreateDeleteTodoTool(ctx *tools.Context) *tools.ServerTool {
	handler := deleteTodoHandler(ctx)

	tool := &mcp.Tool{
		Name:        "delete_todo",
		Description: "Delete a todo item",
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}
