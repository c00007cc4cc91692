// Package handlers implements the HTTP adapter over the todo service.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcptest/todo-backend/internal/errors"
	"github.com/mcptest/todo-backend/internal/logging"
	"github.com/mcptest/todo-backend/internal/models"
	"github.com/mcptest/todo-backend/internal/todo"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "mcp-test-backend"

// TodoHandler maps REST verbs and paths onto todo service calls.
type TodoHandler struct {
	service *todo.Service
	logger  *logging.Logger
}

// NewTodoHandler creates a handler backed by the given service.
func NewTodoHandler(service *todo.Service, logger *logging.Logger) *TodoHandler {
	return &TodoHandler{
		service: service,
		logger:  logger.WithComponent("http"),
	}
}

// Register attaches all routes to the Echo instance.
func (h *TodoHandler) Register(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.POST("/todos", h.CreateTodo)
	e.GET("/todos", h.ListTodos)
	e.GET("/todos/:id", h.GetTodo)
	e.PATCH("/todos/:id", h.UpdateTodo)
	e.DELETE("/todos/:id", h.DeleteTodo)
}

// CreateTodoRequest is the POST /todos request body.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Root reports the service banner.
func (h *TodoHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
	})
}

// Health reports liveness.
func (h *TodoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.Create(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		h.logger.Error("Failed to create todo", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, created)
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(c echo.Context) error {
	todos, err := h.service.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list todos", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, todos)
}

// GetTodo handles GET /todos/:id.
func (h *TodoHandler) GetTodo(c echo.Context) error {
	got, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return notFound(c)
		}
		h.logger.Error("Failed to get todo", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, got)
}

// UpdateTodo handles PATCH /todos/:id.
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	var patch models.TodoPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return notFound(c)
		}
		h.logger.Error("Failed to update todo", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteTodo handles DELETE /todos/:id. Delete is unconditional and always
// succeeds, including for ids that never existed.
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete todo", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"detail": "Todo not found"})
}
