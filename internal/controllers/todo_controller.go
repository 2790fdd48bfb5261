package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wewilldo-be/internal/entities"
	"wewilldo-be/internal/middleware"
	"wewilldo-be/internal/models"
	"wewilldo-be/internal/repository"
	"wewilldo-be/internal/service"
)

type TodoController struct {
	todoService service.TodoService
}

func NewTodoController(todoService service.TodoService) *TodoController {
	return &TodoController{
		todoService: todoService,
	}
}

// ownerID resolves the caller's identity from the auth middleware. A
// missing identity means the route was registered without the middleware;
// respond 401 rather than guessing.
func ownerID(c *gin.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "User not authenticated",
		})
		return "", false
	}
	return user.ID, true
}

// todoID validates the :id path parameter. A malformed id cannot match any
// row, so it is reported the same way as a missing todo.
func todoID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Todo ID is required",
		})
		return "", false
	}
	if uuid.Validate(id) != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Todo not found or already deleted!",
		})
		return "", false
	}
	return id, true
}

func (tc *TodoController) respondList(c *gin.Context, todos []*entities.Todo, err error) {
	if err != nil {
		log.Printf("Failed to list todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    todos,
	})
}

// GetTodos handles GET /api/todos
func (tc *TodoController) GetTodos(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	todos, err := tc.todoService.List(owner)
	tc.respondList(c, todos, err)
}

// GetTodosPending handles GET /api/todos/pending
func (tc *TodoController) GetTodosPending(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	todos, err := tc.todoService.ListPending(owner)
	tc.respondList(c, todos, err)
}

// GetTodosCompleted handles GET /api/todos/completed
func (tc *TodoController) GetTodosCompleted(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	todos, err := tc.todoService.ListCompleted(owner)
	tc.respondList(c, todos, err)
}

// CreateTodo handles POST /api/todos
func (tc *TodoController) CreateTodo(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Title is required",
		})
		return
	}

	todo, err := tc.todoService.Create(owner, req.Title)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		log.Printf("Failed to create todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    todo,
	})
}

// UpdateTodo handles PUT /api/todos/:id. The public body only accepts
// title and completed; soft-deletion stays on the DELETE verb.
func (tc *TodoController) UpdateTodo(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := todoID(c)
	if !ok {
		return
	}

	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}
	if req.Title == nil && req.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No data to update",
		})
		return
	}

	todo, err := tc.todoService.Update(owner, id, &models.TodoPatch{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		tc.respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    todo,
	})
}

// DeleteTodo handles DELETE /api/todos/:id
func (tc *TodoController) DeleteTodo(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := todoID(c)
	if !ok {
		return
	}

	if err := tc.todoService.Delete(owner, id); err != nil {
		tc.respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Todo deleted successfully",
	})
}

// respondTodoError maps service failures on a single todo to status codes
func (tc *TodoController) respondTodoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Todo not found or already deleted!",
		})
	case errors.Is(err, service.ErrTitleEmpty):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	default:
		log.Printf("Todo operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
	}
}
