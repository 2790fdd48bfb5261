package service

import (
	"errors"
	"strings"

	"wewilldo-be/internal/entities"
	"wewilldo-be/internal/models"
	"wewilldo-be/internal/repository"
)

var (
	// ErrTitleRequired is returned when a created todo has an empty title
	ErrTitleRequired = errors.New("Title is required")

	// ErrTitleEmpty is returned when an update would clear the title
	ErrTitleEmpty = errors.New("Title cannot be empty!")
)

// TodoService defines the interface for todo business logic. Every method
// takes the owner's id as resolved from a verified token; it is never
// client-supplied.
type TodoService interface {
	List(ownerID string) ([]*entities.Todo, error)
	ListPending(ownerID string) ([]*entities.Todo, error)
	ListCompleted(ownerID string) ([]*entities.Todo, error)
	Create(ownerID, title string) (*entities.Todo, error)
	Update(ownerID, todoID string, patch *models.TodoPatch) (*entities.Todo, error)
	Delete(ownerID, todoID string) error
}

type todoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo repository.TodoRepository) TodoService {
	return &todoService{todoRepo: todoRepo}
}

// List returns all of the owner's non-deleted todos, newest first
func (s *todoService) List(ownerID string) ([]*entities.Todo, error) {
	return s.todoRepo.FindByUser(ownerID, nil)
}

// ListPending returns the owner's non-deleted, not yet completed todos
func (s *todoService) ListPending(ownerID string) ([]*entities.Todo, error) {
	completed := false
	return s.todoRepo.FindByUser(ownerID, &completed)
}

// ListCompleted returns the owner's non-deleted, completed todos
func (s *todoService) ListCompleted(ownerID string) ([]*entities.Todo, error) {
	completed := true
	return s.todoRepo.FindByUser(ownerID, &completed)
}

// Create persists a new todo with the trimmed title
func (s *todoService) Create(ownerID, title string) (*entities.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	return s.todoRepo.Create(ownerID, title)
}

// Update applies a partial update to a todo. The todo is first loaded
// scoped to (id, owner, not deleted), so a missing, foreign, or already
// soft-deleted todo uniformly comes back as repository.ErrTodoNotFound.
// Fields absent from the patch keep their current value.
func (s *todoService) Update(ownerID, todoID string, patch *models.TodoPatch) (*entities.Todo, error) {
	existing, err := s.todoRepo.FindActive(todoID, ownerID)
	if err != nil {
		return nil, err
	}

	title := existing.Title
	if patch.Title != nil {
		title = strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleEmpty
		}
	}

	completed := existing.Completed
	if patch.Completed != nil {
		completed = *patch.Completed
	}

	deleted := existing.Deleted
	if patch.Deleted != nil {
		deleted = *patch.Deleted
	}

	return s.todoRepo.Update(todoID, ownerID, title, completed, deleted)
}

// Delete soft-deletes a todo by updating its deleted flag. Deleting a todo
// that is already soft-deleted reports not found, not success.
func (s *todoService) Delete(ownerID, todoID string) error {
	deleted := true
	_, err := s.Update(ownerID, todoID, &models.TodoPatch{Deleted: &deleted})
	return err
}
