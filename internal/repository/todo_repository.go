package repository

import (
	"database/sql"
	"fmt"

	"wewilldo-be/internal/entities"
)

// TodoRepository defines the interface for todo database operations.
// Every query is scoped to the owning user and filters out soft-deleted
// rows; a row that fails either condition is reported as not found.
type TodoRepository interface {
	Create(userID, title string) (*entities.Todo, error)
	FindByUser(userID string, completed *bool) ([]*entities.Todo, error)
	FindActive(id, userID string) (*entities.Todo, error)
	Update(id, userID, title string, completed, deleted bool) (*entities.Todo, error)
}

type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *sql.DB) TodoRepository {
	return &todoRepository{db: db}
}

// Create inserts a new todo into the database
func (r *todoRepository) Create(userID, title string) (*entities.Todo, error) {
	query := `
		INSERT INTO todos (user_id, title)
		VALUES ($1, $2)
		RETURNING id, user_id, title, completed, deleted, created_at, updated_at
	`

	var todo entities.Todo
	err := r.db.QueryRow(query, userID, title).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Completed,
		&todo.Deleted,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return &todo, nil
}

// FindByUser returns the user's non-deleted todos, newest first.
// A nil completed returns all of them; otherwise the list is filtered
// on the completed flag.
func (r *todoRepository) FindByUser(userID string, completed *bool) ([]*entities.Todo, error) {
	query := `
		SELECT id, user_id, title, completed, deleted, created_at, updated_at
		FROM todos
		WHERE user_id = $1 AND deleted = FALSE
	`
	args := []interface{}{userID}

	if completed != nil {
		query += ` AND completed = $2`
		args = append(args, *completed)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []*entities.Todo{}
	for rows.Next() {
		var todo entities.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.Title,
			&todo.Completed,
			&todo.Deleted,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, &todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}

	return todos, nil
}

// FindActive finds a non-deleted todo by id, scoped to its owner
func (r *todoRepository) FindActive(id, userID string) (*entities.Todo, error) {
	query := `
		SELECT id, user_id, title, completed, deleted, created_at, updated_at
		FROM todos
		WHERE id = $1 AND user_id = $2 AND deleted = FALSE
	`

	var todo entities.Todo
	err := r.db.QueryRow(query, id, userID).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Completed,
		&todo.Deleted,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	return &todo, nil
}

// Update writes the todo's mutable fields, scoped to (id, owner, not
// deleted). The scope in the WHERE clause means a todo soft-deleted by a
// concurrent request comes back as not found instead of being resurrected.
func (r *todoRepository) Update(id, userID, title string, completed, deleted bool) (*entities.Todo, error) {
	query := `
		UPDATE todos
		SET title = $3, completed = $4, deleted = $5
		WHERE id = $1 AND user_id = $2 AND deleted = FALSE
		RETURNING id, user_id, title, completed, deleted, created_at, updated_at
	`

	var todo entities.Todo
	err := r.db.QueryRow(query, id, userID, title, completed, deleted).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Completed,
		&todo.Deleted,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return &todo, nil
}
