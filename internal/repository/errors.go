package repository

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when an insert violates the unique
	// constraint on email or username
	ErrDuplicateUser = errors.New("duplicate user")

	// ErrTodoNotFound is returned when a todo does not exist, belongs to
	// another user, or has been soft-deleted. The three cases are not
	// distinguished.
	ErrTodoNotFound = errors.New("todo not found")
)
