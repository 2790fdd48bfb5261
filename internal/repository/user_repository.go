package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"wewilldo-be/internal/entities"
)

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(email, username, passwordHash string) (*entities.User, error)
	FindByIdentity(identify string) (*entities.User, error)
	ExistsByEmailOrUsername(email, username string) (bool, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(email, username, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, username, password_hash, created_at, updated_at
	`

	var user entities.User
	err := r.db.QueryRow(query, email, username, passwordHash).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, ErrDuplicateUser
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByIdentity finds a user whose email or username equals identify
func (r *userRepository) FindByIdentity(identify string) (*entities.User, error) {
	query := `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1 OR username = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, identify).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// ExistsByEmailOrUsername reports whether a user already holds either the
// email or the username
func (r *userRepository) ExistsByEmailOrUsername(email, username string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 OR username = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(query, email, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
