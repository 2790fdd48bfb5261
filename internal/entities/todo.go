package entities

import "time"

// Todo represents a todo entity in the database.
// Deleted rows are soft-deleted: they stay in the table but every
// read and write path filters them out.
type Todo struct {
	ID        string    `json:"id"` // UUID
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
