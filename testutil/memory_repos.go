package testutil

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"wewilldo-be/internal/entities"
	"wewilldo-be/internal/repository"
)

// MemoryUserRepository is an in-memory repository.UserRepository for tests
type MemoryUserRepository struct {
	mu    sync.Mutex
	users []*entities.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(email, username, passwordHash string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return nil, repository.ErrDuplicateUser
		}
	}

	now := time.Now()
	user := &entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users = append(r.users, user)

	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) FindByIdentity(identify string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == identify || u.Username == identify {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *MemoryUserRepository) ExistsByEmailOrUsername(email, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// MemoryTodoRepository is an in-memory repository.TodoRepository for tests.
// It applies the same owner and soft-delete scoping as the SQL repository.
type MemoryTodoRepository struct {
	mu    sync.Mutex
	todos []*entities.Todo // newest first
}

func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{}
}

func (r *MemoryTodoRepository) Create(userID, title string) (*entities.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	todo := &entities.Todo{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Completed: false,
		Deleted:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.todos = append([]*entities.Todo{todo}, r.todos...)

	copied := *todo
	return &copied, nil
}

func (r *MemoryTodoRepository) FindByUser(userID string, completed *bool) ([]*entities.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*entities.Todo{}
	for _, t := range r.todos {
		if t.UserID != userID || t.Deleted {
			continue
		}
		if completed != nil && t.Completed != *completed {
			continue
		}
		copied := *t
		result = append(result, &copied)
	}
	return result, nil
}

func (r *MemoryTodoRepository) FindActive(id, userID string) (*entities.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.findActiveLocked(id, userID)
	if t == nil {
		return nil, repository.ErrTodoNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *MemoryTodoRepository) Update(id, userID, title string, completed, deleted bool) (*entities.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.findActiveLocked(id, userID)
	if t == nil {
		return nil, repository.ErrTodoNotFound
	}

	t.Title = title
	t.Completed = completed
	t.Deleted = deleted
	t.UpdatedAt = time.Now()

	copied := *t
	return &copied, nil
}

func (r *MemoryTodoRepository) findActiveLocked(id, userID string) *entities.Todo {
	for _, t := range r.todos {
		if t.ID == id && t.UserID == userID && !t.Deleted {
			return t
		}
	}
	return nil
}
