package service

import (
	"errors"
	"fmt"
	"strings"

	"wewilldo-be/internal/jwt"
	"wewilldo-be/internal/models"
	"wewilldo-be/internal/password"
	"wewilldo-be/internal/repository"
)

var (
	// ErrUserExists is returned when the email or username is already taken
	ErrUserExists = errors.New("Email or username already exists")

	// ErrInvalidCredentials is returned for both an unknown identifier and
	// a wrong password, so a caller cannot tell which check failed
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(email, username, plainPassword string) (*models.AuthResponse, error)
	Login(identify, plainPassword string) (*models.AuthResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     *password.Hasher
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher *password.Hasher, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// normalize lowercases and trims an identifier so lookups and uniqueness
// checks are case-insensitive
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register creates a new user account and logs it in
func (s *authService) Register(email, username, plainPassword string) (*models.AuthResponse, error) {
	email = normalize(email)
	username = normalize(username)

	exists, err := s.userRepo.ExistsByEmailOrUsername(email, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(email, username, hashed)
	if err != nil {
		// The existence check above races with concurrent registrations;
		// the unique constraint is the authority
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.PasswordHash = ""

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{User: user, Token: token}, nil
}

// Login authenticates a user by email or username and returns the public
// user fields with a fresh token
func (s *authService) Login(identify, plainPassword string) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByIdentity(normalize(identify))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(plainPassword, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	user.PasswordHash = ""

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{User: user, Token: token}, nil
}
