package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wewilldo-be/internal/entities"
	"wewilldo-be/internal/jwt"
)

func testUser() *entities.User {
	now := time.Now().Truncate(time.Second)
	return &entities.User{
		ID:        "3e1f1a9e-8c31-4b54-9c2a-6a33c3b1a001",
		Email:     "alice@example.com",
		Username:  "alice",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewJWTService("top-secret", 3*time.Hour)
	user := testUser()

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.User.ID)
	assert.Equal(t, user.Email, claims.User.Email)
	assert.Equal(t, user.Username, claims.User.Username)
	assert.True(t, user.CreatedAt.Equal(claims.User.CreatedAt))

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(3*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := jwt.NewJWTService("top-secret", -1*time.Minute)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTamperedToken(t *testing.T) {
	svc := jwt.NewJWTService("top-secret", 3*time.Hour)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	// Flip part of the payload, keep the signature
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = "eyJ0YW1wZXJlZCI6dHJ1ZX0"
	tampered := strings.Join(parts, ".")

	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := jwt.NewJWTService("secret-one", 3*time.Hour)
	verifier := jwt.NewJWTService("secret-two", 3*time.Hour)

	token, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateMalformedToken(t *testing.T) {
	svc := jwt.NewJWTService("top-secret", 3*time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken, "token %q should be rejected", token)
	}
}
