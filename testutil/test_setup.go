package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"wewilldo-be/internal/controllers"
	"wewilldo-be/internal/jwt"
	"wewilldo-be/internal/middleware"
	"wewilldo-be/internal/password"
	"wewilldo-be/internal/service"
)

// TestJWTSecret signs tokens in tests
const TestJWTSecret = "test-secret"

// NewTestJWTService returns a JWT service with the shared test secret
func NewTestJWTService(ttl time.Duration) *jwt.JWTService {
	return jwt.NewJWTService(TestJWTSecret, ttl)
}

// SetupRouter builds the full API router over in-memory repositories.
// bcrypt runs at MinCost so auth-heavy tests stay fast.
func SetupRouter(t *testing.T) (*gin.Engine, *jwt.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := NewMemoryUserRepository()
	todoRepo := NewMemoryTodoRepository()

	hasher := password.NewHasher(bcrypt.MinCost)
	jwtService := NewTestJWTService(3 * time.Hour)

	authService := service.NewAuthService(userRepo, hasher, jwtService)
	todoService := service.NewTodoService(todoRepo)

	authController := controllers.NewAuthController(authService)
	todoController := controllers.NewTodoController(todoService)

	r := gin.New()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		todos := api.Group("/todos")
		todos.Use(middleware.AuthMiddleware(jwtService))
		{
			todos.GET("", todoController.GetTodos)
			todos.GET("/pending", todoController.GetTodosPending)
			todos.GET("/completed", todoController.GetTodosCompleted)
			todos.POST("", todoController.CreateTodo)
			todos.PUT("/:id", todoController.UpdateTodo)
			todos.DELETE("/:id", todoController.DeleteTodo)
		}
	}

	return r, jwtService
}

// DoJSON performs a request with an optional JSON body and bearer token
func DoJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// RegisterAndGetToken registers a user through the API and returns the token
func RegisterAndGetToken(t *testing.T, r *gin.Engine, email, username, pass string) string {
	t.Helper()

	w := DoJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"username": username,
		"password": pass,
	})
	require.Equal(t, http.StatusCreated, w.Code, "registration should succeed: %s", w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

// Body decodes a recorder body into a generic map
func Body(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response should be JSON: %s", w.Body.String())
	return body
}

// CreateTestTodo creates a todo through the API and returns its id
func CreateTestTodo(t *testing.T, r *gin.Engine, token, title string) string {
	t.Helper()

	w := DoJSON(t, r, http.MethodPost, "/api/todos", token, map[string]string{"title": title})
	require.Equal(t, http.StatusCreated, w.Code, "todo creation should succeed: %s", w.Body.String())

	body := Body(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "data should be an object")
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// TodoTitles extracts the titles from a list response, in order
func TodoTitles(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	body := Body(t, w)
	items, ok := body["data"].([]interface{})
	require.True(t, ok, "data should be an array")

	titles := make([]string, 0, len(items))
	for _, item := range items {
		todo, ok := item.(map[string]interface{})
		require.True(t, ok)
		titles = append(titles, fmt.Sprintf("%v", todo["title"]))
	}
	return titles
}
