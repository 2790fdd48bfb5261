package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wewilldo-be/testutil"
)

func TestTodoRoutesRequireToken(t *testing.T) {
	r, _ := testutil.SetupRouter(t)

	// Missing token is 401, invalid token is 403
	w := testutil.DoJSON(t, r, http.MethodGet, "/api/todos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access token is required")

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/todos", "garbage-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

// The register -> list -> create -> filter flow from the API's contract
func TestTodoLifecycleFlow(t *testing.T) {
	r, _ := testutil.SetupRouter(t)
	token := testutil.RegisterAndGetToken(t, r, "a@x.com", "alice", "p1")

	// Fresh account starts with an empty list
	w := testutil.DoJSON(t, r, http.MethodGet, "/api/todos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.Body(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{}, body["data"])

	// Create one
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/todos", token, map[string]string{"title": "x"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := testutil.Body(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "x", created["title"])
	assert.Equal(t, false, created["completed"])

	// It shows up as pending, not completed
	w = testutil.DoJSON(t, r, http.MethodGet, "/api/todos/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"x"}, testutil.TodoTitles(t, w))

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/todos/completed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, testutil.TodoTitles(t, w))

	// Complete it; the partition flips
	w = testutil.DoJSON(t, r, http.MethodPut, "/api/todos/"+created["id"].(string), token,
		map[string]interface{}{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)
	updated := testutil.Body(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, updated["completed"])
	assert.Equal(t, "x", updated["title"], "a completed-only patch must not touch the title")

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/todos/pending", token, nil)
	assert.Empty(t, testutil.TodoTitles(t, w))
	w = testutil.DoJSON(t, r, http.MethodGet, "/api/todos/completed", token, nil)
	assert.Equal(t, []string{"x"}, testutil.TodoTitles(t, w))
}

func TestCreateTodoValidation(t *testing.T) {
	r, _ := testutil.SetupRouter(t)
	token := testutil.RegisterAndGetToken(t, r, "a@x.com", "alice", "p1")

	// Missing title
	w := testutil.DoJSON(t, r, http.MethodPost, "/api/todos", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title is required", testutil.Body(t, w)["error"])

	// Whitespace-only title
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/todos", token, map[string]string{"title": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title is required", testutil.Body(t, w)["error"])

	// Surrounding whitespace is trimmed
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/todos", token, map[string]string{"title": "  Buy milk  "})
	require.Equal(t, http.StatusCreated, w.Code)
	created := testutil.Body(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Buy milk", created["title"])
}

func TestUpdateTodoValidation(t *testing.T) {
	r, _ := testutil.SetupRouter(t)
	token := testutil.RegisterAndGetToken(t, r, "a@x.com", "alice", "p1")
	id := testutil.CreateTestTodo(t, r, token, "Buy milk")

	// Empty patch
	w := testutil.DoJSON(t, r, http.MethodPut, "/api/todos/"+id, token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No data to update", testutil.Body(t, w)["error"])

	// Blank title is rejected rather than silently clearing it
	w = testutil.DoJSON(t, r, http.MethodPut, "/api/todos/"+id, token, map[string]interface{}{"title": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title cannot be empty!", testutil.Body(t, w)["error"])

	// Unknown and malformed ids are both reported as not found
	w = testutil.DoJSON(t, r, http.MethodPut, "/api/todos/2b41a3ad-0bd1-4c08-9e1c-53a1ad13f000", token,
		map[string]interface{}{"completed": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPut, "/api/todos/not-a-uuid", token,
		map[string]interface{}{"completed": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTodo(t *testing.T) {
	r, _ := testutil.SetupRouter(t)
	token := testutil.RegisterAndGetToken(t, r, "a@x.com", "alice", "p1")
	id := testutil.CreateTestTodo(t, r, token, "Buy milk")

	w := testutil.DoJSON(t, r, http.MethodDelete, "/api/todos/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.Body(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Todo deleted successfully", body["message"])

	// Gone from every listing
	w = testutil.DoJSON(t, r, http.MethodGet, "/api/todos", token, nil)
	assert.Empty(t, testutil.TodoTitles(t, w))

	// Deleting again is not found, not an idempotent success
	w = testutil.DoJSON(t, r, http.MethodDelete, "/api/todos/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Todo not found or already deleted!", testutil.Body(t, w)["error"])

	// Neither can it be updated anymore
	w = testutil.DoJSON(t, r, http.MethodPut, "/api/todos/"+id, token,
		map[string]interface{}{"completed": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTodosAreScopedToTheirOwner(t *testing.T) {
	r, _ := testutil.SetupRouter(t)
	tokenA := testutil.RegisterAndGetToken(t, r, "a@x.com", "alice", "p1")
	tokenB := testutil.RegisterAndGetToken(t, r, "b@x.com", "bob", "p2")

	id := testutil.CreateTestTodo(t, r, tokenA, "alices task")

	// B sees an empty list
	w := testutil.DoJSON(t, r, http.MethodGet, "/api/todos", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, testutil.TodoTitles(t, w))

	// B cannot update or delete A's todo even with its real id
	w = testutil.DoJSON(t, r, http.MethodPut, "/api/todos/"+id, tokenB,
		map[string]interface{}{"completed": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.DoJSON(t, r, http.MethodDelete, "/api/todos/"+id, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A's todo is intact
	w = testutil.DoJSON(t, r, http.MethodGet, "/api/todos/pending", tokenA, nil)
	assert.Equal(t, []string{"alices task"}, testutil.TodoTitles(t, w))
}

func TestPutBodyCannotSoftDelete(t *testing.T) {
	r, _ := testutil.SetupRouter(t)
	token := testutil.RegisterAndGetToken(t, r, "a@x.com", "alice", "p1")
	id := testutil.CreateTestTodo(t, r, token, "Buy milk")

	// A deleted flag in the PUT body is ignored; deletion has its own verb
	w := testutil.DoJSON(t, r, http.MethodPut, "/api/todos/"+id, token,
		map[string]interface{}{"completed": true, "deleted": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/todos", token, nil)
	assert.Equal(t, []string{"Buy milk"}, testutil.TodoTitles(t, w))
}
