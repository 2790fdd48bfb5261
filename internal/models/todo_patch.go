package models

// TodoPatch is the service-level partial update. Unlike UpdateTodoRequest
// it carries a Deleted field so soft-deletion goes through the same update
// path, but no HTTP body is ever bound into it directly: the public PUT
// endpoint only forwards title and completed, and DELETE sets Deleted.
type TodoPatch struct {
	Title     *string
	Completed *bool
	Deleted   *bool
}
