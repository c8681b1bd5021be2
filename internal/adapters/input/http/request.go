package http

type (
	// CreateTodoRequest struct - HTTP request DTO for PUT /v1/todo
	// All three fields are required non-empty strings; the body's id becomes
	// the new item's partition key.
	CreateTodoRequest struct {
		ID          string `json:"id" validate:"required" form:"id"`
		Title       string `json:"title" validate:"required" form:"title"`
		Description string `json:"description" validate:"required" form:"description"`
	}

	// UpdateTodoRequest struct - HTTP request DTO for PUT /v1/todo/{id}
	// The key comes from the path; an id present in the body is ignored so
	// an update can never re-key an item.
	UpdateTodoRequest struct {
		Title       string `json:"title" validate:"required" form:"title"`
		Description string `json:"description" validate:"required" form:"description"`
	}
)
