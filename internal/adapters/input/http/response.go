package http

// Fixed response bodies. These strings are a compatibility contract with
// existing clients and must not be reworded. Note the asymmetry carried
// over from the original surface: the create failure uses the "message"
// key while update/delete/load failures use "error".
const (
	// MessageCreated response body text
	MessageCreated = "To-Do object created successfully."
	// MessageUpdated response body text
	MessageUpdated = "To-Do object updated successfully."
	// MessageDeleted response body text
	MessageDeleted = "To-Do object deleted successfully."

	// ErrorCreate response body text
	ErrorCreate = "There was an error while creating a new To-Do object."
	// ErrorUpdate response body text
	ErrorUpdate = "There was an error while updating the To-Do object."
	// ErrorDelete response body text
	ErrorDelete = "There has been an error while deleting the To-Do object."
	// ErrorLoad response body text, also returned for a missing single item
	ErrorLoad = "There was an error loading the To-Do objects."
)

type (
	// MessageResponse struct - success body for mutating operations
	MessageResponse struct {
		Message string `json:"message"`
	}

	// ErrorResponse struct - failure body
	ErrorResponse struct {
		Error string `json:"error"`
	}

	// TodoResponse struct - HTTP response DTO for a single todo
	TodoResponse struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	// HealthResponse struct - body for the health endpoint
	HealthResponse struct {
		Status string `json:"status"`
	}
)
