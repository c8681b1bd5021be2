package http

import (
	"errors"

	"todo-gateway/internal/domain"
	"todo-gateway/internal/ports/input"
	"todo-gateway/internal/ports/output"
	"todo-gateway/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
//
// Request side: every handler produces at most one store operation, after
// body parsing and validation. A request that fails validation is rejected
// here and never dispatched. Response side: store outcomes are classified by
// tagged error into the fixed 200/400 bodies; there is no 5xx arm for
// backend faults and no retry.
type HTTPHandler struct {
	srv       input.TodoService
	store     output.StorePinger
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.TodoService, store output.StorePinger) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		store:     store,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if err := hdl.store.Ping(c.UserContext()); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(HealthResponse{Status: "unavailable"})
	}
	return c.Status(fiber.StatusOK).JSON(HealthResponse{Status: "ok"})
}

// CreateTodo func
// CreateTodo godoc
// @Summary Create todo
// @Description Creates a new todo; fails if the id is already taken
// @Tags TODO
// @Accept application/json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Router /v1/todo [put]
// @param CreateTodo body CreateTodoRequest true "CreateTodo"
func (hdl *HTTPHandler) CreateTodo(c *fiber.Ctx) error {
	var request CreateTodoRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	todo := domain.Todo{
		ID:          request.ID,
		Title:       request.Title,
		Description: request.Description,
	}
	if err := hdl.srv.CreateTodo(c.UserContext(), todo); err != nil {
		hdl.logUnexpected(err)
		// Create is the one operation whose failure body keys on "message".
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: ErrorCreate})
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: MessageCreated})
}

// UpdateTodo func
// UpdateTodo godoc
// @Summary Update todo
// @Description Replaces title/description of an existing todo
// @Tags TODO
// @Accept application/json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/todo/{id} [put]
// @param id path string true "todo id"
// @param UpdateTodo body UpdateTodoRequest true "UpdateTodo"
func (hdl *HTTPHandler) UpdateTodo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ErrorUpdate})
	}

	var request UpdateTodoRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	// The key is taken from the path only; the body cannot re-key the item.
	todo := domain.Todo{
		ID:          id,
		Title:       request.Title,
		Description: request.Description,
	}
	if err := hdl.srv.UpdateTodo(c.UserContext(), todo); err != nil {
		hdl.logUnexpected(err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ErrorUpdate})
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: MessageUpdated})
}

// DeleteTodo func
// DeleteTodo godoc
// @Summary Delete todo
// @Description Deletes an existing todo; fails if the id does not exist
// @Tags TODO
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/todo/{id} [delete]
// @param id path string true "todo id"
func (hdl *HTTPHandler) DeleteTodo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ErrorDelete})
	}

	if err := hdl.srv.DeleteTodo(c.UserContext(), id); err != nil {
		hdl.logUnexpected(err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ErrorDelete})
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: MessageDeleted})
}

// GetTodo func
// GetTodo godoc
// @Summary Get todo
// @Description Gets a single todo by id
// @Tags TODO
// @Produce json
// @Success 200 {object} TodoResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/todo/{id} [get]
// @param id path string true "todo id"
func (hdl *HTTPHandler) GetTodo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ErrorLoad})
	}

	todo, err := hdl.srv.GetTodo(c.UserContext(), id)
	if err != nil {
		hdl.logUnexpected(err)
		// A missing item is answered 400 with the fixed loading-error body,
		// never 200 with an empty object. Kept for client compatibility.
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ErrorLoad})
	}
	return c.Status(fiber.StatusOK).JSON(TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
	})
}

// ListTodos func
// ListTodos godoc
// @Summary List todos
// @Description Lists the first page of todos in store return order
// @Tags TODO
// @Produce json
// @Success 200 {array} TodoResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/todo [get]
func (hdl *HTTPHandler) ListTodos(c *fiber.Ctx) error {
	todos, err := hdl.srv.ListTodos(c.UserContext())
	if err != nil {
		hdl.logUnexpected(err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ErrorLoad})
	}

	// Store return order is preserved as-is; an empty page is [], not null.
	data := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		data = append(data, TodoResponse{
			ID:          todo.ID,
			Title:       todo.Title,
			Description: todo.Description,
		})
	}
	return c.Status(fiber.StatusOK).JSON(data)
}

// logUnexpected logs outcomes outside the expected classification. A
// rejected condition or a missing item is routine; anything else is a
// backend fault that must not be swallowed silently.
func (hdl *HTTPHandler) logUnexpected(err error) {
	if errors.Is(err, domain.ErrConditionFailed) || errors.Is(err, domain.ErrNotFound) {
		return
	}
	logrus.Errorln(err)
}
