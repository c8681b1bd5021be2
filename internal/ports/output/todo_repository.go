package output

import (
	"context"

	"todo-gateway/internal/domain"
)

// TodoRepository interface - Output port
// Defines what the application needs from the key-value store. Each method
// issues exactly one store operation; existence preconditions are evaluated
// atomically by the store, never via a separate read-then-write.
type TodoRepository interface {
	// CreateTodo writes the item only if no item with the same ID exists.
	// Returns domain.ErrConditionFailed when the ID is already taken.
	CreateTodo(ctx context.Context, todo domain.Todo) error

	// UpdateTodo replaces the item only if an item with the ID exists.
	// Returns domain.ErrConditionFailed when it does not.
	UpdateTodo(ctx context.Context, todo domain.Todo) error

	// DeleteTodo removes the item only if it exists.
	// Returns domain.ErrConditionFailed when it does not.
	DeleteTodo(ctx context.Context, id string) error

	// GetTodo reads a single item by key. Returns domain.ErrNotFound when
	// no item matches.
	GetTodo(ctx context.Context, id string) (*domain.Todo, error)

	// ListTodos reads the first page of items in store return order. The
	// page size is fixed; no continuation token is exposed.
	ListTodos(ctx context.Context) ([]domain.Todo, error)
}

// StorePinger interface - Output port for health checks
type StorePinger interface {
	Ping(ctx context.Context) error
}
