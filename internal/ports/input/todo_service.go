package input

import (
	"context"

	"todo-gateway/internal/domain"
)

// TodoService interface - Input port (use case)
// Defines what the application can do with todos
type TodoService interface {
	CreateTodo(ctx context.Context, todo domain.Todo) error
	UpdateTodo(ctx context.Context, todo domain.Todo) error
	DeleteTodo(ctx context.Context, id string) error
	GetTodo(ctx context.Context, id string) (*domain.Todo, error)
	ListTodos(ctx context.Context) ([]domain.Todo, error)
}
