package memory

import (
	"context"
	"sync"

	"todo-gateway/internal/domain"
	"todo-gateway/internal/ports/output"
)

// Compile-time checks to ensure TodoRepository implements the output ports
var (
	_ output.TodoRepository = (*TodoRepository)(nil)
	_ output.StorePinger    = (*TodoRepository)(nil)
)

// TodoRepository struct - Output adapter for in-memory todo storage
//
// Mirrors the store's conditional-write contract: existence check and
// mutation happen under one lock, so concurrent creates for the same ID (or
// a racing update and delete) cannot both succeed. Iteration order of the
// backing map is unspecified, which matches the store's unordered scan.
// Used by tests and local runs; production uses the DynamoDB adapter.
type TodoRepository struct {
	mu    sync.Mutex
	todos map[string]domain.Todo
	limit int
}

// NewTodoRepository creates a new in-memory todo repository with the given
// fixed list page size.
func NewTodoRepository(limit int) *TodoRepository {
	return &TodoRepository{
		todos: make(map[string]domain.Todo),
		limit: limit,
	}
}

// CreateTodo stores the todo only if its ID is not already taken.
func (m *TodoRepository) CreateTodo(_ context.Context, todo domain.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.todos[todo.ID]; exists {
		return domain.ErrConditionFailed
	}

	m.todos[todo.ID] = todo
	return nil
}

// UpdateTodo replaces the todo only if its ID already exists.
func (m *TodoRepository) UpdateTodo(_ context.Context, todo domain.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.todos[todo.ID]; !exists {
		return domain.ErrConditionFailed
	}

	m.todos[todo.ID] = todo
	return nil
}

// DeleteTodo removes the todo only if its ID exists. Deleting an absent ID
// is a conditional failure, not a no-op.
func (m *TodoRepository) DeleteTodo(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.todos[id]; !exists {
		return domain.ErrConditionFailed
	}

	delete(m.todos, id)
	return nil
}

// GetTodo retrieves a todo by ID, or domain.ErrNotFound when absent.
func (m *TodoRepository) GetTodo(_ context.Context, id string) (*domain.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	todo, exists := m.todos[id]
	if !exists {
		return nil, domain.ErrNotFound
	}

	return &todo, nil
}

// ListTodos returns at most one page of todos in map iteration order.
func (m *TodoRepository) ListTodos(_ context.Context) ([]domain.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	todos := make([]domain.Todo, 0, m.limit)
	for _, todo := range m.todos {
		if len(todos) == m.limit {
			break
		}
		todos = append(todos, todo)
	}

	return todos, nil
}

// Ping always succeeds; there is no backing connection to check.
func (m *TodoRepository) Ping(_ context.Context) error {
	return nil
}
