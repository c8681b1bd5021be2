package application

import (
	"context"
	"errors"

	"todo-gateway/internal/domain"
	"todo-gateway/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// TodoService struct - Application service implementing use cases
// Stateless: all per-key consistency is delegated to the repository's
// atomic conditional writes.
type TodoService struct {
	repo output.TodoRepository
}

// NewTodoService func - Creates new todo service
func NewTodoService(repo output.TodoRepository) *TodoService {
	return &TodoService{
		repo: repo,
	}
}

// CreateTodo func - Use case: Create a new todo
// Fails with domain.ErrConditionFailed when the ID is already taken.
func (s *TodoService) CreateTodo(ctx context.Context, todo domain.Todo) error {
	if err := s.repo.CreateTodo(ctx, todo); err != nil {
		s.logFailure("create", err)
		return err
	}
	return nil
}

// UpdateTodo func - Use case: Replace title/description of an existing todo
// Fails with domain.ErrConditionFailed when no item with the ID exists.
func (s *TodoService) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	if err := s.repo.UpdateTodo(ctx, todo); err != nil {
		s.logFailure("update", err)
		return err
	}
	return nil
}

// DeleteTodo func - Use case: Delete an existing todo
// Fails with domain.ErrConditionFailed when no item with the ID exists.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		s.logFailure("delete", err)
		return err
	}
	return nil
}

// GetTodo func - Use case: Get a single todo by ID
func (s *TodoService) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	todo, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		s.logFailure("get", err)
		return nil, err
	}
	return todo, nil
}

// ListTodos func - Use case: List the first page of todos
func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.repo.ListTodos(ctx)
	if err != nil {
		s.logFailure("list", err)
		return nil, err
	}
	return todos, nil
}

// logFailure logs backend faults at error level. Conditional-check and
// not-found outcomes are routine and logged at debug only.
func (s *TodoService) logFailure(op string, err error) {
	if errors.Is(err, domain.ErrConditionFailed) || errors.Is(err, domain.ErrNotFound) {
		logrus.Debugf("todo %s: %v", op, err)
		return
	}
	logrus.Errorf("todo %s: %v", op, err)
}
