package application

import (
	"context"
	"errors"
	"testing"

	"todo-gateway/internal/adapters/output/memory"
	"todo-gateway/internal/domain"
)

const testPageSize = 10

// TestCreateUpdateMutualExclusion tests the central consistency invariant at
// the use-case level: create fails on an existing id, update fails on a
// missing one.
func TestCreateUpdateMutualExclusion(t *testing.T) {
	srv := NewTodoService(memory.NewTodoRepository(testPageSize))
	ctx := context.Background()

	if err := srv.CreateTodo(ctx, domain.Todo{ID: "1", Title: "A", Description: "B"}); err != nil {
		t.Fatalf("expected first create to succeed, got %v", err)
	}

	err := srv.CreateTodo(ctx, domain.Todo{ID: "1", Title: "A", Description: "B"})
	if !errors.Is(err, domain.ErrConditionFailed) {
		t.Errorf("expected ErrConditionFailed on second create, got %v", err)
	}

	err = srv.UpdateTodo(ctx, domain.Todo{ID: "never-created", Title: "A", Description: "B"})
	if !errors.Is(err, domain.ErrConditionFailed) {
		t.Errorf("expected ErrConditionFailed on update of missing id, got %v", err)
	}
}

// TestDeleteRequiresExistence tests that delete propagates the conditional
// failure for an absent id.
func TestDeleteRequiresExistence(t *testing.T) {
	srv := NewTodoService(memory.NewTodoRepository(testPageSize))

	err := srv.DeleteTodo(context.Background(), "missing")
	if !errors.Is(err, domain.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", err)
	}
}

// TestGetTodoPassesThroughNotFound tests that the service does not mask the
// not-found classification.
func TestGetTodoPassesThroughNotFound(t *testing.T) {
	srv := NewTodoService(memory.NewTodoRepository(testPageSize))

	_, err := srv.GetTodo(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestListTodosDelegates tests the list pass-through.
func TestListTodosDelegates(t *testing.T) {
	repo := memory.NewTodoRepository(testPageSize)
	srv := NewTodoService(repo)
	ctx := context.Background()

	if err := srv.CreateTodo(ctx, domain.Todo{ID: "1", Title: "A", Description: "B"}); err != nil {
		t.Fatalf("expected no error on create, got %v", err)
	}

	todos, err := srv.ListTodos(ctx)
	if err != nil {
		t.Fatalf("expected no error on list, got %v", err)
	}
	if len(todos) != 1 {
		t.Errorf("expected 1 todo, got %d", len(todos))
	}
}
