package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"todo-gateway/internal/domain"
)

const testPageSize = 10

// TestCreateTodoRejectsDuplicateID tests create/create mutual exclusion.
func TestCreateTodoRejectsDuplicateID(t *testing.T) {
	repo := NewTodoRepository(testPageSize)
	ctx := context.Background()

	if err := repo.CreateTodo(ctx, domain.Todo{ID: "1", Title: "A", Description: "B"}); err != nil {
		t.Fatalf("expected first create to succeed, got %v", err)
	}

	err := repo.CreateTodo(ctx, domain.Todo{ID: "1", Title: "other", Description: "other"})
	if !errors.Is(err, domain.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed on duplicate create, got %v", err)
	}

	// The losing create must not have overwritten the item.
	todo, err := repo.GetTodo(ctx, "1")
	if err != nil {
		t.Fatalf("expected no error on get, got %v", err)
	}
	if todo.Title != "A" {
		t.Errorf("expected original title A, got %s", todo.Title)
	}
}

// TestUpdateTodoRequiresExistingItem tests that updating a never-created ID
// is a conditional failure.
func TestUpdateTodoRequiresExistingItem(t *testing.T) {
	repo := NewTodoRepository(testPageSize)

	err := repo.UpdateTodo(context.Background(), domain.Todo{ID: "missing", Title: "A", Description: "B"})
	if !errors.Is(err, domain.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", err)
	}
}

// TestDeleteTodoOfAbsentIDFails tests that delete requires prior existence.
func TestDeleteTodoOfAbsentIDFails(t *testing.T) {
	repo := NewTodoRepository(testPageSize)

	err := repo.DeleteTodo(context.Background(), "missing")
	if !errors.Is(err, domain.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", err)
	}
}

// TestRoundTrip tests create followed by get returning the exact item.
func TestRoundTrip(t *testing.T) {
	repo := NewTodoRepository(testPageSize)
	ctx := context.Background()

	want := domain.Todo{ID: "1", Title: "A", Description: "B"}
	if err := repo.CreateTodo(ctx, want); err != nil {
		t.Fatalf("expected no error on create, got %v", err)
	}

	got, err := repo.GetTodo(ctx, "1")
	if err != nil {
		t.Fatalf("expected no error on get, got %v", err)
	}
	if *got != want {
		t.Errorf("expected %+v, got %+v", want, *got)
	}
}

// TestGetTodoAbsentIDIsNotFound tests the not-found classification.
func TestGetTodoAbsentIDIsNotFound(t *testing.T) {
	repo := NewTodoRepository(testPageSize)

	_, err := repo.GetTodo(context.Background(), "doesnotexist")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestUpdateThenDeleteLifecycle tests the full mutate-in-place lifecycle.
func TestUpdateThenDeleteLifecycle(t *testing.T) {
	repo := NewTodoRepository(testPageSize)
	ctx := context.Background()

	if err := repo.CreateTodo(ctx, domain.Todo{ID: "1", Title: "A", Description: "B"}); err != nil {
		t.Fatalf("expected no error on create, got %v", err)
	}
	if err := repo.UpdateTodo(ctx, domain.Todo{ID: "1", Title: "A2", Description: "B2"}); err != nil {
		t.Fatalf("expected no error on update, got %v", err)
	}

	todo, err := repo.GetTodo(ctx, "1")
	if err != nil {
		t.Fatalf("expected no error on get, got %v", err)
	}
	if todo.Title != "A2" || todo.Description != "B2" {
		t.Errorf("expected replaced fields, got %+v", todo)
	}

	if err := repo.DeleteTodo(ctx, "1"); err != nil {
		t.Fatalf("expected no error on delete, got %v", err)
	}
	if _, err := repo.GetTodo(ctx, "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

// TestListTodosBoundedToPageSize tests the fixed scan bound: after creating
// 15 distinct todos the list returns at most 10.
func TestListTodosBoundedToPageSize(t *testing.T) {
	repo := NewTodoRepository(testPageSize)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("todo-%d", i)
		if err := repo.CreateTodo(ctx, domain.Todo{ID: id, Title: "t", Description: "d"}); err != nil {
			t.Fatalf("expected no error creating %s, got %v", id, err)
		}
	}

	todos, err := repo.ListTodos(ctx)
	if err != nil {
		t.Fatalf("expected no error on list, got %v", err)
	}
	if len(todos) > testPageSize {
		t.Errorf("expected at most %d todos, got %d", testPageSize, len(todos))
	}
}
