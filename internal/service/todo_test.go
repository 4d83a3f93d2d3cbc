package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/youssef1892004/To-Do-List-App/internal/models"
	"github.com/youssef1892004/To-Do-List-App/internal/service"
)

type mockTodoRepo struct {
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]models.Todo, error)
	GetByIDFunc     func(ctx context.Context, id string) (*models.Todo, error)
	InsertFunc      func(ctx context.Context, todo *models.Todo) error
	UpdateFunc      func(ctx context.Context, todo *models.Todo) error
	DeleteFunc      func(ctx context.Context, id string) error
}

func (m *mockTodoRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Todo, error) {
	return m.ListByOwnerFunc(ctx, ownerID)
}
func (m *mockTodoRepo) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockTodoRepo) Insert(ctx context.Context, todo *models.Todo) error {
	return m.InsertFunc(ctx, todo)
}
func (m *mockTodoRepo) Update(ctx context.Context, todo *models.Todo) error {
	return m.UpdateFunc(ctx, todo)
}
func (m *mockTodoRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func ownedTodo() *models.Todo {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &models.Todo{
		ID:          "t1",
		OwnerID:     "alice",
		Title:       "Buy milk",
		Description: "2 liters",
		Completed:   false,
		Priority:    models.PriorityMedium,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestGet_Owned(t *testing.T) {
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return ownedTodo(), nil
		},
	}
	svc := service.NewTodoService(repo)
	got, err := svc.Get(context.Background(), "alice", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Buy milk" {
		t.Errorf("title = %q; want Buy milk", got.Title)
	}
}

func TestGet_ForeignOwner(t *testing.T) {
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return ownedTodo(), nil
		},
	}
	svc := service.NewTodoService(repo)
	_, err := svc.Get(context.Background(), "bob", "t1")
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("Get error = %v; want ErrForbidden", err)
	}
}

func TestGet_Absent(t *testing.T) {
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := service.NewTodoService(repo)
	_, err := svc.Get(context.Background(), "bob", "missing")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("Get error = %v; want ErrNotFound", err)
	}
}

func TestCreate_Defaults(t *testing.T) {
	var inserted *models.Todo
	repo := &mockTodoRepo{
		InsertFunc: func(ctx context.Context, todo *models.Todo) error {
			inserted = todo
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	got, err := svc.Create(context.Background(), "alice", "Buy milk", "", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted == nil {
		t.Fatal("expected Insert to be called")
	}
	if got.OwnerID != "alice" {
		t.Errorf("owner = %q; want alice", got.OwnerID)
	}
	if got.Completed {
		t.Error("new todo must start incomplete")
	}
	if got.Priority != models.PriorityMedium {
		t.Errorf("priority = %q; want medium", got.Priority)
	}
	if got.ID == "" {
		t.Error("expected an assigned id")
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Error("created and updated timestamps must match at creation")
	}
}

func TestCreate_WhitespaceTitle(t *testing.T) {
	repo := &mockTodoRepo{
		InsertFunc: func(ctx context.Context, todo *models.Todo) error {
			t.Fatal("Insert must not be called for an invalid title")
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	_, err := svc.Create(context.Background(), "alice", "   ", "", "", nil)
	if !errors.Is(err, service.ErrTitleRequired) {
		t.Fatalf("Create error = %v; want ErrTitleRequired", err)
	}
}

func TestCreate_InvalidPriority(t *testing.T) {
	repo := &mockTodoRepo{
		InsertFunc: func(ctx context.Context, todo *models.Todo) error {
			t.Fatal("Insert must not be called for an invalid priority")
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	_, err := svc.Create(context.Background(), "alice", "Buy milk", "", "urgent", nil)
	if !errors.Is(err, service.ErrInvalidPriority) {
		t.Fatalf("Create error = %v; want ErrInvalidPriority", err)
	}
}

func TestUpdate_PartialKeepsOmittedFields(t *testing.T) {
	var updated *models.Todo
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return ownedTodo(), nil
		},
		UpdateFunc: func(ctx context.Context, todo *models.Todo) error {
			updated = todo
			return nil
		},
	}
	svc := service.NewTodoService(repo)

	high := models.PriorityHigh
	got, err := svc.Update(context.Background(), "alice", "t1", service.TodoPatch{Priority: &high})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected Update to be called")
	}
	if got.Priority != models.PriorityHigh {
		t.Errorf("priority = %q; want high", got.Priority)
	}
	if got.Title != "Buy milk" || got.Description != "2 liters" {
		t.Errorf("omitted fields changed: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("expected updated_at to be bumped")
	}
}

func TestUpdate_OwnerNeverReassigned(t *testing.T) {
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return ownedTodo(), nil
		},
		UpdateFunc: func(ctx context.Context, todo *models.Todo) error {
			if todo.OwnerID != "alice" {
				t.Errorf("owner changed to %q", todo.OwnerID)
			}
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	done := true
	if _, err := svc.Update(context.Background(), "alice", "t1", service.TodoPatch{Completed: &done}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdate_ForeignOwner(t *testing.T) {
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return ownedTodo(), nil
		},
		UpdateFunc: func(ctx context.Context, todo *models.Todo) error {
			t.Fatal("Update must not be called for a foreign owner")
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	done := true
	_, err := svc.Update(context.Background(), "bob", "t1", service.TodoPatch{Completed: &done})
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("Update error = %v; want ErrForbidden", err)
	}
}

func TestUpdate_EmptyTitleRejected(t *testing.T) {
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return ownedTodo(), nil
		},
		UpdateFunc: func(ctx context.Context, todo *models.Todo) error {
			t.Fatal("Update must not be called for an empty title")
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	empty := "  "
	_, err := svc.Update(context.Background(), "alice", "t1", service.TodoPatch{Title: &empty})
	if !errors.Is(err, service.ErrTitleRequired) {
		t.Fatalf("Update error = %v; want ErrTitleRequired", err)
	}
}

func TestUpdate_ClearDueDate(t *testing.T) {
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			todo := ownedTodo()
			todo.DueDate = &due
			return todo, nil
		},
		UpdateFunc: func(ctx context.Context, todo *models.Todo) error {
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	got, err := svc.Update(context.Background(), "alice", "t1", service.TodoPatch{ClearDueDate: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DueDate != nil {
		t.Errorf("due date = %v; want nil", got.DueDate)
	}
}

func TestDelete_Owned(t *testing.T) {
	called := false
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return ownedTodo(), nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			called = true
			if id != "t1" {
				t.Errorf("Delete id = %q; want t1", id)
			}
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	if err := svc.Delete(context.Background(), "alice", "t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected Delete to be called")
	}
}

func TestDelete_ForeignOwner(t *testing.T) {
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return ownedTodo(), nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			t.Fatal("Delete must not be called for a foreign owner")
			return nil
		},
	}
	svc := service.NewTodoService(repo)
	err := svc.Delete(context.Background(), "bob", "t1")
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("Delete error = %v; want ErrForbidden", err)
	}
}

func TestDelete_AbsentIsNotFound(t *testing.T) {
	repo := &mockTodoRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Todo, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := service.NewTodoService(repo)
	err := svc.Delete(context.Background(), "alice", "missing")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("Delete error = %v; want ErrNotFound", err)
	}
}

func TestList_DelegatesToRepo(t *testing.T) {
	want := []models.Todo{*ownedTodo()}
	repo := &mockTodoRepo{
		ListByOwnerFunc: func(ctx context.Context, ownerID string) ([]models.Todo, error) {
			if ownerID != "alice" {
				t.Errorf("ListByOwner ownerID = %q; want alice", ownerID)
			}
			return want, nil
		},
	}
	svc := service.NewTodoService(repo)
	got, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("List = %+v; want %+v", got, want)
	}
}
