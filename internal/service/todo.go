package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/youssef1892004/To-Do-List-App/internal/models"
)

// TodoRepository defines the persistence operations needed by the TodoService.
type TodoRepository interface {
	// ListByOwner retrieves all todos belonging to the specified user,
	// newest created first with ties broken by id ascending.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Todo, error)
	// GetByID fetches a single todo by id regardless of owner.
	// Returns sql.ErrNoRows when absent.
	GetByID(ctx context.Context, id string) (*models.Todo, error)
	// Insert persists a new todo with a caller-assigned unique id.
	Insert(ctx context.Context, todo *models.Todo) error
	// Update rewrites the mutable fields of an existing todo.
	// Returns sql.ErrNoRows when no record was affected.
	Update(ctx context.Context, todo *models.Todo) error
	// Delete removes the todo with the given id.
	// Returns sql.ErrNoRows when no record was affected.
	Delete(ctx context.Context, id string) error
}

// TodoPatch carries a partial update. Nil fields are left unchanged.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *models.Priority
	// DueDate distinguishes "set" from "clear": when present and ClearDueDate
	// is false the due date is replaced, when ClearDueDate is true it is unset.
	DueDate      *time.Time
	ClearDueDate bool
}

// TodoService implements the owner-scoped CRUD logic over a TodoRepository.
type TodoService struct {
	// repo is the underlying persistence repository.
	repo TodoRepository
}

// NewTodoService constructs a TodoService with the provided TodoRepository.
func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// authorize verifies that the todo belongs to the caller. It is applied after
// every load rather than folded into the store query so that Forbidden and
// NotFound stay distinguishable.
func authorize(todo *models.Todo, callerID string) error {
	if todo.OwnerID != callerID {
		return ErrForbidden
	}
	return nil
}

// load fetches a todo by id and maps an absent record to ErrNotFound.
func (s *TodoService) load(ctx context.Context, id string) (*models.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

// List returns all todos owned by the caller, newest created first.
func (s *TodoService) List(ctx context.Context, callerID string) ([]models.Todo, error) {
	return s.repo.ListByOwner(ctx, callerID)
}

// Get returns the todo with the given id if it exists and the caller owns it.
// Returns ErrNotFound for an absent id and ErrForbidden for a foreign owner.
func (s *TodoService) Get(ctx context.Context, callerID, id string) (*models.Todo, error) {
	todo, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(todo, callerID); err != nil {
		return nil, err
	}
	return todo, nil
}

// Create validates the fields and persists a new todo owned by the caller.
// The title must be non-empty after trimming; an omitted priority defaults to
// medium; completed always starts false.
func (s *TodoService) Create(ctx context.Context, callerID, title, description string, priority models.Priority, dueDate *time.Time) (*models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	now := time.Now().UTC()
	todo := &models.Todo{
		ID:          uuid.NewString(),
		OwnerID:     callerID,
		Title:       title,
		Description: description,
		Completed:   false,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update loads the todo, verifies ownership, applies only the fields present
// in the patch, bumps updated_at, and returns the updated record.
func (s *TodoService) Update(ctx context.Context, callerID, id string, patch TodoPatch) (*models.Todo, error) {
	todo, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(todo, callerID); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		todo.Title = title
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		todo.Priority = *patch.Priority
	}
	if patch.ClearDueDate {
		todo.DueDate = nil
	} else if patch.DueDate != nil {
		todo.DueDate = patch.DueDate
	}
	todo.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, todo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

// Delete removes the todo after verifying ownership. Deleting an absent id
// yields ErrNotFound, never success.
func (s *TodoService) Delete(ctx context.Context, callerID, id string) error {
	todo, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(todo, callerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
