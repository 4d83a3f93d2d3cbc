package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/youssef1892004/To-Do-List-App/internal/middleware"
	"github.com/youssef1892004/To-Do-List-App/internal/models"
	"github.com/youssef1892004/To-Do-List-App/internal/service"
)

// TodoService defines the interface for todo operations required by the
// TodoHandler. Every operation is owner-scoped to the caller id.
type TodoService interface {
	// List returns all of the caller's todos, newest created first.
	List(ctx context.Context, callerID string) ([]models.Todo, error)
	// Get returns a single todo after the ownership check.
	Get(ctx context.Context, callerID, id string) (*models.Todo, error)
	// Create validates and persists a new todo owned by the caller.
	Create(ctx context.Context, callerID, title, description string, priority models.Priority, dueDate *time.Time) (*models.Todo, error)
	// Update applies a partial patch to an owned todo.
	Update(ctx context.Context, callerID, id string, patch service.TodoPatch) (*models.Todo, error)
	// Delete removes an owned todo.
	Delete(ctx context.Context, callerID, id string) error
}

// TodoHandler handles HTTP requests for the owner-scoped todo CRUD endpoints.
type TodoHandler struct {
	// TodoService performs the underlying todo operations.
	TodoService TodoService
}

// CreateTodoRequest represents the JSON payload for creating a todo.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTodoRequest represents a partial update. Absent fields stay unchanged;
// an empty-string dueDate clears the deadline.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// parseDueDate accepts RFC 3339 timestamps or bare dates.
func parseDueDate(s string) (*time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// List handles GET /api/todos.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserIDFromContext(r.Context())

	todos, err := h.TodoService.List(r.Context(), callerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	writeJSON(w, http.StatusOK, todos)
}

// Get handles GET /api/todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserIDFromContext(r.Context())

	todo, err := h.TodoService.Get(r.Context(), callerID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserIDFromContext(r.Context())

	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := parseDueDate(*req.DueDate)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid due date")
			return
		}
		dueDate = parsed
	}

	todo, err := h.TodoService.Create(r.Context(), callerID, req.Title, req.Description, models.Priority(req.Priority), dueDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

// Update handles PUT /api/todos/{id}. The body may contain any subset of the
// mutable fields; only supplied fields change.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserIDFromContext(r.Context())

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := service.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		patch.Priority = &p
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			parsed, err := parseDueDate(*req.DueDate)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "Invalid due date")
				return
			}
			patch.DueDate = parsed
		}
	}

	todo, err := h.TodoService.Update(r.Context(), callerID, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

// Delete handles DELETE /api/todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserIDFromContext(r.Context())

	if err := h.TodoService.Delete(r.Context(), callerID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Todo removed")
}
