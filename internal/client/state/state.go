// Package state holds the client-side mirror of server state: the current
// user, their todo collection, the last error, and the loading flag. All
// changes go through the transition methods; the presentation layer only
// reads projections.
package state

import (
	"sort"
	"sync"

	"github.com/youssef1892004/To-Do-List-App/internal/models"
)

// Filter selects which todos a projection includes.
type Filter string

const (
	// FilterAll includes every todo.
	FilterAll Filter = "all"
	// FilterActive includes only incomplete todos.
	FilterActive Filter = "active"
	// FilterCompleted includes only completed todos.
	FilterCompleted Filter = "completed"
)

// Store is the client state container. The zero value is ready to use.
type Store struct {
	mu      sync.Mutex
	user    *models.User
	todos   []models.Todo
	lastErr string
	loading bool
}

// SetLoading flips the loading flag around an in-flight request.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading reports whether a request is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetUser records the authenticated user. The caller follows up with a List
// and ReplaceAll so the collection mirrors the server.
func (s *Store) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.lastErr = ""
}

// ClearUser drops the user and the todo collection, as on logout or a failed
// session check.
func (s *Store) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.todos = nil
	s.lastErr = ""
}

// User returns the current user, or nil when unauthenticated.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// ReplaceAll swaps in a freshly listed collection from the server.
func (s *Store) ReplaceAll(todos []models.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = append([]models.Todo(nil), todos...)
	s.lastErr = ""
}

// Prepend puts a newly created todo at the head of the collection, matching
// the server's newest-first ordering.
func (s *Store) Prepend(todo models.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = append([]models.Todo{todo}, s.todos...)
	s.lastErr = ""
}

// Update replaces the matching record in place by id. Unknown ids are ignored.
func (s *Store) Update(todo models.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == todo.ID {
			s.todos[i] = todo
			break
		}
	}
	s.lastErr = ""
}

// Remove deletes the matching record by id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			break
		}
	}
	s.lastErr = ""
}

// Fail records a failed mutation. The todo collection is left untouched so
// the user can retry from the prior state.
func (s *Store) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

// LastError returns the message of the last failed request, or "".
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Get returns a copy of the todo with the given id, if present.
func (s *Store) Get(id string) (models.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return models.Todo{}, false
}

// Visible returns a copy of the collection narrowed to the given filter,
// preserving the server's creation-time ordering.
func (s *Store) Visible(f Filter) []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		switch f {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// SortByPriority reorders a projection high > medium > low, keeping the
// creation ordering within each rank. The stored collection is not touched.
func SortByPriority(todos []models.Todo) []models.Todo {
	out := append([]models.Todo(nil), todos...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}
