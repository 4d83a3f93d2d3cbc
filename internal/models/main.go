// Package models defines the core data structures for users and todos.
package models

import (
	"time"
)

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Username is the display name chosen at registration.
	Username string `json:"username"`
	// Email is the unique login email.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash []byte `json:"-"`
	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// Todo is a single task record owned by exactly one user.
type Todo struct {
	// ID is the unique identifier for the todo.
	ID string `json:"id"`
	// OwnerID references the owning user. Set at creation, never reassigned.
	OwnerID string `json:"-"`
	// Title is the short task text. Always non-empty.
	Title string `json:"title"`
	// Description holds optional longer notes.
	Description string `json:"description"`
	// Completed marks the task done.
	Completed bool `json:"completed"`
	// Priority is one of low, medium, high.
	Priority Priority `json:"priority"`
	// DueDate is an optional deadline.
	DueDate *time.Time `json:"dueDate"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is bumped on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Priority defines the set of valid todo priority levels.
type Priority string

const (
	// PriorityLow is the lowest urgency level.
	PriorityLow Priority = "low"
	// PriorityMedium is the default urgency level.
	PriorityMedium Priority = "medium"
	// PriorityHigh is the highest urgency level.
	PriorityHigh Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank maps a priority to a sortable weight, high > medium > low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}
