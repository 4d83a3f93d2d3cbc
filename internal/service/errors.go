package service

import "errors"

// Sentinel errors returned by the services. HTTP handlers translate these
// into status codes; anything else is treated as a store failure.
var (
	// ErrNotFound means no record with the requested id exists.
	ErrNotFound = errors.New("todo not found")
	// ErrForbidden means the record exists but belongs to another user.
	ErrForbidden = errors.New("not authorized")
	// ErrTitleRequired means the title was empty or whitespace-only.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidPriority means the priority was not low, medium, or high.
	ErrInvalidPriority = errors.New("priority must be low, medium, or high")
	// ErrEmailTaken means a user with the email already exists.
	ErrEmailTaken = errors.New("email already in use")
	// ErrUsernameTaken means a user with the username already exists.
	ErrUsernameTaken = errors.New("username already in use")
	// ErrInvalidCredentials means the email/password pair did not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrFieldsRequired means a registration or login field was missing.
	ErrFieldsRequired = errors.New("all fields are required")
)
