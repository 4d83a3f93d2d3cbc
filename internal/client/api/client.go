// Package api implements the HTTP+JSON client for the todo service. The
// session cookie issued at login lives in the client's cookie jar, so every
// later call is authenticated transparently.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/youssef1892004/To-Do-List-App/internal/models"
)

// Client calls the todo service REST API.
type Client struct {
	http    *http.Client
	baseURL string
}

// New returns a Client for the given base URL with its own cookie jar.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		http:    &http.Client{Jar: jar},
		baseURL: baseURL,
	}, nil
}

// apiError is the {"message": ...} body the server sends on failure.
type apiError struct {
	Message string `json:"message"`
}

// do sends one JSON request and decodes the response into out (unless nil).
// Non-2xx responses are returned as errors carrying the server's message.
func (c *Client) do(method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e apiError
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Message == "" {
			return fmt.Errorf("server returned %d", resp.StatusCode)
		}
		return fmt.Errorf("%s", e.Message)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates an account and starts a session.
func (c *Client) Register(username, email, password string) (*models.User, error) {
	var user models.User
	err := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login starts a session for an existing account.
func (c *Client) Login(email, password string) (*models.User, error) {
	var user models.User
	err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the session.
func (c *Client) Logout() error {
	return c.do(http.MethodPost, "/api/auth/logout", nil, nil)
}

// Profile returns the user the current session belongs to.
func (c *Client) Profile() (*models.User, error) {
	var user models.User
	if err := c.do(http.MethodGet, "/api/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTodos fetches the caller's todos, newest created first.
func (c *Client) ListTodos() ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(http.MethodGet, "/api/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetTodo fetches a single todo by id.
func (c *Client) GetTodo(id string) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(http.MethodGet, "/api/todos/"+id, nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// TodoInput is the creation payload. Empty optional fields are omitted.
type TodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// CreateTodo creates a new todo and returns the server's record.
func (c *Client) CreateTodo(in TodoInput) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(http.MethodPost, "/api/todos", in, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// TodoUpdate is a partial update payload. Nil fields are omitted from the
// request and stay unchanged on the server.
type TodoUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// UpdateTodo applies a partial update and returns the updated record.
func (c *Client) UpdateTodo(id string, in TodoUpdate) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(http.MethodPut, "/api/todos/"+id, in, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes a todo by id.
func (c *Client) DeleteTodo(id string) error {
	return c.do(http.MethodDelete, "/api/todos/"+id, nil, nil)
}
