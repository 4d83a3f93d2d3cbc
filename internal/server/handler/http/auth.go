package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/youssef1892004/To-Do-List-App/internal/middleware"
	"github.com/youssef1892004/To-Do-List-App/internal/models"
)

// AuthService defines the interface for account and session operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new account from the given credentials.
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	// Login verifies the email/password pair and returns the matching user.
	Login(ctx context.Context, email, password string) (*models.User, error)
	// UserByID fetches the user a validated session belongs to.
	UserByID(ctx context.Context, id string) (*models.User, error)
	// IssueToken signs a session token for the given user id.
	IssueToken(userID string) (string, error)
	// TokenTTL reports the session token lifetime.
	TokenTTL() time.Duration
}

// AuthHandler handles HTTP requests for registration, login, logout, and the
// session profile check.
type AuthHandler struct {
	// AuthService performs the underlying account operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// setSession issues a token for the user and attaches it as an HttpOnly
// cookie on the response.
func (h *AuthHandler) setSession(w http.ResponseWriter, userID string) error {
	token, err := h.AuthService.IssueToken(userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.AuthService.TokenTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Register handles POST /api/auth/register.
// It creates the account, starts a session, and returns the user as JSON.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.setSession(w, user.ID); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
// On success it starts a session and returns the user as JSON.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.setSession(w, user.ID); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeMessage(w, http.StatusOK, "Logged out")
}

// Profile handles GET /api/auth/profile, returning the user the session
// belongs to. Requires the session middleware.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	user, err := h.AuthService.UserByID(r.Context(), userID)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
