package http

import (
	"net/http"

	"github.com/youssef1892004/To-Do-List-App/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs and returns an HTTP handler that serves the todo API.
// It applies CORS for the configured browser origin, JSON content-type
// enforcement, and request logging, and mounts the auth and todo endpoints
// under /api.
//
// Routes:
//
//	POST /api/auth/register  → authHandler.Register
//	POST /api/auth/login     → authHandler.Login
//	POST /api/auth/logout    → authHandler.Logout
//	GET  /api/auth/profile   → authHandler.Profile  (session required)
//	GET  /api/todos          → todoHandler.List     (session required)
//	POST /api/todos          → todoHandler.Create   (session required)
//	GET  /api/todos/{id}     → todoHandler.Get      (session required)
//	PUT  /api/todos/{id}     → todoHandler.Update   (session required)
//	DELETE /api/todos/{id}   → todoHandler.Delete   (session required)
func NewRouter(
	authHandler *AuthHandler,
	todoHandler *TodoHandler,
	validator middleware.TokenValidator,
	allowedOrigin string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Allow credentialed cross-origin calls from the configured frontend origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Protected group: requires a valid session cookie
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(validator))

			r.Get("/auth/profile", authHandler.Profile)

			r.Route("/todos", func(r chi.Router) {
				r.Get("/", todoHandler.List)
				r.Post("/", todoHandler.Create)
				r.Get("/{id}", todoHandler.Get)
				r.Put("/{id}", todoHandler.Update)
				r.Delete("/{id}", todoHandler.Delete)
			})
		})
	})

	return r
}
