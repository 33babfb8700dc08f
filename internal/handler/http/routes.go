package http

import (
	"time"

	"github.com/avkhamov/userhub/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// Init builds the route table.
//
// The gate chain on every protected route is strict and short-circuiting:
// authentication runs first, the role check second, the business handler
// last. Admin-only routes compose auth → requireRole(admin).
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	allowedOrigins := h.cfg.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		if h.cfg.AuthRateLimit > 0 {
			r.Use(httprate.LimitByIP(h.cfg.AuthRateLimit, time.Minute))
		}
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Post("/api/auth/logout", h.logout)

		r.Put("/api/users/profile", h.updateProfile)
		r.Put("/api/users/change-password", h.changePassword)

		// admin console
		r.Group(func(ar chi.Router) {
			ar.Use(h.requireRole(models.RoleAdmin))

			ar.Get("/api/users", h.listUsers)
			ar.Patch("/api/users/{id}/status", h.updateStatus)
			ar.Patch("/api/users/{id}/role", h.updateRole)
		})
	})

	return router
}
