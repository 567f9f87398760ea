package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/admin-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Analytics      *handlers.AnalyticsHandler
	State          *handlers.StateHandler
	AuthMiddleware *auth.AuthMiddleware
	// RequireSession guards /api with the bearer session.
	RequireSession bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/session", cfg.AuthMiddleware.Handle, cfg.Auth.Session)

	api := app.Group("/api", cfg.AuthMiddleware.Optional(cfg.RequireSession))
	api.Get("/state", cfg.State.Get)

	api.Get("/users", cfg.Users.List)
	api.Post("/users/fetch", cfg.Users.Fetch)
	api.Delete("/users/:id", cfg.Users.Delete)

	api.Get("/analytics", cfg.Analytics.Get)
	api.Post("/analytics/fetch", cfg.Analytics.Fetch)
}
