package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/schedule-manager/internal/api/http/handlers"
	"github.com/spec-kit/schedule-manager/internal/auth"
	"github.com/spec-kit/schedule-manager/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Home)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	events := app.Group("/event", cfg.AuthMiddleware.Handle)
	events.Get("/", cfg.Events.List)
	events.Post("/", cfg.Events.Create)
	events.Get("/:id", cfg.Events.Get)
	events.Patch("/:id", cfg.Events.Update)
	events.Delete("/:id", cfg.Events.Delete)
}
