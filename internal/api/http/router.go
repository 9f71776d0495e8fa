package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/bloodbank-service/internal/api/http/handlers"
	"github.com/spec-kit/bloodbank-service/internal/auth"
	"github.com/spec-kit/bloodbank-service/internal/domain"
	"github.com/spec-kit/bloodbank-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. All /staff routes validate the
// bearer token first and check the admin role second, in that order.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	app.Post("/login", cfg.Auth.Login)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	staff.Get("/", cfg.Staff.List)
	staff.Post("/", cfg.Staff.Create)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Put("/:id", cfg.Staff.Update)
	staff.Delete("/:id", cfg.Staff.Delete)
}
