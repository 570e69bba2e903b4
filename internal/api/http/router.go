package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edupulse/internal/api/http/handlers"
	"github.com/spec-kit/edupulse/internal/auth"
	"github.com/spec-kit/edupulse/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	Academic       *handlers.AcademicHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/token", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/users/me", auth.RequireAuthenticated(), cfg.Auth.Me)

	adminGroup := protected.Group("/admin")
	adminGroup.Get("/users", auth.RequireRole(domain.RoleAdmin, domain.RoleFaculty), cfg.Admin.ListUsers)
	adminGroup.Post("/users", auth.RequireRole(domain.RoleAdmin), cfg.Admin.CreateUser)
	adminGroup.Delete("/users/:id", auth.RequireRole(domain.RoleAdmin), cfg.Admin.DeleteUser)
	adminGroup.Get("/logs", auth.RequireRole(domain.RoleAdmin), cfg.Admin.Logs)
	adminGroup.Get("/stats", auth.RequireRole(domain.RoleAdmin), cfg.Admin.Stats)
	adminGroup.Get("/report", auth.RequireRole(domain.RoleAdmin, domain.RoleFaculty), cfg.Admin.Report)
	adminGroup.Get("/analytics", auth.RequireRole(domain.RoleAdmin), cfg.Admin.Analytics)

	studentGroup := protected.Group("/student", auth.RequireAuthenticated())
	studentGroup.Get("/academic-results", cfg.Academic.Results)
	studentGroup.Get("/attendance", cfg.Academic.Attendance)

	placementGroup := protected.Group("/placement", auth.RequireAuthenticated())
	placementGroup.Get("/drives", cfg.Academic.Drives)
	placementGroup.Get("/companies", cfg.Academic.PlacedCompanies)

	protected.Get("/alerts", auth.RequireAuthenticated(), cfg.Academic.Alerts)
}
