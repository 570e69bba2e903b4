package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edupulse/internal/api/dto"
	"github.com/spec-kit/edupulse/internal/auth"
	"github.com/spec-kit/edupulse/internal/domain"
	"github.com/spec-kit/edupulse/internal/service"
	apperrors "github.com/spec-kit/edupulse/pkg/util"
)

const recentLogsLimit = 100

// AdminHandler exposes user management and dashboard endpoints.
type AdminHandler struct {
	users   *service.UserService
	reports *service.ReportService
	audit   *service.AuditService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(users *service.UserService, reports *service.ReportService, audit *service.AuditService) *AdminHandler {
	return &AdminHandler{users: users, reports: reports, audit: audit}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	caller, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	users, err := h.users.List(c.Context(), caller, c.Query("department"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(users))
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	caller, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	ctx := service.WithClientIP(c.Context(), c.IP())
	user, err := h.users.Create(ctx, caller, service.CreateUserInput{
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		Department: req.Department,
		RollNumber: req.RollNumber,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	caller, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	ctx := service.WithClientIP(c.Context(), c.IP())
	if err := h.users.Delete(ctx, caller, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// Logs handles GET /admin/logs.
func (h *AdminHandler) Logs(c *fiber.Ctx) error {
	logs, err := h.audit.RecentLogs(c.Context(), recentLogsLimit)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewActivityLogResponses(logs))
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.reports.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Report handles GET /admin/report.
func (h *AdminHandler) Report(c *fiber.Ctx) error {
	report, err := h.reports.Report(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// Analytics handles GET /admin/analytics.
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	analytics, err := h.reports.Analytics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(analytics)
}
