package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edupulse/internal/auth"
	"github.com/spec-kit/edupulse/internal/service"
	apperrors "github.com/spec-kit/edupulse/pkg/util"
)

// AcademicHandler exposes student academic data, placements and alerts.
type AcademicHandler struct {
	academics *service.AcademicService
}

// NewAcademicHandler constructs handler.
func NewAcademicHandler(academics *service.AcademicService) *AcademicHandler {
	return &AcademicHandler{academics: academics}
}

// Results handles GET /student/academic-results.
func (h *AcademicHandler) Results(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	results, err := h.academics.ResultsFor(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// Attendance handles GET /student/attendance.
func (h *AcademicHandler) Attendance(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	records, err := h.academics.AttendanceFor(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// Drives handles GET /placement/drives.
func (h *AcademicHandler) Drives(c *fiber.Ctx) error {
	drives, err := h.academics.Drives(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(drives)
}

// PlacedCompanies handles GET /placement/companies.
func (h *AcademicHandler) PlacedCompanies(c *fiber.Ctx) error {
	companies, err := h.academics.PlacedCompanies(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(companies)
}

// Alerts handles GET /alerts.
func (h *AcademicHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.academics.Alerts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(alerts)
}
