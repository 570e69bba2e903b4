package service

import (
	"context"

	"github.com/spec-kit/edupulse/internal/domain"
	"github.com/spec-kit/edupulse/internal/repository"
)

// AcademicService serves student-facing academic and campus data.
type AcademicService struct {
	academics  repository.AcademicRepository
	placements repository.PlacementRepository
	alerts     repository.AlertRepository
}

// NewAcademicService builds the service.
func NewAcademicService(academics repository.AcademicRepository, placements repository.PlacementRepository, alerts repository.AlertRepository) *AcademicService {
	return &AcademicService{academics: academics, placements: placements, alerts: alerts}
}

// ResultsFor returns the caller's semester results.
func (s *AcademicService) ResultsFor(ctx context.Context, userID string) ([]*domain.AcademicResult, error) {
	return s.academics.ResultsByUser(ctx, userID)
}

// AttendanceFor returns the caller's attendance records.
func (s *AcademicService) AttendanceFor(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	return s.academics.AttendanceByUser(ctx, userID)
}

// Drives lists all placement drives.
func (s *AcademicService) Drives(ctx context.Context) ([]*domain.PlacementDrive, error) {
	return s.placements.ListDrives(ctx)
}

// PlacedCompanies lists company placement outcomes.
func (s *AcademicService) PlacedCompanies(ctx context.Context) ([]*domain.PlacedCompany, error) {
	return s.placements.ListPlacedCompanies(ctx)
}

// Alerts lists campus alerts, newest first.
func (s *AcademicService) Alerts(ctx context.Context) ([]*domain.Alert, error) {
	return s.alerts.ListRecent(ctx)
}
