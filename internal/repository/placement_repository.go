package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edupulse/internal/domain"
)

// PlacementRepository reads placement drives and outcomes.
type PlacementRepository interface {
	ListDrives(ctx context.Context) ([]*domain.PlacementDrive, error)
	ListPlacedCompanies(ctx context.Context) ([]*domain.PlacedCompany, error)
	TotalPlaced(ctx context.Context) (int64, error)
}

type placementRepository struct {
	pool *pgxpool.Pool
}

// NewPlacementRepository returns a Postgres-backed implementation.
func NewPlacementRepository(pool *pgxpool.Pool) PlacementRepository {
	return &placementRepository{pool: pool}
}

func (r *placementRepository) ListDrives(ctx context.Context) ([]*domain.PlacementDrive, error) {
	const query = `
        SELECT id, company_name, role, package, eligibility, deadline, status, job_description
        FROM placement_drives ORDER BY deadline`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []*domain.PlacementDrive
	for rows.Next() {
		var drive domain.PlacementDrive
		if err := rows.Scan(&drive.ID, &drive.CompanyName, &drive.Role, &drive.Package, &drive.Eligibility, &drive.Deadline, &drive.Status, &drive.JobDescription); err != nil {
			return nil, err
		}
		drives = append(drives, &drive)
	}
	return drives, rows.Err()
}

func (r *placementRepository) ListPlacedCompanies(ctx context.Context) ([]*domain.PlacedCompany, error) {
	const query = `
        SELECT company_name, total_placed, avg_package, location, description
        FROM placed_companies ORDER BY total_placed DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.PlacedCompany
	for rows.Next() {
		var company domain.PlacedCompany
		if err := rows.Scan(&company.CompanyName, &company.TotalPlaced, &company.AvgPackage, &company.Location, &company.Description); err != nil {
			return nil, err
		}
		companies = append(companies, &company)
	}
	return companies, rows.Err()
}

func (r *placementRepository) TotalPlaced(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_placed), 0) FROM placed_companies`).Scan(&total)
	return total, err
}
