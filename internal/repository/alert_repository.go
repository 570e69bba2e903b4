package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edupulse/internal/domain"
)

// AlertRepository reads campus-wide alerts.
type AlertRepository interface {
	ListRecent(ctx context.Context) ([]*domain.Alert, error)
}

type alertRepository struct {
	pool *pgxpool.Pool
}

// NewAlertRepository returns a Postgres-backed implementation.
func NewAlertRepository(pool *pgxpool.Pool) AlertRepository {
	return &alertRepository{pool: pool}
}

func (r *alertRepository) ListRecent(ctx context.Context) ([]*domain.Alert, error) {
	const query = `
        SELECT id, title, severity, description, timestamp
        FROM alerts ORDER BY timestamp DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []*domain.Alert
	for rows.Next() {
		var alert domain.Alert
		if err := rows.Scan(&alert.ID, &alert.Title, &alert.Severity, &alert.Description, &alert.Timestamp); err != nil {
			return nil, err
		}
		alerts = append(alerts, &alert)
	}
	return alerts, rows.Err()
}
