package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edupulse/internal/domain"
)

// ActivityLogRepository appends and reads the audit trail.
type ActivityLogRepository interface {
	Insert(ctx context.Context, log *domain.ActivityLog) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ActivityLog, error)
}

type activityLogRepository struct {
	pool *pgxpool.Pool
}

// NewActivityLogRepository returns a Postgres-backed implementation.
func NewActivityLogRepository(pool *pgxpool.Pool) ActivityLogRepository {
	return &activityLogRepository{pool: pool}
}

func (r *activityLogRepository) Insert(ctx context.Context, log *domain.ActivityLog) error {
	const query = `
        INSERT INTO activity_logs (user_id, action, details, ip_address)
        VALUES ($1, $2, $3, $4)
        RETURNING id, timestamp`

	return r.pool.QueryRow(ctx, query,
		log.UserID,
		log.Action,
		log.Details,
		log.IPAddress,
	).Scan(&log.ID, &log.Timestamp)
}

func (r *activityLogRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	const query = `
        SELECT id, user_id, action, details, ip_address, timestamp
        FROM activity_logs ORDER BY timestamp DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.ActivityLog
	for rows.Next() {
		var log domain.ActivityLog
		if err := rows.Scan(&log.ID, &log.UserID, &log.Action, &log.Details, &log.IPAddress, &log.Timestamp); err != nil {
			return nil, err
		}
		logs = append(logs, &log)
	}
	return logs, rows.Err()
}
