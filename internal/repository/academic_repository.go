package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/edupulse/internal/domain"
)

// AcademicRepository reads semester results and attendance.
type AcademicRepository interface {
	ResultsByUser(ctx context.Context, userID string) ([]*domain.AcademicResult, error)
	AttendanceByUser(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error)
	AverageAttendance(ctx context.Context) (float64, error)
}

type academicRepository struct {
	pool *pgxpool.Pool
}

// NewAcademicRepository returns a Postgres-backed implementation.
func NewAcademicRepository(pool *pgxpool.Pool) AcademicRepository {
	return &academicRepository{pool: pool}
}

func (r *academicRepository) ResultsByUser(ctx context.Context, userID string) ([]*domain.AcademicResult, error) {
	const query = `
        SELECT id, user_id, semester, sgpa, subjects
        FROM academic_results WHERE user_id=$1 ORDER BY semester`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*domain.AcademicResult
	for rows.Next() {
		var result domain.AcademicResult
		if err := rows.Scan(&result.ID, &result.UserID, &result.Semester, &result.SGPA, &result.Subjects); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func (r *academicRepository) AttendanceByUser(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	const query = `
        SELECT user_id, subject_code, subject_name, total_lectures, lectures_attended, percentage, department
        FROM attendance WHERE user_id=$1 ORDER BY subject_code`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.AttendanceRecord
	for rows.Next() {
		var rec domain.AttendanceRecord
		if err := rows.Scan(&rec.UserID, &rec.SubjectCode, &rec.SubjectName, &rec.TotalLectures, &rec.LecturesAttended, &rec.Percentage, &rec.Department); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *academicRepository) AverageAttendance(ctx context.Context) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(AVG(percentage), 0) FROM attendance`).Scan(&avg)
	return avg, err
}
