package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/app/models"
)

// ReportRepository handles database operations for content reports
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// List retrieves a page of content reports with their reporters, optionally
// filtered by status. It returns the page and the total count.
func (r *ReportRepository) List(ctx context.Context, status *models.ReportStatus, offset uint64, limit int) ([]*models.ContentReport, int64, error) {
	baseWhere := ``
	args := []interface{}{}
	if status != nil {
		baseWhere = `WHERE cr.status = $1`
		args = append(args, *status)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM content_reports cr ` + baseWhere
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting content reports: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT cr.id, cr.reporter_id, cr.target_type, cr.target_id, cr.reason, cr.status, cr.created_at,
		       p.id, p.username, p.display_name
		FROM content_reports cr
		JOIN profiles p ON p.id = cr.reporter_id
		%s
		ORDER BY cr.created_at DESC
		OFFSET $%d LIMIT $%d
	`, baseWhere, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reports []*models.ContentReport
	for rows.Next() {
		var report models.ContentReport
		var reporter models.Profile
		if err := rows.Scan(
			&report.ID,
			&report.ReporterID,
			&report.TargetType,
			&report.TargetID,
			&report.Reason,
			&report.Status,
			&report.CreatedAt,
			&reporter.ID,
			&reporter.Username,
			&reporter.DisplayName,
		); err != nil {
			return nil, 0, err
		}
		report.Reporter = &reporter
		reports = append(reports, &report)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}
