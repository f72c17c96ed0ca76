package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/app/models"
)

// StatsRepository runs the count-only queries behind the community summary
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

func (r *StatsRepository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error running count query: %w", err)
	}
	return total, nil
}

// CountMembers counts active member profiles
func (r *StatsRepository) CountMembers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM profiles WHERE is_active = TRUE`)
}

// CountActiveCollabs counts collabs in the active state
func (r *StatsRepository) CountActiveCollabs(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM collabs WHERE status = $1`, models.CollabActive)
}

// CountPendingReports counts open content reports
func (r *StatsRepository) CountPendingReports(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM content_reports WHERE status = $1`, models.ReportOpen)
}

// CountActiveMutes counts mutes that have not expired
func (r *StatsRepository) CountActiveMutes(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM mutes WHERE expires_at IS NULL OR expires_at > NOW()`)
}
