package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/app/models"
)

// CollabRepository handles database operations for collab postings
type CollabRepository struct {
	db *pgxpool.Pool
}

// NewCollabRepository creates a new collab repository
func NewCollabRepository(db *pgxpool.Pool) *CollabRepository {
	return &CollabRepository{
		db: db,
	}
}

// List retrieves a page of collabs with their owners, optionally filtered
// by status. It returns the page and the total count.
func (r *CollabRepository) List(ctx context.Context, status *models.CollabStatus, offset uint64, limit int) ([]*models.Collab, int64, error) {
	baseWhere := ``
	args := []interface{}{}
	if status != nil {
		baseWhere = `WHERE c.status = $1`
		args = append(args, *status)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM collabs c ` + baseWhere
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting collabs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.owner_id, c.title, c.description, c.status, c.created_at,
		       p.id, p.username, p.display_name
		FROM collabs c
		JOIN profiles p ON p.id = c.owner_id
		%s
		ORDER BY c.created_at DESC
		OFFSET $%d LIMIT $%d
	`, baseWhere, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var collabs []*models.Collab
	for rows.Next() {
		var collab models.Collab
		var owner models.Profile
		if err := rows.Scan(
			&collab.ID,
			&collab.OwnerID,
			&collab.Title,
			&collab.Description,
			&collab.Status,
			&collab.CreatedAt,
			&owner.ID,
			&owner.Username,
			&owner.DisplayName,
		); err != nil {
			return nil, 0, err
		}
		collab.Owner = &owner
		collabs = append(collabs, &collab)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return collabs, total, nil
}
