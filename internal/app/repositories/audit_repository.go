package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/helpers"
)

// AuditRepository handles database operations for the moderation audit trail
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{
		db: db,
	}
}

// Create records a moderation event. The event ID is assigned here.
func (r *AuditRepository) Create(ctx context.Context, event *models.ModerationEvent) error {
	event.ID = uuid.New()

	query := `
		INSERT INTO moderation_events (id, actor_id, action, target_type, target_id, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.ID, event.ActorID, event.Action, event.TargetType, event.TargetID,
		helpers.GetNullString(event.Note),
	).Scan(&event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording moderation event: %w", err)
	}

	return nil
}

// ListRecent retrieves the most recent moderation events with their actors
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*models.ModerationEvent, error) {
	query := `
		SELECT e.id, e.actor_id, e.action, e.target_type, e.target_id, e.note, e.created_at,
		       p.id, p.username, p.display_name
		FROM moderation_events e
		JOIN profiles p ON p.id = e.actor_id
		ORDER BY e.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.ModerationEvent
	for rows.Next() {
		var event models.ModerationEvent
		var actor models.Profile
		if err := rows.Scan(
			&event.ID,
			&event.ActorID,
			&event.Action,
			&event.TargetType,
			&event.TargetID,
			&event.Note,
			&event.CreatedAt,
			&actor.ID,
			&actor.Username,
			&actor.DisplayName,
		); err != nil {
			return nil, err
		}
		event.Actor = &actor
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
