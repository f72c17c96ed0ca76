package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/app/models"
)

// MuteRepository handles database operations for moderation mutes
type MuteRepository struct {
	db *pgxpool.Pool
}

// NewMuteRepository creates a new mute repository
func NewMuteRepository(db *pgxpool.Pool) *MuteRepository {
	return &MuteRepository{
		db: db,
	}
}

// GetActive retrieves all currently active mutes with the muted and muting
// profiles. A mute with no expiry, or one expiring in the future, is active.
func (r *MuteRepository) GetActive(ctx context.Context) ([]*models.Mute, error) {
	query := `
		SELECT m.id, m.profile_id, m.muted_by, m.reason, m.created_at, m.expires_at,
		       p.id, p.username, p.display_name,
		       mb.id, mb.username, mb.display_name
		FROM mutes m
		JOIN profiles p ON p.id = m.profile_id
		JOIN profiles mb ON mb.id = m.muted_by
		WHERE m.expires_at IS NULL OR m.expires_at > NOW()
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mutes []*models.Mute
	for rows.Next() {
		var mute models.Mute
		var profile models.Profile
		var mutedBy models.Profile
		if err := rows.Scan(
			&mute.ID,
			&mute.ProfileID,
			&mute.MutedByID,
			&mute.Reason,
			&mute.CreatedAt,
			&mute.ExpiresAt,
			&profile.ID,
			&profile.Username,
			&profile.DisplayName,
			&mutedBy.ID,
			&mutedBy.Username,
			&mutedBy.DisplayName,
		); err != nil {
			return nil, err
		}
		mute.Profile = &profile
		mute.MutedBy = &mutedBy
		mutes = append(mutes, &mute)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mutes, nil
}
