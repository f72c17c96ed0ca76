package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/helpers"
)

// AvailabilityRepository handles database operations for availability records
type AvailabilityRepository struct {
	db *pgxpool.Pool
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{
		db: db,
	}
}

// Create creates a new availability record
func (r *AvailabilityRepository) Create(ctx context.Context, record *models.AvailabilityRecord) error {
	query := `
		INSERT INTO availability_records (profile_id, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.ProfileID, record.StartDate, record.EndDate, helpers.GetNullString(record.Notes),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating availability record: %w", err)
	}

	return nil
}

// GetAll retrieves all availability records with their owning profiles
func (r *AvailabilityRepository) GetAll(ctx context.Context) ([]*models.AvailabilityRecord, error) {
	query := `
		SELECT a.id, a.profile_id, a.start_date, a.end_date, a.notes, a.created_at,
		       p.id, p.username, p.display_name
		FROM availability_records a
		JOIN profiles p ON p.id = a.profile_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AvailabilityRecord
	for rows.Next() {
		var record models.AvailabilityRecord
		var profile models.Profile
		if err := rows.Scan(
			&record.ID,
			&record.ProfileID,
			&record.StartDate,
			&record.EndDate,
			&record.Notes,
			&record.CreatedAt,
			&profile.ID,
			&profile.Username,
			&profile.DisplayName,
		); err != nil {
			return nil, err
		}
		record.Profile = &profile
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByID retrieves an availability record by ID
func (r *AvailabilityRepository) GetByID(ctx context.Context, id int64) (*models.AvailabilityRecord, error) {
	query := `
		SELECT id, profile_id, start_date, end_date, notes, created_at
		FROM availability_records
		WHERE id = $1
	`

	var record models.AvailabilityRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.ProfileID,
		&record.StartDate,
		&record.EndDate,
		&record.Notes,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("error retrieving availability record: %w", err)
	}

	return &record, nil
}

// Delete deletes an availability record by ID
func (r *AvailabilityRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM availability_records WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting availability record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAvailabilityNotFound
	}

	return nil
}
