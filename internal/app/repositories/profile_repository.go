package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/app/models"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/dberrors"
)

// ProfileRepository handles database operations for member profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

const profileColumns = `id, username, email, password, display_name, role, is_active, created_at, updated_at, last_login_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.Username,
		&profile.Email,
		&profile.Password,
		&profile.DisplayName,
		&profile.Role,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (username, email, password, display_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		profile.Username, profile.Email, profile.Password,
		profile.DisplayName, profile.Role, profile.IsActive,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// GetByUsername retrieves a profile by username
func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// List retrieves a page of profiles, optionally filtered by a search term
// matching username or display name. It returns the page and the total count.
func (r *ProfileRepository) List(ctx context.Context, search string, offset uint64, limit int) ([]*models.Profile, int64, error) {
	baseWhere := ``
	args := []interface{}{}
	if search != "" {
		baseWhere = `WHERE username ILIKE $1 OR display_name ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM profiles ` + baseWhere
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting profiles: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+profileColumns+` FROM profiles %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		baseWhere, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// UpdateLastLogin stamps the last successful login time
func (r *ProfileRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	query := `UPDATE profiles SET last_login_at = $1 WHERE id = $2`

	if _, err := r.db.Exec(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}

	return nil
}
