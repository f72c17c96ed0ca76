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
	"github.com/emin/backlot/internal/pkg/helpers"
)

// CreditRepository handles database operations for credit submissions
type CreditRepository struct {
	db *pgxpool.Pool
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(db *pgxpool.Pool) *CreditRepository {
	return &CreditRepository{
		db: db,
	}
}

// Create creates a new credit submission in the pending state
func (r *CreditRepository) Create(ctx context.Context, credit *models.CreditSubmission) error {
	query := `
		INSERT INTO credit_submissions (submitter_id, production_id, position, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		credit.SubmitterID, credit.ProductionID, credit.Position, models.CreditPending,
	).Scan(&credit.ID, &credit.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating credit submission: %w", err)
	}
	credit.Status = models.CreditPending

	return nil
}

// GetPending retrieves all pending credit submissions with submitter and production
func (r *CreditRepository) GetPending(ctx context.Context) ([]*models.CreditSubmission, error) {
	query := `
		SELECT c.id, c.submitter_id, c.production_id, c.position, c.status,
		       c.rejection_note, c.created_at, c.reviewed_at, c.reviewed_by,
		       p.id, p.username, p.display_name,
		       pr.id, pr.title, pr.year
		FROM credit_submissions c
		JOIN profiles p ON p.id = c.submitter_id
		JOIN productions pr ON pr.id = c.production_id
		WHERE c.status = $1
	`

	rows, err := r.db.Query(ctx, query, models.CreditPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credits []*models.CreditSubmission
	for rows.Next() {
		var credit models.CreditSubmission
		var submitter models.Profile
		var production models.Production
		if err := rows.Scan(
			&credit.ID,
			&credit.SubmitterID,
			&credit.ProductionID,
			&credit.Position,
			&credit.Status,
			&credit.RejectionNote,
			&credit.CreatedAt,
			&credit.ReviewedAt,
			&credit.ReviewedByID,
			&submitter.ID,
			&submitter.Username,
			&submitter.DisplayName,
			&production.ID,
			&production.Title,
			&production.Year,
		); err != nil {
			return nil, err
		}
		credit.Submitter = &submitter
		credit.Production = &production
		credits = append(credits, &credit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return credits, nil
}

// GetByID retrieves a credit submission by ID
func (r *CreditRepository) GetByID(ctx context.Context, id int64) (*models.CreditSubmission, error) {
	query := `
		SELECT id, submitter_id, production_id, position, status,
		       rejection_note, created_at, reviewed_at, reviewed_by
		FROM credit_submissions
		WHERE id = $1
	`

	var credit models.CreditSubmission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&credit.ID,
		&credit.SubmitterID,
		&credit.ProductionID,
		&credit.Position,
		&credit.Status,
		&credit.RejectionNote,
		&credit.CreatedAt,
		&credit.ReviewedAt,
		&credit.ReviewedByID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCreditNotFound
		}
		return nil, fmt.Errorf("error retrieving credit submission: %w", err)
	}

	return &credit, nil
}

// SetReviewed moves a pending submission to its final status. The WHERE clause
// only matches pending rows, so a submission can be reviewed exactly once.
func (r *CreditRepository) SetReviewed(ctx context.Context, id int64, status models.CreditStatus, note *string, reviewerID int64) error {
	query := `
		UPDATE credit_submissions
		SET status = $1, rejection_note = $2, reviewed_at = $3, reviewed_by = $4
		WHERE id = $5 AND status = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		status, helpers.GetNullString(note), time.Now(), reviewerID, id, models.CreditPending)
	if err != nil {
		return fmt.Errorf("error updating credit submission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the row is gone or it was already reviewed
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrCreditNotPending
	}

	return nil
}
