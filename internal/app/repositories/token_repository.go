package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/pkg/apperrors"
)

// RefreshToken is a stored refresh token row
type RefreshToken struct {
	Token     string    `db:"token"`
	ProfileID int64     `db:"profile_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// TokenRepository handles database operations for refresh tokens
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
	}
}

// Store persists a refresh token
func (r *TokenRepository) Store(ctx context.Context, token string, profileID int64, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (token, profile_id, expires_at)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, token, profileID, expiresAt); err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}

	return nil
}

// Get retrieves a refresh token
func (r *TokenRepository) Get(ctx context.Context, token string) (*RefreshToken, error) {
	query := `
		SELECT token, profile_id, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var stored RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&stored.Token,
		&stored.ProfileID,
		&stored.ExpiresAt,
		&stored.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	return &stored, nil
}

// Delete removes a refresh token (used on rotation and logout)
func (r *TokenRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM refresh_tokens WHERE token = $1`

	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}

	return nil
}

// DeleteExpired removes all refresh tokens past their expiry
func (r *TokenRepository) DeleteExpired(ctx context.Context) error {
	query := `DELETE FROM refresh_tokens WHERE expires_at <= NOW()`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("error deleting expired refresh tokens: %w", err)
	}

	return nil
}
