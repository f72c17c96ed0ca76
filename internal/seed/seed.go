// Package seed creates the default data a fresh installation needs.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/emin/backlot/internal/app/models"
	appRepos "github.com/emin/backlot/internal/app/repositories"
	"github.com/emin/backlot/internal/pkg/apperrors"
	"github.com/emin/backlot/internal/pkg/auth"
	"github.com/emin/backlot/internal/config"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@backlot.app"
)

// CreateDefaultData creates the default admin profile and a couple of sample
// productions if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	profileRepo := appRepos.NewProfileRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin profile --- //
	_, err := profileRepo.GetByUsername(ctx, defaultAdminUsername)
	if errors.Is(err, apperrors.ErrProfileNotFound) {
		password := config.GetEnv("ADMIN_DEFAULT_PASSWORD", "backlot-admin")
		hashed, hashErr := auth.HashPassword(password)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, hashErr)
		} else {
			admin := &appModels.Profile{
				Username:    defaultAdminUsername,
				Email:       defaultAdminEmail,
				Password:    hashed,
				DisplayName: "Backlot Admin",
				Role:        appModels.RoleAdmin,
				IsActive:    true,
			}
			if createErr := profileRepo.Create(ctx, admin); createErr != nil {
				lgr.Error().Err(createErr).Msg("Error creating default admin profile")
				finalErr = errors.Join(finalErr, createErr)
			} else {
				lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin profile created")
			}
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin profile")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Sample productions --- //
	// Credit submissions need a production to point at
	productions := []struct {
		title string
		year  int
	}{
		{"Midnight Reel", 2023},
		{"Harbor Lights", 2024},
	}
	for _, production := range productions {
		query := `
			INSERT INTO productions (title, year)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM productions WHERE title = $1 AND year = $2)
		`
		if _, err := dbPool.Exec(ctx, query, production.title, production.year); err != nil {
			lgr.Error().Err(err).Str("title", production.title).Msg("Error creating sample production")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
