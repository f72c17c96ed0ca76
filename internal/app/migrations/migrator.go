// Package migrations applies versioned SQL files against the database.
// Applied versions are tracked in a schema_migrations table so a file
// runs at most once.
package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emin/backlot/internal/pkg/logger"
)

// Migrator applies pending SQL migrations from a directory.
type Migrator struct {
	db *pgxpool.Pool
}

func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{db: db}
}

// Apply runs every .sql file in dir that has not been applied yet, in
// lexical order. The version of a file is its name up to the first
// underscore, e.g. "001_init.sql" has version "001".
func (m *Migrator) Apply(ctx context.Context, dir string) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := m.applyFile(ctx, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}

	return nil
}

func (m *Migrator) applyFile(ctx context.Context, path string) error {
	name := filepath.Base(path)
	version := strings.SplitN(name, "_", 2)[0]

	done, err := m.alreadyApplied(ctx, version)
	if err != nil {
		return err
	}
	if done {
		logger.Debug().Str("file", name).Msg("Migration already applied, skipping")
		return nil
	}

	sqlText, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	// The statements and the version record commit together, so a partial
	// failure leaves the file pending.
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(sqlText)); err != nil {
		return fmt.Errorf("failed to execute statements: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, filename) VALUES ($1, $2)`, version, name); err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logger.Info().Str("file", name).Msg("Migration applied")
	return nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			filename VARCHAR(255) NOT NULL DEFAULT '',
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) alreadyApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := m.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}
