package postgres

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"

	"clubrelay/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every pending migration and logs what ran.
func Migrate(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	provider, err := newMigrationProvider(sqlDB)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	for _, r := range results {
		logger.Info("Applied migration",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	if len(results) == 0 {
		logger.Info("Schema is up to date")
	}

	return nil
}

// MigrationStatus lists each known migration with whether it is applied.
func MigrationStatus(ctx context.Context, sqlDB *sql.DB) ([]*goose.MigrationStatus, error) {
	provider, err := newMigrationProvider(sqlDB)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migration status")
	}

	return statuses, nil
}

func newMigrationProvider(sqlDB *sql.DB) (*goose.Provider, error) {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, sub)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration provider")
	}

	return provider, nil
}
