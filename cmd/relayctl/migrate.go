package main

import (
	"context"
	"flag"
	"fmt"

	"clubrelay/config"
	logs "clubrelay/internal/infra/log"
	"clubrelay/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

type migrateFlags struct {
	cmd    *flag.FlagSet
	status *bool
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.cmd.Parse(argsAfterCommand()); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer sqlDB.Close()

	if !*flags.Migrate.status {
		return postgres.Migrate(ctx, sqlDB, logger)
	}

	statuses, err := postgres.MigrationStatus(ctx, sqlDB)
	if err != nil {
		return err
	}

	for _, s := range statuses {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = "applied " + s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%05d  %-40s %s\n", s.Source.Version, s.Source.Path, applied)
	}

	return nil
}
