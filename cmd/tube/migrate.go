package main

import (
	"context"
	"log/slog"

	"tube/config"
	logs "tube/internal/infra/log"
	"tube/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  `Create or update the users and subscriptions tables and their indexes, then exit.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			db     *gorm.DB
			logger *slog.Logger
		)

		app := fx.New(
			fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
			fx.Provide(
				config.New,
				logs.New,
				postgres.New,
			),
			fx.Populate(&db, &logger),
		)
		if err := app.Err(); err != nil {
			return errors.Wrap(err, "failed to build migration dependencies")
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if err := app.Start(ctx); err != nil {
			return errors.Wrap(err, "failed to connect to the database")
		}
		defer func() {
			if err := app.Stop(context.Background()); err != nil {
				logger.Error("Failed to close database", slog.Any("error", err))
			}
		}()

		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}

		logger.Info("Schema migrated")

		return nil
	},
}
