package main

import (
	"context"
	"log/slog"
	"os"

	"tube/config"
	"tube/internal/delivery"
	"tube/internal/delivery/api"
	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/router/handler"
	"tube/internal/infra/auth"
	"tube/internal/infra/cache"
	logs "tube/internal/infra/log"
	"tube/internal/infra/persistence/postgres"
	"tube/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var serveFlags struct {
	AutoMigrate bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := []fx.Option{
			injectInfra(),
			injectRepo(),
			injectService(),
			injectUsecase(),
			injectMiddleware(),
			injectHandler(),
			injectDelivery(),
		}
		if serveFlags.AutoMigrate {
			opts = append(opts, fx.Invoke(registerMigration))
		}
		opts = append(opts, fx.Invoke(startServer))

		app := fx.New(opts...)
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()

		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveFlags.AutoMigrate, "auto-migrate", false, "Migrate the schema before serving")
}

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSubscriptionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerMigration runs the schema migration on start, before the
// deliveries begin accepting requests.
func registerMigration(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Migrating schema")

			return postgres.Migrate(ctx, db)
		},
	})
}

// startServer launches every delivery once the earlier start hooks,
// including the optional migration, have completed.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
