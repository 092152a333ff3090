package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"tube/config"
	"tube/internal/domain/lifecycle"
	"tube/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the user store connection (primary plus optional read replicas)
// and ties ping, pool sampling and close to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open user store")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 NewGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to unwrap user store pool")
	}

	monitor := newPoolMonitor(params.Logger, poolWaitWarnAfter)
	sampleCtx, stopSampling := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "user store is unreachable")
			}

			go monitor.run(sampleCtx, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolMonitor reports connection pool contention between two samples.
type poolMonitor struct {
	logger    *slog.Logger
	warnAfter time.Duration
	last      sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, warnAfter time.Duration) *poolMonitor {
	return &poolMonitor{logger: logger, warnAfter: warnAfter}
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	if m.logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.last = sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx, sqlDB.Stats())
		}
	}
}

// observe logs when callers waited for a connection since the last sample.
func (m *poolMonitor) observe(ctx context.Context, cur sql.DBStats) {
	waits := cur.WaitCount - m.last.WaitCount
	waited := cur.WaitDuration - m.last.WaitDuration
	m.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "User store pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
