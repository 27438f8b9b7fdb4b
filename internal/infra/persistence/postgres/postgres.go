package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"curator/config"
	"curator/internal/domain/lifecycle"
	"curator/internal/errors"
	"curator/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the curator database, migrates the questionnaire schema when store.autoMigrate is set,
// and pings, samples and closes the pool with the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through txManager.Execute, so single statements need no implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	if params.Config.Store.AutoMigrate {
		if err := migrate(db, params.Logger); err != nil {
			return nil, err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	sampling, stopSampling := context.WithCancel(context.Background())
	monitor := &poolMonitor{logger: params.Logger, slowWait: poolSlowWait}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(sampling, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrate creates or alters the account, questionnaire, catalog, response and device tables.
func migrate(db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}
	logger.Info("PostgreSQL schema migrated", slog.Int("models", len(models)))

	return nil
}

// poolMonitor reports connection waits between two samples of sql.DBStats.
type poolMonitor struct {
	logger   *slog.Logger
	slowWait time.Duration
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe logs nothing when no caller waited for a connection, debug for short waits
// and warn once the added wait time reaches slowWait.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= m.slowWait {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "PostgreSQL pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
