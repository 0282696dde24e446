package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"seedshare/config"
	"seedshare/internal/domain/lifecycle"
	"seedshare/internal/errors"
	"seedshare/internal/infra/metrics"
	"seedshare/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval  = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	poolStatsCollector = "seedshare"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary (and any replicas) through go-lib. On start it pings,
// migrates when configured and begins watching pool waits; on stop it closes
// the pool.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes use TransactionManager; single statements need no implicit tx.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDB(sqlDB, poolStatsCollector); err != nil {
			return nil, err
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if params.Config.Database.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated")
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB, poolWatchInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL pool")
		},
	})

	return db, nil
}

// Migrate creates or alters the marketplace tables and their indexes.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(model.All()...), "failed to migrate schema")
}

// poolWait is the growth in connection waits between two samples.
type poolWait struct {
	count    int64
	duration time.Duration
}

func waitSince(prev, cur sql.DBStats) poolWait {
	return poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
	}
}

// watchPoolWaits logs every interval in which requests waited for a pooled
// connection. Long waits are warnings; the running totals are exported by
// the metrics collector.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		wait := waitSince(prev, cur)
		prev = cur
		if wait.count <= 0 {
			continue
		}

		level := slog.LevelDebug
		if wait.duration >= poolWaitWarnAfter {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Postgres pool wait",
			slog.Int64("waits", wait.count),
			slog.Duration("wait_total", wait.duration),
			slog.Duration("wait_avg", wait.duration/time.Duration(wait.count)),
			slog.Int("open", cur.OpenConnections),
			slog.Int("in_use", cur.InUse),
			slog.Int("max_open", cur.MaxOpenConnections),
		)
	}
}
