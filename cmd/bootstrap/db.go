package bootstrap

import (
	"context"
	"log/slog"

	"seckill-service/internal/infra/db"
	"seckill-service/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly. It is closed after the worker module has
// drained, since fx stops modules in reverse construction order.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(func(_ context.Context) {
		stat := pool.Stat()
		logger.Info("closing database pool",
			"acquired_conns", stat.AcquiredConns(),
			"total_conns", stat.TotalConns())
		cleanup()
	}))

	return pool, nil
}
