package bootstrap

import (
	"context"
	"log/slog"

	"seckill-service/internal/infra/kv"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			kv.NewRedisStore,
			fx.As(new(kv.Store)),
		),
	),
)

// NewRedis is exposed as redis.UniversalClient so tests can hand in a client
// pointed at an in-memory server.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) redis.UniversalClient {
	client := kv.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrap(err, "failed to ping redis")
			}
			logger.Info("redis connected", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
