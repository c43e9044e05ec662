package components

import (
	"context"

	"seckill-service/internal/infra/cache"
	"seckill-service/internal/infra/idgen"
	"seckill-service/internal/infra/lock"
	"seckill-service/internal/infra/seckill"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/queries"
	"seckill-service/internal/worker"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		lock.NewClient,
		fx.Annotate(
			idgen.NewWorker,
			fx.As(new(commands.IDGenerator)),
		),
		fx.Annotate(
			seckill.NewGate,
			fx.As(new(commands.AdmissionGate)),
		),
		seckill.NewAdmissionLog,
		func(l *seckill.AdmissionLog) commands.AdmissionLog { return l },
		func(l *seckill.AdmissionLog) worker.AdmissionLog { return l },
		NewCacheOptions,
		cache.NewClient,
		func(c *cache.Client) commands.CacheInvalidator { return c },
		NewShopCacheReader,
		func(r *cache.Reader[queries.ShopView]) queries.ShopCacheReader { return r },
		func(r *cache.Reader[queries.ShopView]) commands.ShopCacheWarmer { return r },
	),
	fx.Invoke(registerCacheLifecycle),
)

func NewCacheOptions(cfg config.Config) cache.Options {
	return cache.OptionsFromConfig(cfg.Cache)
}

func NewShopCacheReader(client *cache.Client, cfg config.Config) (*cache.Reader[queries.ShopView], error) {
	strategy, err := cache.ParseStrategy(cfg.Cache.ShopStrategy)
	if err != nil {
		return nil, err
	}
	return cache.NewReader[queries.ShopView](client, strategy), nil
}

// In-flight logical-expiry rebuilds get the stop timeout to finish.
func registerCacheLifecycle(lc fx.Lifecycle, client *cache.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})
}
