package bootstrap

import (
	"log/slog"

	"seckill-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// never add secrets here
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"redis_addr", cfg.Redis.Addr,
		"shop_cache_strategy", cfg.Cache.ShopStrategy,
		"queue_capacity", cfg.Seckill.QueueCapacity,
		"queue_overflow", cfg.Seckill.QueueOverflow,
		"order_id_prefix", cfg.Seckill.OrderIDPrefix,
		"reconcile_interval", cfg.Seckill.ReconcileInterval,
	)
}
