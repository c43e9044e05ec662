package components

import (
	"seckill-service/internal/handler"
	"seckill-service/internal/handler/api"
	"seckill-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSeckillHandler,
		api.NewOrderHandler,
		api.NewShopHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
