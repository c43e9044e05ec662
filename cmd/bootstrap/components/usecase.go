package components

import (
	"seckill-service/internal/usecase"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSeckillCommands,
		commands.NewOrderPersister,
		commands.NewVoucherCommands,
		commands.NewShopCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewShopQueries,
		queries.NewOrderQueries,
		queries.NewVoucherQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
