package components

import (
	"toaigo/internal/domain/booking"
	"toaigo/internal/pkg/clock"
	"toaigo/internal/pkg/config"
	"toaigo/internal/pkg/jwt"
	"toaigo/internal/usecase/commands"
	"toaigo/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) booking.SplitCalculator {
		return booking.NewFixedRateCalculator(cfg.Commission.Rate)
	},
	booking.NewFactory,
	func(s *jwt.Service) commands.TokenIssuer {
		return s
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewMerchantCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewMerchantQueries,
		queries.NewBookingQueries,
		queries.NewFinancialQueries,
	),
)
