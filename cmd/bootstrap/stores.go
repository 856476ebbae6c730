package bootstrap

import (
	"toaigo/internal/infra/memstore"
	"toaigo/internal/usecase/commands"
	"toaigo/internal/usecase/queries"

	"go.uber.org/fx"
)

// StoreModule provides the two in-memory stores: the directory (merchants +
// users) and the booking ledger. Both live for the whole process; there is no
// persistence behind them.
var StoreModule = fx.Module("stores",
	fx.Provide(
		fx.Annotate(
			memstore.NewSeededDirectoryStore,
			fx.As(new(queries.DirectoryReadStore)),
			fx.As(new(commands.MerchantReadStore)),
			fx.As(new(commands.DirectoryWriteStore)),
			fx.As(new(commands.UserReadStore)),
		),
		fx.Annotate(
			memstore.NewBookingLedger,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.BookingWriteStore)),
		),
	),
)
