package components

import (
	"toaigo/internal/handler"
	"toaigo/internal/handler/api"
	"toaigo/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewMerchantHandler,
		api.NewBookingHandler,
		api.NewFinancialsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
