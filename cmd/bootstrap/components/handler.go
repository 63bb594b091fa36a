package components

import (
	"go.uber.org/fx"

	"pawhaven/internal/handler"
	"pawhaven/internal/handler/api"
	"pawhaven/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAnimalHandler,
		api.NewTransferHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
