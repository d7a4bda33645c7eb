package components

import (
	"chartrettes-rooms/internal/handler"
	"chartrettes-rooms/internal/handler/api"
	"chartrettes-rooms/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
