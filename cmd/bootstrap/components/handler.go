package components

import (
	"seat-hold-ticketing/internal/handler"
	"seat-hold-ticketing/internal/handler/api"
	"seat-hold-ticketing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHoldHandler,
		api.NewEventHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimitMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
