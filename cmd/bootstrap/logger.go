package bootstrap

import (
	"log/slog"

	"seat-hold-ticketing/internal/handler/middleware"
	"seat-hold-ticketing/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as slog's default so packages logging
// through slog.InfoContext and friends share its handler.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
