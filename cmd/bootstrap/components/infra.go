package components

import (
	"context"
	"log/slog"

	"seat-hold-ticketing/internal/handler/api"
	"seat-hold-ticketing/internal/infra/broker"
	"seat-hold-ticketing/internal/infra/ratelimit"
	"seat-hold-ticketing/internal/infra/ticketqr"
	"seat-hold-ticketing/internal/pkg/config"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		ratelimit.NewLimiter,
		NewPublisher,
		fx.Annotate(
			ticketqr.NewGenerator,
			fx.As(new(api.TicketRenderer)),
		),
	),
)

// NewPublisher connects the outbox relay to RabbitMQ when AMQP_URL is set and
// otherwise logs each message.
func NewPublisher(lc fx.Lifecycle, cfg config.BrokerConfig) broker.Publisher {
	var p broker.Publisher
	if cfg.URL == "" {
		slog.Info("broker not configured, outbox messages will be logged", "component", "broker")
		p = broker.NewLogPublisher()
	} else {
		p = broker.NewRabbitPublisher(cfg.URL, cfg.Exchange)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
