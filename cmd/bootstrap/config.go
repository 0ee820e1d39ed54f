package bootstrap

import (
	"seat-hold-ticketing/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the sections consumed by individual components so
// they do not depend on the whole Config.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.HoldConfig { return cfg.Hold },
	func(cfg config.Config) config.SweepConfig { return cfg.Sweep },
	func(cfg config.Config) config.BrokerConfig { return cfg.Broker },
	func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
)
