package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, hold TTL, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Hold      HoldConfig
	Sweep     SweepConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Broker    BrokerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	Mode string `envconfig:"GIN_MODE" default:"debug"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type HoldConfig struct {
	TTL time.Duration `envconfig:"HOLD_TTL" default:"90s"`
}

// SweepConfig drives the optional in-process sweeper. Interval 0 disables it;
// the admin endpoint still works.
type SweepConfig struct {
	Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"30s"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Rate    float64       `envconfig:"RATE_LIMIT_RATE" default:"5"`
	Burst   int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	KeyTTL  time.Duration `envconfig:"RATE_LIMIT_KEY_TTL" default:"1m"`
}

type BrokerConfig struct {
	URL           string        `envconfig:"AMQP_URL" default:""`
	Exchange      string        `envconfig:"AMQP_EXCHANGE" default:"ticketing"`
	RelayInterval time.Duration `envconfig:"OUTBOX_RELAY_INTERVAL" default:"2s"`
	RelayBatch    int           `envconfig:"OUTBOX_RELAY_BATCH" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env file", "error", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Hold.TTL <= 0 {
		return Config{}, fmt.Errorf("HOLD_TTL must be positive, got %s", cfg.Hold.TTL)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
			Mode: "test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-testing-purposes-only",
			Duration: "1h",
		},
		Hold: HoldConfig{
			TTL: 90 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			Rate:    5,
			Burst:   10,
			KeyTTL:  time.Minute,
		},
		Broker: BrokerConfig{
			Exchange:      "ticketing",
			RelayInterval: 2 * time.Second,
			RelayBatch:    50,
		},
	}
}
