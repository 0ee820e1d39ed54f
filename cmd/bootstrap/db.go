package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"seat-hold-ticketing/internal/infra/db"
	"seat-hold-ticketing/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 15 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB fails startup when Postgres is unreachable; every ticketing
// operation needs it.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected",
		"host", cfg.DB.Host,
		"db", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(cleanup))
	return pool, nil
}
