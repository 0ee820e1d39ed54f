package components

import (
	"seat-hold-ticketing/internal/infra/readrepo"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/infra/uow"
	"seat-hold-ticketing/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readrepoModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	// Write-side repositories are built per transaction inside the UnitOfWork.
	uow.NewPostgresUoW,
)

var readrepoModule = fx.Module("persistence/readrepo",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readrepo.BookingViewQueries)),
		),
		fx.Annotate(
			readrepo.NewBookingViewRepository,
			fx.As(new(queries.BookingViewRepo)),
		),
		// Event seats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readrepo.EventSeatViewQueries)),
		),
		fx.Annotate(
			readrepo.NewEventSeatViewRepository,
			fx.As(new(queries.EventSeatViewRepo)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
