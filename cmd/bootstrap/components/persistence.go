package components

import (
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/infra/readstore"
	"branch-reservations/internal/infra/uow"
	"branch-reservations/internal/usecase/notify"
	"branch-reservations/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(notify.BranchDirectory)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Archive
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ArchiveReadQueries)),
		),
		fx.Annotate(
			readstore.NewArchiveReadStore,
			fx.As(new(queries.ArchiveReadStore)),
		),
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
	),
)

// repositories are created per transaction by the unit of work
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries() *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}
