package components

import (
	"branch-reservations/internal/pkg/clock"
	"branch-reservations/internal/usecase"
	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/notify"
	"branch-reservations/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseNotifyModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewArchiveQueries,
		queries.NewProductQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseNotifyModule = fx.Module("usecase/notify",
	fx.Provide(
		notify.NewOutboxDispatcher,
		notify.NewRenderer,
		notify.NewWorker,
	),
)
