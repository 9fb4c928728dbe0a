package components

import (
	"branch-reservations/internal/handler"
	"branch-reservations/internal/handler/api"
	"branch-reservations/internal/handler/middleware"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/pkg/jwt"
	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewReservationHandler,
		api.NewArchiveHandler,
		api.NewProductHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(cmds, q, cfg.Cookie, jwtService.Duration())
}

func NewHandlers(auth *api.AuthHandler, reservation *api.ReservationHandler, archive *api.ArchiveHandler, product *api.ProductHandler) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Archive:     archive,
		Product:     product,
	}
}
