package components

import (
	"context"

	"branch-reservations/internal/infra/coldstore"
	"branch-reservations/internal/infra/mailer"
	"branch-reservations/internal/infra/priceimport"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/usecase/commands"

	"go.uber.org/fx"
)

// IntegrationModule wires the adapters to systems outside the database.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		mailer.New,
		NewArchiveExporter,
		fx.Annotate(
			priceimport.NewSheetReader,
			fx.As(new(commands.PriceSheetParser)),
		),
	),
)

func NewArchiveExporter(cfg config.ArchiveConfig) (commands.ArchiveExporter, error) {
	return coldstore.New(context.Background(), cfg)
}
