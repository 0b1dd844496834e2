package components

import (
	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			memstore.New,
			fx.As(new(commands.HotelStore)),
			fx.As(new(queries.HotelReadStore)),
		),
	),
)
