package components

import (
	"happyhotel/internal/pkg/clock"
	"happyhotel/internal/usecase/commands"
	"happyhotel/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		queries.NewBookingQueries,
	),
)
