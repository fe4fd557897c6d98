package components

import (
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewPricingQueries,
		queries.NewBookingQueries,
		queries.NewDiscountQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewBookingCommands,
		commands.NewDiscountUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(uow shared.UnitOfWork, cfg config.Config) commands.BookingCommands {
	return commands.NewBookingUseCase(uow, cfg.Booking.RewardPoints)
}
