package trip_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(provideTripService)

func provideTripService(
	sessions repositories.TripSessionRepository,
	suggestions repositories.SuggestionRepository,
) services.TripServiceInterface {
	return services.NewTripService(sessions, suggestions)
}
