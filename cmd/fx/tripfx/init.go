package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"trekzaa/internal/api/controllers"
	"trekzaa/internal/repositories"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	prefRepo repositories.PreferenceRepository,
	guideRepo repositories.GuideRepository,
	tripRepo repositories.TripRepository,
	completion utils.CompletionClientInterface,
) services.TripServiceInterface {
	return services.NewTripService(prefRepo, guideRepo, tripRepo, completion)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
