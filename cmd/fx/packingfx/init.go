package packingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"trekzaa/internal/api/controllers"
	"trekzaa/internal/repositories"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

var Module = fx.Provide(
	providePackingRepo, providePackingService, providePackingController)

func providePackingRepo(db *gorm.DB) repositories.PackingRepository {
	return repositories.NewPackingRepository(db)
}

func providePackingService(
	packingRepo repositories.PackingRepository,
	prefRepo repositories.PreferenceRepository,
	completion utils.CompletionClientInterface,
) services.PackingServiceInterface {
	return services.NewPackingService(packingRepo, prefRepo, completion)
}

func providePackingController(packingService services.PackingServiceInterface) *controllers.PackingController {
	return controllers.NewPackingController(packingService)
}
