package preferencefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"trekzaa/internal/api/controllers"
	"trekzaa/internal/repositories"
	"trekzaa/internal/services"
)

var Module = fx.Provide(
	providePreferenceRepo, providePreferenceService, providePreferenceController)

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func providePreferenceService(prefRepo repositories.PreferenceRepository) services.PreferenceServiceInterface {
	return services.NewPreferenceService(prefRepo)
}

func providePreferenceController(preferenceService services.PreferenceServiceInterface) *controllers.PreferenceController {
	return controllers.NewPreferenceController(preferenceService)
}
