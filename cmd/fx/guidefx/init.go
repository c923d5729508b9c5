package guidefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"trekzaa/internal/api/controllers"
	"trekzaa/internal/repositories"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

var Module = fx.Provide(
	provideGuideRepo, provideGuideService, provideGuideController)

func provideGuideRepo(db *gorm.DB) repositories.GuideRepository {
	return repositories.NewGuideRepository(db)
}

func provideGuideService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	guideRepo repositories.GuideRepository,
	translator utils.TranslatorInterface,
) services.GuideServiceInterface {
	return services.NewGuideService(db, userRepo, guideRepo, translator)
}

func provideGuideController(guideService services.GuideServiceInterface) *controllers.GuideController {
	return controllers.NewGuideController(guideService)
}
