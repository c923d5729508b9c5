package authfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"trekzaa/internal/api/controllers"
	"trekzaa/internal/repositories"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

var Module = fx.Provide(
	provideJWTManager, provideUserRepo, provideAuthService, provideAuthController)

// provideJWTManager fails fx.New when the signing secret is absent.
func provideJWTManager() (*utils.JWTManager, error) {
	return utils.NewJWTManager(os.Getenv("JWT_SECRET"))
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository, tokens *utils.JWTManager) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, tokens)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
