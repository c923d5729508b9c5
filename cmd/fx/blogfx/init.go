package blogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"trekzaa/internal/api/controllers"
	"trekzaa/internal/repositories"
	"trekzaa/internal/services"
)

var Module = fx.Provide(
	provideBlogRepo, provideBlogService, provideBlogController)

func provideBlogRepo(db *gorm.DB) repositories.BlogRepository {
	return repositories.NewBlogRepository(db)
}

func provideBlogService(blogRepo repositories.BlogRepository) services.BlogServiceInterface {
	return services.NewBlogService(blogRepo)
}

func provideBlogController(blogService services.BlogServiceInterface, authService services.AuthServiceInterface) *controllers.BlogController {
	return controllers.NewBlogController(blogService, authService)
}
