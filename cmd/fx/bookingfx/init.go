package bookingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"trekzaa/internal/api/controllers"
	"trekzaa/internal/repositories"
	"trekzaa/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository, guideRepo repositories.GuideRepository) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, guideRepo)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
