package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"trekzaa/cmd/fx/aifx"
	"trekzaa/cmd/fx/authfx"
	"trekzaa/cmd/fx/blogfx"
	"trekzaa/cmd/fx/bookingfx"
	"trekzaa/cmd/fx/chatfx"
	"trekzaa/cmd/fx/dbfx"
	"trekzaa/cmd/fx/guidefx"
	"trekzaa/cmd/fx/packingfx"
	"trekzaa/cmd/fx/preferencefx"
	"trekzaa/cmd/fx/translatefx"
	"trekzaa/cmd/fx/tripfx"
	"trekzaa/internal/api/controllers"
	"trekzaa/pkg/middleware"
	"trekzaa/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		aifx.Module,
		translatefx.Module,
		authfx.Module,
		preferencefx.Module,
		guidefx.Module,
		tripfx.Module,
		chatfx.Module,
		packingfx.Module,
		bookingfx.Module,
		blogfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tokens *utils.JWTManager,
	authController *controllers.AuthController,
	preferenceController *controllers.PreferenceController,
	guideController *controllers.GuideController,
	tripController *controllers.TripController,
	chatController *controllers.ChatController,
	packingController *controllers.PackingController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tokens,
		authController,
		preferenceController,
		guideController,
		tripController,
		chatController,
		packingController,
		bookingController,
		blogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.JWTManager,
	authController *controllers.AuthController,
	preferenceController *controllers.PreferenceController,
	guideController *controllers.GuideController,
	tripController *controllers.TripController,
	chatController *controllers.ChatController,
	packingController *controllers.PackingController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController) {

	api := r.Group("/api")
	auth := middleware.JWTAuthMiddleware(tokens)

	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)
	api.POST("/logout", authController.Logout)
	api.GET("/user", auth, authController.CurrentUser)

	api.GET("/preferences", auth, preferenceController.GetPreferences)
	api.POST("/preferences", auth, preferenceController.UpsertPreferences)

	api.GET("/guides", guideController.ListGuides)
	api.GET("/guides/location/:location", guideController.ListGuidesByLocation)
	api.GET("/guides/:id", guideController.GetGuide)
	api.GET("/guides/:id/translate/:lang", guideController.TranslateGuide)
	api.POST("/guides/register", auth, guideController.RegisterGuide)

	api.POST("/trips/plan", middleware.OptionalJWTMiddleware(tokens), tripController.PlanTrip)
	api.POST("/trips", auth, tripController.SaveTrip)
	api.GET("/trips", auth, tripController.ListTrips)

	api.POST("/chat", auth, chatController.SendMessage)

	api.POST("/packing-lists/generate", auth, packingController.GenerateList)
	api.GET("/trips/:tripId/packing-lists", auth, packingController.ListsForTrip)
	api.PATCH("/packing-items/:id", auth, packingController.UpdateItem)

	api.POST("/bookings", auth, bookingController.CreateBooking)
	api.GET("/bookings", auth, bookingController.ListUserBookings)
	api.GET("/guide/bookings", auth, bookingController.ListGuideBookings)
	api.PATCH("/bookings/:id", auth, bookingController.UpdateStatus)

	api.GET("/blog", blogController.ListPosts)
	api.GET("/blog/:id", blogController.GetPost)
	api.POST("/blog", auth, blogController.CreatePost)
	api.PUT("/blog/:id", auth, blogController.UpdatePost)
	api.DELETE("/blog/:id", auth, blogController.DeletePost)
	api.GET("/blog/:id/comments", blogController.ListComments)
	api.POST("/blog/:id/comments", auth, blogController.CreateComment)
}
