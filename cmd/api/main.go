package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tempustours/tempus-backend/internal/handlers"
	"github.com/tempustours/tempus-backend/internal/middleware"
	"github.com/tempustours/tempus-backend/internal/services"
	"github.com/tempustours/tempus-backend/internal/stores"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize snapshot storage (Redis, S3 or local files)
	snapshots, err := services.InitSnapshots()
	if err != nil {
		log.Fatalf("Failed to initialize snapshot storage: %v", err)
	}

	// Initialize stores
	users, err := stores.NewUserStore(snapshots)
	if err != nil {
		log.Fatalf("Failed to initialize user store: %v", err)
	}

	bookings, err := stores.NewBookingStore(snapshots)
	if err != nil {
		log.Fatalf("Failed to initialize booking store: %v", err)
	}

	favorites, err := stores.NewFavoritesStore(snapshots)
	if err != nil {
		log.Fatalf("Failed to initialize favorites store: %v", err)
	}

	themes, err := stores.NewThemeStore(snapshots)
	if err != nil {
		log.Fatalf("Failed to initialize theme store: %v", err)
	}

	catalog := stores.NewCatalogStore()

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(users))
			auth.POST("/login", handlers.Login(users))
			auth.POST("/guest", handlers.GuestLogin(users))
		}

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// User routes
			usersGroup := protected.Group("/users")
			{
				usersGroup.GET("/profile", handlers.GetProfile(users))
				usersGroup.PUT("/profile", handlers.UpdateProfile(users))
			}

			// Catalog routes
			civilizations := protected.Group("/civilizations")
			{
				civilizations.GET("", handlers.GetCivilizations(catalog))
				civilizations.GET("/:id", handlers.GetCivilization(catalog))
				civilizations.GET("/:id/tours", handlers.GetCivilizationTours(catalog))
			}

			toursGroup := protected.Group("/tours")
			{
				toursGroup.GET("", handlers.GetTours(catalog))
				toursGroup.GET("/featured", handlers.GetFeaturedTours(catalog))
				toursGroup.GET("/search", handlers.SearchTours(catalog))
				toursGroup.GET("/:id", handlers.GetTour(catalog))
			}

			// Booking workflow routes
			bookingsGroup := protected.Group("/bookings")
			{
				bookingsGroup.POST("", handlers.StartBooking(bookings, users))
				bookingsGroup.GET("", handlers.GetBookings(bookings))
				bookingsGroup.GET("/active", handlers.GetActiveBookings(bookings))
				bookingsGroup.GET("/history", handlers.GetBookingHistory(bookings))
				bookingsGroup.GET("/current", handlers.GetCurrentBooking(bookings))
				bookingsGroup.PATCH("/current/dates", handlers.SetTravelDates(bookings))
				bookingsGroup.PATCH("/current/travelers", handlers.SetTravelers(bookings))
				bookingsGroup.GET("/current/total", handlers.GetBookingTotal(bookings, catalog))
				bookingsGroup.PATCH("/current/payment", handlers.SetPaymentInfo(bookings))
				bookingsGroup.POST("/current/confirm", handlers.ConfirmBooking(bookings, hub))
				bookingsGroup.DELETE("/current", handlers.CancelBookingProcess(bookings))
				bookingsGroup.GET("/:id", handlers.GetBooking(bookings))
				bookingsGroup.POST("/:id/cancel", handlers.CancelBooking(bookings, hub))
			}

			// Favorites routes
			favoritesGroup := protected.Group("/favorites")
			{
				favoritesGroup.GET("", handlers.GetFavorites(favorites))
				favoritesGroup.POST("", handlers.AddFavorite(favorites, catalog))
				favoritesGroup.POST("/toggle", handlers.ToggleFavorite(favorites, catalog))
				favoritesGroup.DELETE("", handlers.ClearFavorites(favorites))
				favoritesGroup.DELETE("/:tourId", handlers.RemoveFavorite(favorites))
			}

			// Preference routes
			preferences := protected.Group("/preferences")
			{
				preferences.GET("/theme", handlers.GetThemePreference(themes))
				preferences.PUT("/theme", handlers.UpdateThemePreference(themes))
			}

			// Travel stats
			protected.GET("/stats/travel", handlers.GetTravelStats(bookings, catalog))
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
