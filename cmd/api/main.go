package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nexlot/nexlot-backend/internal/database"
	"github.com/nexlot/nexlot-backend/internal/handlers"
	"github.com/nexlot/nexlot-backend/internal/middleware"
	"github.com/nexlot/nexlot-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Initialize database with better error handling
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	if err := database.SeedDemoData(db); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	// Initialize Redis
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Safety analysis is mocked; swap the analyzer to plug in a real
	// vision backend
	analyzer := services.NewMockSpotAnalyzer(time.Now().UnixNano())

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored uploads when S3 is not configured
	if !services.IsUsingS3() {
		uploadDir := os.Getenv("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "/app/uploads"
		}
		r.Static("/uploads", uploadDir)
	}

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
		}

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// User routes
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(db))
				users.PUT("/profile", handlers.UpdateProfile(db))
				users.POST("/avatar", handlers.UploadAvatar(db))
				users.POST("/switch-role", handlers.SwitchRole(db))
				users.GET("/earnings", handlers.GetEarnings(db))
			}

			// Spot routes
			spots := protected.Group("/spots")
			{
				spots.GET("", handlers.GetSpots(db))
				spots.POST("", handlers.CreateSpot(db))
				spots.GET("/owner", handlers.GetOwnerSpots(db))
				spots.GET("/:id", handlers.GetSpot(db))
				spots.DELETE("/:id", handlers.DeleteSpot(db))
				spots.GET("/:id/reviews", handlers.GetSpotReviews(db))
				spots.POST("/:id/photos", handlers.UploadSpotPhoto(db))
				spots.DELETE("/:id/photos", handlers.DeleteSpotPhoto(db))
				spots.GET("/:id/analysis", handlers.AnalyzeSpot(db, analyzer))
			}

			// Booking routes
			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(db, hub))
				bookings.GET("", handlers.GetMyBookings(db))
				bookings.GET("/requests", handlers.GetOwnerRequests(db))
				bookings.GET("/:id/status", handlers.GetBookingStatus(db))
				bookings.PATCH("/:id/status", handlers.DecideBooking(db, hub))
				bookings.POST("/:id/review", handlers.SubmitReview(db))
			}

			// Verification routes
			verification := protected.Group("/verification")
			{
				verification.POST("/documents", handlers.UploadVerificationDocuments(db))
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.GET("/verification-requests", handlers.GetVerificationRequests(db))
				admin.POST("/verification-requests/:id/decision", handlers.DecideVerification(db, hub))
			}
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
