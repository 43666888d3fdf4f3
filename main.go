package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wolfterm/wolfterm-backend/auth"
	"github.com/wolfterm/wolfterm-backend/database"
	"github.com/wolfterm/wolfterm-backend/handlers"
	"github.com/wolfterm/wolfterm-backend/repository"
	"github.com/wolfterm/wolfterm-backend/services"
)

func main() {
	// Load .env file first.
	// It's safe to ignore the error if the file is optional (e.g., in production using real env vars)
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: No .env file found or error loading it: %v. Relying on system environment variables.", err)
	}

	// Connect to Database. An unreachable MongoDB is not fatal: reads fall
	// back to seed files and defaults until it comes back.
	database.Connect()
	defer database.Disconnect()

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}

	authService, err := auth.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	products := repository.NewProductsRepo(database.GetCollection("products"))
	reviews := repository.NewReviewsRepo(database.GetCollection("reviews"))
	categories := repository.NewCategoriesRepo(database.GetCollection("categories"), uploadsDir)
	heroSlides := repository.NewHeroSlidesRepo(database.GetCollection("hero_slides"), uploadsDir)
	catalogs := repository.NewCatalogsRepo(database.GetCollection("catalogs"))
	settings := repository.NewSettingsRepo(database.GetCollection("site_settings"), uploadsDir)
	contact := repository.NewContactRepo(database.GetCollection("contact_forms"))
	dashboard := repository.NewDashboardRepo(products, reviews, categories, heroSlides)

	public := &handlers.PublicHandlers{
		Products:   products,
		Reviews:    reviews,
		Categories: categories,
		HeroSlides: heroSlides,
		Catalogs:   catalogs,
		Settings:   settings,
		Contact:    contact,
	}
	admin := &handlers.AdminHandlers{
		Auth:       authService,
		Products:   products,
		Reviews:    reviews,
		Categories: categories,
		HeroSlides: heroSlides,
		Catalogs:   catalogs,
		Settings:   settings,
		Dashboard:  dashboard,
		Images:     services.NewImageStore(uploadsDir),
	}

	// Initialize Gin Router
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- CORS Middleware ---
	corsConfig := cors.DefaultConfig()
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" || origins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"}

	router.Use(cors.New(corsConfig))

	// --- API Routes ---
	api := router.Group("/api")
	{
		api.GET("/", public.Root)
		api.GET("/products", public.ListProducts)
		api.GET("/products/:id", public.GetProduct)
		api.POST("/products", public.CreateProduct)
		api.GET("/reviews", public.ListReviews)
		api.POST("/reviews", public.CreateReview)
		api.GET("/categories", public.ListCategories)
		api.GET("/catalogs", public.ListCatalogs)
		api.GET("/catalogs/:id", public.GetCatalog)
		api.GET("/hero-slides", public.ListHeroSlides)
		api.POST("/contact", public.SubmitContact)
		api.GET("/search", public.Search)
		api.GET("/settings", public.GetSettings)
	}

	adminGroup := router.Group("/api/admin")
	adminGroup.POST("/login", admin.Login)
	{
		protected := adminGroup.Group("")
		protected.Use(authService.RequireAdmin())
		protected.GET("/dashboard", admin.GetDashboard)
		protected.PUT("/products/:id", admin.UpdateProduct)
		protected.PUT("/reviews/:id", admin.UpdateReview)
		protected.DELETE("/reviews/:id", admin.DeleteReview)
		protected.POST("/categories", admin.CreateCategory)
		protected.PUT("/categories/:id", admin.UpdateCategory)
		protected.DELETE("/categories/:id", admin.DeleteCategory)
		protected.GET("/hero-slides", admin.ListHeroSlides)
		protected.POST("/hero-slides", admin.CreateHeroSlide)
		protected.PUT("/hero-slides/:id", admin.UpdateHeroSlide)
		protected.DELETE("/hero-slides/:id", admin.DeleteHeroSlide)
		protected.GET("/catalogs", admin.ListCatalogs)
		protected.GET("/catalogs/:id", admin.GetCatalog)
		protected.POST("/catalogs", admin.CreateCatalog)
		protected.PUT("/catalogs/:id", admin.UpdateCatalog)
		protected.DELETE("/catalogs/:id", admin.DeleteCatalog)
		protected.GET("/settings", admin.GetSettings)
		protected.PUT("/settings", admin.UpdateSettings)
		protected.POST("/upload-image", admin.UploadImage)
	}

	// Uploaded images and seed artifacts are served straight from disk.
	router.Static("/uploads", uploadsDir)

	// --- Health Check Endpoint ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	// --- Start Server ---
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}

	log.Printf("Server starting and listening on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
