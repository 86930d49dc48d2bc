package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motomarket-api/config"
	"motomarket-api/controllers"
	"motomarket-api/middleware"
	"motomarket-api/repositories"
	"motomarket-api/services"
)

// SetupCORS allows the web client on another origin to call the API.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	catalogRepo := repositories.NewGormCatalogRepository(db)
	catalogService := services.NewCatalogService(catalogRepo)

	RegisterCatalogRoutes(r, catalogRepo, catalogService)

	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	reviewController := controllers.NewReviewController(db)
	calculatorController := controllers.NewCalculatorController(db)

	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/session", authController.Session)
	}

	// Public calculator
	v1.POST("/calculator/emi", calculatorController.CalculateEMI)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}

		protected.POST("/models/:slug/reviews", reviewController.CreateReview)

		calculator := protected.Group("/calculator")
		{
			calculator.POST("/save", calculatorController.SaveCalculation)
			calculator.GET("/history", calculatorController.GetHistory)
			calculator.DELETE("/history", calculatorController.ClearHistory)
		}
	}
}

// RegisterCatalogRoutes wires the public read path against the storage
// port. Tests register these against the in-memory backend.
func RegisterCatalogRoutes(r *gin.Engine, repo repositories.CatalogRepository, catalog *services.CatalogService) {
	bikeController := controllers.NewBikeController(catalog)
	brandController := controllers.NewBrandController(repo)
	categoryController := controllers.NewCategoryController(repo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/bikes", bikeController.ListBikes)
		v1.GET("/bikes/compare", bikeController.CompareModels)
		v1.GET("/models", bikeController.ListModels)
		v1.GET("/models/:slug", bikeController.GetModel)
		v1.GET("/brands", brandController.ListBrands)
		v1.GET("/categories", categoryController.ListCategories)
	}
}
