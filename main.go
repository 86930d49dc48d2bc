package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"motomarket-api/config"
	"motomarket-api/database"
	"motomarket-api/jobs"
	"motomarket-api/middleware"
	"motomarket-api/routes"
	"motomarket-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with development data
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(routes.SetupCORS())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())

	emailService := services.NewEmailService(cfg)

	routes.SetupRoutes(router, db, cfg, emailService)

	// Keep popularity scores current in the background
	popularityJob := jobs.NewPopularityRefreshJob(db, time.Hour)
	popularityJob.Start()
	defer popularityJob.Stop()

	log.Printf("Starting MotoMarket API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
