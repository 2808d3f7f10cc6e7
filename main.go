// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"radlog-api/config"
	"radlog-api/database"
	"radlog-api/middleware"
	"radlog-api/routes"
	"radlog-api/services"
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

	// Seed database with test data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Email service for verification codes
	emailService := services.NewEmailService(cfg)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Request logging middleware
	router.Use(gin.Logger())

	// Recovery middleware
	router.Use(gin.Recovery())

	// Security headers and JSON content-type guard
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ValidateJSON())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Start server
	log.Printf("Starting RadLog API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
