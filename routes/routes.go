// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"radlog-api/config"
	"radlog-api/controllers"
	"radlog-api/middleware"
	"radlog-api/services"
	"radlog-api/store"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	wasteLog := store.NewGormWasteLog(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	wasteController := controllers.NewWasteController(wasteLog)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
		auth.POST("/send-verification", authController.SendVerificationCode)
		auth.POST("/verify-code", authController.VerifyCode)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
			users.GET("/statistics", userController.GetStatistics)
		}

		// Waste calculator routes
		waste := protected.Group("/waste")
		{
			waste.POST("/evaluate", wasteController.Evaluate)
			waste.POST("/save", wasteController.Save)
			waste.GET("/history", wasteController.GetHistory)
			waste.GET("/isotopes", wasteController.GetIsotopes)
		}
	}
}
