package main

import (
	"encoding/gob"
	"log"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/controllers"
	"github.com/arjun-099/DukaanDesk/routes"
	"github.com/arjun-099/DukaanDesk/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Register types for session serialization
	gob.Register(controllers.RegistrationData{})

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Initialize Google OAuth
	config.InitGoogleOAuth()

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	// Start server
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
