package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/visaquest/visaquest-go/internal/api/middleware"
	"github.com/visaquest/visaquest-go/internal/api/routes"
	"github.com/visaquest/visaquest-go/internal/config"
	"github.com/visaquest/visaquest-go/internal/config/db"
	"github.com/visaquest/visaquest-go/internal/domain/form"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(&form.Application{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
