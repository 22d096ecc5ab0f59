package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"jersey-hub/config"
	_ "jersey-hub/docs"
	"jersey-hub/middleware"
	"jersey-hub/models"
	"jersey-hub/repositories"
	"jersey-hub/routes"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	var store repositories.Store
	if config.AppConfig.DatabaseURL != "" {
		pgStore, err := repositories.NewPostgresStore(config.AppConfig.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pgStore.Close()
		store = pgStore
	} else {
		log.Println("No DATABASE_URL set, using seeded in-memory catalog")
		store = repositories.NewMemStore()
	}

	models.InitRedis()
	defer models.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, store)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
