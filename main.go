package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"hardware-store/app"
	"hardware-store/config"
	_ "hardware-store/docs"
	"hardware-store/middleware"
)

// @title Hardware Store API
// @version 1.0
// @description Storefront backend: catalog, cart, store configuration, checkout and seller applications.
// @BasePath /api
func main() {
	cfg := config.LoadConfig()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg))

	application, err := app.New(context.Background(), cfg, router)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer application.Close()

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
