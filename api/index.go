package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"hardware-store/app"
	"hardware-store/config"
	_ "hardware-store/docs"
	"hardware-store/middleware"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware(cfg))

		if _, initErr = app.New(context.Background(), cfg, router); initErr != nil {
			log.Printf("Failed to initialize app: %v", initErr)
		}
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, `{"success":false,"message":"service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
