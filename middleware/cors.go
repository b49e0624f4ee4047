package middleware

import (
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hardware-store/config"
)

var devOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// AllowedOrigins lists the storefront origins that may send the session and
// cart cookies.
func AllowedOrigins(cfg *config.Config) []string {
	origins := slices.Clone(devOrigins)
	for _, o := range []string{cfg.AppURL, cfg.OriginURL} {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		if o != "" && !slices.Contains(origins, o) {
			origins = append(origins, o)
		}
	}
	return origins
}

func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     AllowedOrigins(cfg),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
