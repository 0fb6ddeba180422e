package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured client origin. "*" allows any origin without credentials.
func CORS(clientOrigin string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Requested-With", TraceHeader},
		ExposeHeaders: []string{TraceHeader},
	}

	origin := strings.TrimSpace(clientOrigin)
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origin, ",")
		for i := range cfg.AllowOrigins {
			cfg.AllowOrigins[i] = strings.TrimSpace(cfg.AllowOrigins[i])
		}
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
