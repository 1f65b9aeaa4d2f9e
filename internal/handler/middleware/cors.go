package middleware

import (
	"log/slog"
	"slices"

	"fervo/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Clients back off on 429 and correlate support requests by request id.
var alwaysExposed = []string{"Retry-After", "X-Request-ID"}

// NewCORSMiddleware accepts origin patterns such as https://*.fervo.app.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range alwaysExposed {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		AllowWildcard:    true,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(corsCfg)
}
