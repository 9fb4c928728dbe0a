package middleware

import (
	"log/slog"
	"slices"

	"branch-reservations/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		AllowFiles:       cfg.AllowFiles,
		MaxAge:           cfg.MaxAge,
	}
	// browsers refuse credentialed responses to a wildcard origin, so "*" reflects the caller instead
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_files", cfg.AllowFiles)
	return cors.New(corsCfg)
}
