package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-engine/internal/cache"
	"resume-engine/internal/evaluation"
	"resume-engine/internal/evaluations"
	"resume-engine/internal/fit"
	"resume-engine/internal/shared/config"
	"resume-engine/internal/shared/metrics"
	"resume-engine/internal/shared/server/middleware"
	"resume-engine/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig(cfg)),
	)

	// Dependencies
	generic := evaluation.New()
	results := cache.New[*evaluation.Result](
		cache.WithTTL[*evaluation.Result](cfg.CacheTTL),
		cache.WithMaxEntries[*evaluation.Result](cfg.CacheMaxEntries),
	)
	evalSvc := evaluations.NewService(generic, fit.New(generic), results)
	evalHandler := evaluations.NewHandler(evalSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	evalHandler.RegisterRoutes(api)

	return r
}

// rateLimitConfig limits evaluation writes per client IP; reads pass through.
func rateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"EVALUATE": {Rate: cfg.RateLimitPerMin / 60, Burst: cfg.RateLimitBurst},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return "EVALUATE"
			}
			return "PASS"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
