package v1

import (
	"context"

	"hypnoraffle/config"
	"hypnoraffle/handlers/auth"
	"hypnoraffle/handlers/live"
	"hypnoraffle/handlers/participants"
	"hypnoraffle/handlers/qrrefs"
	"hypnoraffle/handlers/raffle"
	"hypnoraffle/handlers/sessions"
	"hypnoraffle/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(ctx context.Context, r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter("api", config.APIRateLimitConfig)
	rateLimiter.StartCleanup(ctx, config.RateLimitCleanupPeriod)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	// The password gate itself and the metrics stay reachable while locked
	auth.RegisterRoutes(v1)
	RegisterMetricsRoutes(v1)

	managed := v1.Group("")
	managed.Use(middleware.PasswordGate())

	sessions.RegisterRoutes(managed)
	participants.RegisterRoutes(managed)
	raffle.RegisterRoutes(managed)
	qrrefs.RegisterRoutes(managed)
	live.RegisterRoutes(managed)
}
