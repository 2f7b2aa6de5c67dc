package routes

import (
	"context"

	"hypnoraffle/config"
	"hypnoraffle/handlers/participants"
	"hypnoraffle/handlers/qrrefs"
	"hypnoraffle/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints reached from printed QR codes
func RegisterPublicRoutes(ctx context.Context, r *gin.Engine) {
	public := r.Group("")
	public.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter("public", config.PublicRateLimitConfig)
	rateLimiter.StartCleanup(ctx, config.RateLimitCleanupPeriod)
	public.Use(middleware.RateLimiterMiddleware(rateLimiter))

	qrrefs.RegisterRedirectRoute(public)
	participants.RegisterPublicRoutes(public)
}
