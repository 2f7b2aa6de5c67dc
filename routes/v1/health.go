package v1

import (
	"context"
	"net/http"
	"time"

	"hypnoraffle/database"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthTimeout = 2 * time.Second

// RegisterMetricsRoutes registers the Prometheus scrape endpoint and the health check
func RegisterMetricsRoutes(r *gin.RouterGroup) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", health)
}

// health reports whether the database and, when configured, Redis answer
func health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok"}

	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if database.REDIS != nil {
		checks["redis"] = "ok"
		if err := database.REDIS.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, checks)
}
