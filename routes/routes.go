package routes

import (
	"context"
	"time"

	_ "hypnoraffle/docs"

	"hypnoraffle/config"
	"hypnoraffle/middleware"
	v1 "hypnoraffle/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the HTTP engine with every middleware and route.
// Background work started for the routes stops with ctx.
func SetupRouter(ctx context.Context) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(corsConfig(config.CorsOrigins)))
	r.Use(middleware.SiteBasicAuth())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterPublicRoutes(ctx, r)
	v1.Register(ctx, r)

	return r
}

// corsConfig allows credentials for the listed origins; an empty list or "*" opens CORS without credentials
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.TokenHeader},
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
