package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hypnoraffle/config"
	"hypnoraffle/database"
	"hypnoraffle/logger"
	"hypnoraffle/middleware"
	"hypnoraffle/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const systemMetricsInterval = 15 * time.Second

// @title HypnoRaffle API
// @version 1.0
// @description Raffle participants, winner draws and tracked QR code redirects
// @BasePath /api/v1

// @securityDefinitions.apikey PasswordGate
// @in header
// @name X-Auth-Token
// @description Token returned by /auth/unlock, also accepted as the hypnoraffle_auth cookie
func main() {
	if err := config.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(config.LogLevel, config.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	gin.SetMode(config.GinMode)

	if err := database.InitDB(); err != nil {
		log.Fatal("failed to connect to the database", zap.Error(err))
	}
	// Redis only backs the slug cache and token revocation, so the service runs without it
	if err := database.InitRedis(); err != nil {
		log.Warn("redis unavailable, running without cache and token revocation", zap.Error(err))
		database.REDIS = nil
	}

	if config.JWTSecret == "" {
		config.JWTSecret = randomSecret()
		log.Warn("JWT_SECRET is not set, using a random secret: gate tokens will not survive a restart")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	middleware.UpdateSystemMetrics(ctx, systemMetricsInterval)

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           routes.SetupRouter(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("HTTP server started",
			zap.String("addr", srv.Addr),
			zap.Bool("basic_auth", config.SiteAuthUsername != "" && config.SiteAuthPassword != ""),
			zap.Bool("password_gate", config.SitePasswordHash != ""),
			zap.Bool("redis", database.REDIS != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		sqlDB.Close()
	}
	if database.REDIS != nil {
		database.REDIS.Close()
	}

	log.Info("server stopped")
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("failed to generate secret: %v", err))
	}
	return hex.EncodeToString(b)
}
