package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hypnoraffle/config"
	"hypnoraffle/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// REDIS is nil when no Redis host is configured; callers must treat the cache as optional
var REDIS *redis.Client

// InitDB opens the PostgreSQL connection, migrates the models and populates the default values if needed
func InitDB() error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=%s",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword, config.PostgresTimeZone)

	db, err := Connect(postgres.Open(dsn))
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db
	zap.L().Info("database connected",
		zap.String("host", config.PostgresHost),
		zap.String("port", config.PostgresPort),
		zap.String("dbname", config.PostgresDB),
	)
	return nil
}

// Connect opens a gorm connection on the given dialector, migrates it and populates it
func Connect(dialector gorm.Dialector) (*gorm.DB, error) {
	logMode := gormlogger.Silent
	if config.LogLevel == "debug" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Session{},
		&models.Participant{},
		&models.QrRef{},
		&models.QrScan{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := Populate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Populate creates an active session when the database has none
func Populate(db *gorm.DB) error {
	var countSession int64
	if err := db.Model(&models.Session{}).Count(&countSession).Error; err != nil {
		return fmt.Errorf("failed to count sessions: %w", err)
	}
	if countSession > 0 {
		return nil
	}

	session := models.Session{IsActive: true}
	if err := db.Create(&session).Error; err != nil {
		return fmt.Errorf("failed to create default session: %w", err)
	}
	zap.L().Info("default session created", zap.String("session_id", session.ID))
	return nil
}

// InitRedis connects the optional Redis cache. A configured but unreachable Redis is an error.
func InitRedis() error {
	if config.RedisHost == "" {
		zap.L().Info("redis not configured, caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisHost + ":" + config.RedisPort,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect redis: %w", err)
	}

	REDIS = client
	zap.L().Info("redis connected", zap.String("addr", client.Options().Addr))
	return nil
}

// IsNotFound reports whether err is gorm's record-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
