// Package testutil wires the global database and Redis clients to throwaway backends for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"hypnoraffle/config"
	"hypnoraffle/database"
	"hypnoraffle/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupTestDB points database.DB at a fresh SQLite file, migrated and populated like production
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "hypnoraffle.db") + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := database.Connect(sqlite.Open(dsn))
	require.NoError(t, err)

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		database.DB = previous
	})
	return db
}

// SetupRedis starts an in-memory Redis and installs it as database.REDIS
func SetupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	previous := database.REDIS
	database.REDIS = client
	t.Cleanup(func() {
		client.Close()
		database.REDIS = previous
	})
	return mr
}

// SetConfig overrides a config variable for the duration of the test
func SetConfig(t *testing.T, target *string, value string) {
	t.Helper()

	previous := *target
	*target = value
	t.Cleanup(func() { *target = previous })
}

// ActiveSession returns the session created by the startup populate
func ActiveSession(t *testing.T, db *gorm.DB) models.Session {
	t.Helper()

	var session models.Session
	require.NoError(t, db.Where("is_active = ?", true).First(&session).Error)
	return session
}

// UseJWTSecret installs a signing secret for gate tokens
func UseJWTSecret(t *testing.T) {
	t.Helper()
	SetConfig(t, &config.JWTSecret, "test-secret-0123456789abcdef")
}
