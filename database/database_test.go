package database_test

import (
	"errors"
	"path/filepath"
	"testing"

	"hypnoraffle/database"
	"hypnoraffle/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectPopulatesOnce(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "populate.db")

	db, err := database.Connect(sqlite.Open(dsn))
	require.NoError(t, err)

	var sessions []models.Session
	require.NoError(t, db.Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].IsActive)

	// A second start must not add another session
	require.NoError(t, database.Populate(db))
	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUniqueSlugIsTranslated(t *testing.T) {
	db, err := database.Connect(sqlite.Open(filepath.Join(t.TempDir(), "slug.db")))
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.QrRef{Name: "A", Slug: "same", IsActive: true}).Error)
	err = db.Create(&models.QrRef{Name: "B", Slug: "same", IsActive: true}).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, database.IsNotFound(gorm.ErrRecordNotFound))
	assert.False(t, database.IsNotFound(errors.New("boom")))
}

func TestInitRedisSkippedWithoutHost(t *testing.T) {
	require.NoError(t, database.InitRedis())
	assert.Nil(t, database.REDIS)
}
