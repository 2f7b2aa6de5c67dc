package services

import (
	"context"
	"testing"

	"hypnoraffle/realtime"
	"hypnoraffle/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionDeactivatesPrevious(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	initial := testutil.ActiveSession(t, db)

	created, err := CreateSession(ctx)
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, initial.ID, created.ID)

	active, err := GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, active.ID)

	var activeCount int64
	require.NoError(t, db.Table("sessions").Where("is_active = ?", true).Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)

	sessions, err := ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestGetActiveSessionWhenNoneIsActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	require.NoError(t, db.Exec("UPDATE sessions SET is_active = ?", false).Error)

	_, err := GetActiveSession(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveSession)

	// Without an active session the listings are not filtered
	sid, err := resolveSessionID(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, sid)
}

func TestResolveSessionID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	active := testutil.ActiveSession(t, db)

	sid, err := resolveSessionID(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, active.ID, sid)

	sid, err = resolveSessionID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.ID, sid)

	_, err = resolveSessionID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = resolveSessionID(ctx, "1; DROP TABLE sessions")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCollectionSnapshot(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := CreateParticipant(ctx, ParticipantInput{Name: "Snap", LastName: "Shot"}, ChannelManual)
	require.NoError(t, err)

	for _, collection := range []string{
		realtime.CollectionParticipants,
		realtime.CollectionSessions,
		realtime.CollectionQrRefs,
		realtime.CollectionQrScans,
	} {
		_, err := CollectionSnapshot(ctx, collection)
		assert.NoError(t, err, collection)
	}

	data, err := CollectionSnapshot(ctx, realtime.CollectionParticipants)
	require.NoError(t, err)
	assert.Len(t, data, 1)

	_, err = CollectionSnapshot(ctx, "users")
	assert.Error(t, err)
}
