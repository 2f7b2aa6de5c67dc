package services

import (
	"context"
	"strings"
	"testing"

	"hypnoraffle/models"
	"hypnoraffle/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{"ascii", "John", "Doe", "John D."},
		{"multibyte initial", "Zoé", "Émond", "Zoé É."},
		{"empty last name", "Solo", "", "Solo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDisplayName(tt.first, tt.last))
		})
	}
}

func TestParticipantInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   ParticipantInput
		wantErr error
	}{
		{"valid", ParticipantInput{Name: "Jo", LastName: "Li"}, nil},
		{"name too short after trim", ParticipantInput{Name: " J ", LastName: "Doe"}, ErrInvalidName},
		{"name too long", ParticipantInput{Name: strings.Repeat("a", 51), LastName: "Doe"}, ErrInvalidName},
		{"max length counted in runes", ParticipantInput{Name: strings.Repeat("é", 50), LastName: "Doe"}, nil},
		{"last name too short", ParticipantInput{Name: "John", LastName: "D"}, ErrInvalidLastName},
		{"email is optional", ParticipantInput{Name: "John", LastName: "Doe", Email: "   "}, nil},
		{"email checked after trim", ParticipantInput{Name: "John", LastName: "Doe", Email: " a@b.co "}, nil},
		{"malformed email", ParticipantInput{Name: "John", LastName: "Doe", Email: "nope"}, ErrInvalidEmail},
		{"email too long", ParticipantInput{Name: "John", LastName: "Doe", Email: strings.Repeat("a", 250) + "@b.com"}, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Normalize().Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateParticipant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	active := testutil.ActiveSession(t, db)

	p, err := CreateParticipant(ctx, ParticipantInput{Name: "  John ", LastName: "Doe", Email: " john@example.com "}, ChannelManual)
	require.NoError(t, err)

	assert.Equal(t, "John", p.Name)
	assert.Equal(t, "John D.", p.DisplayName)
	assert.False(t, p.Won)
	require.NotNil(t, p.SessionID)
	assert.Equal(t, active.ID, *p.SessionID)
	require.NotNil(t, p.Email)
	assert.Equal(t, "john@example.com", *p.Email)

	_, err = CreateParticipant(ctx, ParticipantInput{Name: "J", LastName: "Doe"}, ChannelManual)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestCreateParticipantRejectsInvalidEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := CreateParticipant(context.Background(), ParticipantInput{Name: "John", LastName: "Doe", Email: "john@"}, ChannelManual)
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.True(t, IsValidationError(err))

	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateParticipantWithoutActiveSession(t *testing.T) {
	db := testutil.SetupTestDB(t)
	require.NoError(t, db.Exec("UPDATE sessions SET is_active = ?", false).Error)

	p, err := CreateParticipant(context.Background(), ParticipantInput{Name: "Ann", LastName: "Lee"}, ChannelQrForm)
	require.NoError(t, err)
	assert.Nil(t, p.SessionID)
}

func TestListParticipants(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	first, err := CreateParticipant(ctx, ParticipantInput{Name: "First", LastName: "One"}, ChannelManual)
	require.NoError(t, err)
	_, err = CreateParticipant(ctx, ParticipantInput{Name: "Second", LastName: "Two"}, ChannelManual)
	require.NoError(t, err)

	all, err := ListParticipants(ctx, "", false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	_, err = Draw(ctx, "", 1)
	require.NoError(t, err)

	available, err := ListParticipants(ctx, "", true)
	require.NoError(t, err)
	assert.Len(t, available, 1)

	_, err = ListParticipants(ctx, "not-a-uuid", false)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestListParticipantsScopedToActiveSession(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	old, err := CreateParticipant(ctx, ParticipantInput{Name: "Old", LastName: "Timer"}, ChannelManual)
	require.NoError(t, err)

	_, err = CreateSession(ctx)
	require.NoError(t, err)

	_, err = CreateParticipant(ctx, ParticipantInput{Name: "New", LastName: "Comer"}, ChannelManual)
	require.NoError(t, err)

	current, err := ListParticipants(ctx, "", false)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "New", current[0].Name)

	previous, err := ListParticipants(ctx, *old.SessionID, false)
	require.NoError(t, err)
	require.Len(t, previous, 1)
	assert.Equal(t, old.ID, previous[0].ID)
}

func TestGetAndDeleteParticipant(t *testing.T) {
	testutil.SetupTestDB(t)
	ctx := context.Background()

	p, err := CreateParticipant(ctx, ParticipantInput{Name: "Ada", LastName: "Lovelace"}, ChannelManual)
	require.NoError(t, err)

	got, err := GetParticipant(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", got.DisplayName)

	require.NoError(t, DeleteParticipant(ctx, p.ID))

	_, err = GetParticipant(ctx, p.ID)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
	assert.ErrorIs(t, DeleteParticipant(ctx, p.ID), ErrParticipantNotFound)
	assert.ErrorIs(t, DeleteParticipant(ctx, "bogus"), ErrParticipantNotFound)
}
