package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"hypnoraffle/database"
	"hypnoraffle/metrics"
	"hypnoraffle/models"
	"hypnoraffle/realtime"

	"github.com/go-playground/validator/v10"
)

const (
	MinNameLength = 2
	MaxNameLength = 50
)

var (
	validate = validator.New()
	nameRule = fmt.Sprintf("min=%d,max=%d", MinNameLength, MaxNameLength)
)

// Registration channels reported in metrics
const (
	ChannelManual = "manual"
	ChannelQrForm = "qr_form"
)

// ParticipantInput holds the fields accepted when registering a participant
type ParticipantInput struct {
	Name     string
	LastName string
	Email    string
}

// BuildDisplayName returns the public name shown on the raffle screen: "John D."
func BuildDisplayName(name string, lastName string) string {
	initial, _ := utf8.DecodeRuneInString(lastName)
	if initial == utf8.RuneError {
		return name
	}
	return fmt.Sprintf("%s %c.", name, initial)
}

// Normalize trims the input fields
func (in ParticipantInput) Normalize() ParticipantInput {
	return ParticipantInput{
		Name:     strings.TrimSpace(in.Name),
		LastName: strings.TrimSpace(in.LastName),
		Email:    strings.TrimSpace(in.Email),
	}
}

// Validate checks the name lengths and the optional email of a normalized input
func (in ParticipantInput) Validate() error {
	if err := validate.Var(in.Name, nameRule); err != nil {
		return ErrInvalidName
	}
	if err := validate.Var(in.LastName, nameRule); err != nil {
		return ErrInvalidLastName
	}
	if err := validate.Var(in.Email, "omitempty,email,max=255"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// CreateParticipant registers a participant in the active session
func CreateParticipant(ctx context.Context, input ParticipantInput, channel string) (*models.Participant, error) {
	defer metrics.RecordDBOperation("create", "participants", time.Now())

	in := input.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	participant := models.Participant{
		Name:        in.Name,
		LastName:    in.LastName,
		DisplayName: BuildDisplayName(in.Name, in.LastName),
	}
	if in.Email != "" {
		participant.Email = &in.Email
	}

	active, err := GetActiveSession(ctx)
	switch {
	case err == nil:
		participant.SessionID = &active.ID
	case !errors.Is(err, ErrNoActiveSession):
		return nil, err
	}

	if err := database.DB.WithContext(ctx).Create(&participant).Error; err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	metrics.ParticipantsRegistered.WithLabelValues(channel).Inc()
	publishCollection(ctx, realtime.CollectionParticipants)
	return &participant, nil
}

// ListParticipants returns the participants of a session (the active one when sessionID is empty),
// optionally restricted to the available pool
func ListParticipants(ctx context.Context, sessionID string, onlyAvailable bool) ([]models.Participant, error) {
	defer metrics.RecordDBOperation("list", "participants", time.Now())

	sid, err := resolveSessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	query := database.DB.WithContext(ctx).Model(&models.Participant{})
	if sid != "" {
		query = query.Where("session_id = ?", sid)
	}
	if onlyAvailable {
		query = query.Where("won = ?", false)
	}

	var participants []models.Participant
	if err := query.Order("created_at ASC").Find(&participants).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}
	return participants, nil
}

// GetParticipant returns a participant by id
func GetParticipant(ctx context.Context, id string) (*models.Participant, error) {
	if !validID(id) {
		return nil, ErrParticipantNotFound
	}

	var participant models.Participant
	if err := database.DB.WithContext(ctx).First(&participant, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to fetch participant: %w", err)
	}
	return &participant, nil
}

// DeleteParticipant removes a participant
func DeleteParticipant(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrParticipantNotFound
	}

	result := database.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Participant{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete participant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	publishCollection(ctx, realtime.CollectionParticipants)
	return nil
}
