package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hypnoraffle/database"
	"hypnoraffle/metrics"
	"hypnoraffle/models"
	"hypnoraffle/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveSession returns the currently active session
func GetActiveSession(ctx context.Context) (*models.Session, error) {
	var session models.Session
	err := database.DB.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC").First(&session).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to fetch active session: %w", err)
	}
	return &session, nil
}

// CreateSession deactivates every session and starts a new active one
func CreateSession(ctx context.Context) (*models.Session, error) {
	defer metrics.RecordDBOperation("create", "sessions", time.Now())

	session := models.Session{IsActive: true}
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Session{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate sessions: %w", err)
		}
		if err := tx.Create(&session).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishCollection(ctx, realtime.CollectionSessions)
	publishCollection(ctx, realtime.CollectionParticipants)
	return &session, nil
}

// ListSessions returns all sessions, newest first
func ListSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := database.DB.WithContext(ctx).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	return sessions, nil
}

// resolveSessionID validates an explicit session id, or falls back to the active session.
// It returns "" when no id is given and no session is active, meaning "no session filter".
func resolveSessionID(ctx context.Context, sessionID string) (string, error) {
	if sessionID != "" {
		if !validID(sessionID) {
			return "", ErrSessionNotFound
		}
		var count int64
		if err := database.DB.WithContext(ctx).Model(&models.Session{}).Where("id = ?", sessionID).Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to fetch session: %w", err)
		}
		if count == 0 {
			return "", ErrSessionNotFound
		}
		return sessionID, nil
	}

	active, err := GetActiveSession(ctx)
	if errors.Is(err, ErrNoActiveSession) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return active.ID, nil
}

// validID reports whether id is a well formed UUID; PostgreSQL rejects anything else in uuid columns
func validID(id string) bool {
	return uuid.Validate(id) == nil
}
