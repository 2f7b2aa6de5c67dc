package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"hypnoraffle/database"
	"hypnoraffle/metrics"
	"hypnoraffle/models"
	"hypnoraffle/realtime"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MaxDrawCount = 50

// RaffleState summarizes the pools of a session
type RaffleState struct {
	SessionID string `json:"session_id,omitempty"`
	Total     int64  `json:"total"`
	Available int64  `json:"available"`
	Winners   int64  `json:"winners"`
}

// Draw picks up to count winners uniformly at random from the available pool of a session.
// Each winner is claimed with a conditional update, so concurrent draws never return the same participant.
func Draw(ctx context.Context, sessionID string, count int) ([]models.Participant, error) {
	defer metrics.RecordDBOperation("draw", "participants", time.Now())

	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxDrawCount {
		return nil, ErrInvalidDrawCount
	}

	sid, err := resolveSessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var winners []models.Participant
	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pool := tx.Where("won = ?", false)
		if sid != "" {
			pool = pool.Where("session_id = ?", sid)
		}

		var available []models.Participant
		if err := pool.Find(&available).Error; err != nil {
			return fmt.Errorf("failed to fetch available participants: %w", err)
		}
		if len(available) == 0 {
			return ErrNoAvailableParticipants
		}

		rand.Shuffle(len(available), func(i, j int) {
			available[i], available[j] = available[j], available[i]
		})

		now := time.Now()
		for _, candidate := range available {
			if len(winners) == count {
				break
			}

			result := tx.Model(&models.Participant{}).
				Where("id = ? AND won = ?", candidate.ID, false).
				Updates(map[string]interface{}{"won": true, "won_at": now})
			if result.Error != nil {
				return fmt.Errorf("failed to mark winner: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				// Claimed by a concurrent draw
				continue
			}

			candidate.Won = true
			candidate.WonAt = &now
			winners = append(winners, candidate)
		}

		if len(winners) == 0 {
			return ErrNoAvailableParticipants
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RaffleWinners.Add(float64(len(winners)))
	for _, winner := range winners {
		zap.L().Info("raffle winner drawn",
			zap.String("participant_id", winner.ID),
			zap.String("display_name", winner.DisplayName),
		)
	}

	notifyWinners(winners)
	publishCollection(ctx, realtime.CollectionParticipants)
	return winners, nil
}

// ListWinners returns the winners of a session in draw order
func ListWinners(ctx context.Context, sessionID string) ([]models.Participant, error) {
	sid, err := resolveSessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	query := database.DB.WithContext(ctx).Where("won = ?", true)
	if sid != "" {
		query = query.Where("session_id = ?", sid)
	}

	var winners []models.Participant
	if err := query.Order("won_at ASC").Find(&winners).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch winners: %w", err)
	}
	return winners, nil
}

// ResetRaffle puts every winner of a session back into the available pool
func ResetRaffle(ctx context.Context, sessionID string) (int64, error) {
	sid, err := resolveSessionID(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	query := database.DB.WithContext(ctx).Model(&models.Participant{}).Where("won = ?", true)
	if sid != "" {
		query = query.Where("session_id = ?", sid)
	}

	result := query.Updates(map[string]interface{}{"won": false, "won_at": nil})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset raffle: %w", result.Error)
	}

	publishCollection(ctx, realtime.CollectionParticipants)
	return result.RowsAffected, nil
}

// GetRaffleState counts the participants, available pool and winners of a session
func GetRaffleState(ctx context.Context, sessionID string) (*RaffleState, error) {
	sid, err := resolveSessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	scoped := func() *gorm.DB {
		query := database.DB.WithContext(ctx).Model(&models.Participant{})
		if sid != "" {
			query = query.Where("session_id = ?", sid)
		}
		return query
	}

	state := RaffleState{SessionID: sid}
	if err := scoped().Count(&state.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}
	if err := scoped().Where("won = ?", true).Count(&state.Winners).Error; err != nil {
		return nil, fmt.Errorf("failed to count winners: %w", err)
	}
	state.Available = state.Total - state.Winners
	return &state, nil
}

// notifyWinners emails the winners that left an address, in the background
func notifyWinners(winners []models.Participant) {
	emailService := NewEmailService()
	if !emailService.Enabled() {
		return
	}

	for _, winner := range winners {
		if winner.Email == nil || *winner.Email == "" {
			continue
		}
		go func(to string, displayName string) {
			if err := emailService.SendWinnerEmail(to, displayName); err != nil {
				zap.L().Error("failed to send winner email", zap.String("to", to), zap.Error(err))
			}
		}(*winner.Email, winner.DisplayName)
	}
}
