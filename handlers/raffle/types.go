package raffle

import (
	"errors"
	"net/http"

	"hypnoraffle/models"
	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	ErrInvalidRequest        = "Invalid request data"
	ErrNoAvailable           = "No available participants to draw from"
	ErrSessionNotFound       = "Session not found"
	ErrFailedDraw            = "Failed to draw winners"
	ErrFailedFetchWinners    = "Failed to fetch winners"
	ErrFailedReset           = "Failed to reset raffle"
	ErrFailedFetchRaffleInfo = "Failed to fetch raffle state"
)

// DrawRequest is the body of a draw; count defaults to 1
type DrawRequest struct {
	SessionID string `json:"session_id"`
	Count     int    `json:"count"`
}

// DrawResponse lists the participants drawn
type DrawResponse struct {
	Winners   []models.Participant `json:"winners"`
	Requested int                  `json:"requested"`
}

// ResetResponse reports how many winners went back to the pool
type ResetResponse struct {
	Reset int64 `json:"reset"`
}

func respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidDrawCount):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNoAvailableParticipants):
		response.Error(c, http.StatusConflict, ErrNoAvailable)
	case errors.Is(err, services.ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, ErrSessionNotFound)
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
