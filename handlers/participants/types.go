package participants

import (
	"errors"
	"net/http"

	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

// Error messages
const (
	ErrInvalidRequest          = "Invalid request data"
	ErrParticipantNotFound     = "Participant not found"
	ErrFailedFetchParticipants = "Failed to fetch participants"
	ErrFailedCreateParticipant = "Failed to register participant"
	ErrFailedDeleteParticipant = "Failed to delete participant"
	ErrFailedExport            = "Failed to export participants"
	ErrSessionNotFound         = "Session not found"
)

// CreateParticipantRequest is the body of the manual and QR form registrations
type CreateParticipantRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	LastName string `json:"last_name" form:"last_name" binding:"required"`
	Email    string `json:"email" form:"email"`
}

func (r CreateParticipantRequest) toInput() services.ParticipantInput {
	return services.ParticipantInput{
		Name:     r.Name,
		LastName: r.LastName,
		Email:    r.Email,
	}
}

// respondWithServiceError maps service errors to HTTP responses
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case services.IsValidationError(err):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrParticipantNotFound):
		response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
	case errors.Is(err, services.ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, ErrSessionNotFound)
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
