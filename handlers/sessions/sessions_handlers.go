package sessions

import (
	"errors"
	"net/http"

	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	ErrNoActiveSession    = "No active session"
	ErrFailedFetchSession = "Failed to fetch sessions"
	ErrFailedCreate       = "Failed to create session"
)

// RegisterRoutes registers the session routes
func RegisterRoutes(r *gin.RouterGroup) {
	sessions := r.Group("/sessions")
	{
		sessions.GET("", ListSessions)
		sessions.POST("", CreateSession)
		sessions.GET("/active", GetActiveSession)
	}
}

// CreateSession starts a new raffle session
// @Summary Start a new session
// @Description Deactivate every session and create a new active one
// @Tags Sessions
// @Produce json
// @Success 201 {object} models.Session
// @Failure 500 {object} map[string]string
// @Router /sessions [post]
// @Security PasswordGate
func CreateSession(c *gin.Context) {
	session, err := services.CreateSession(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}
	response.Created(c, session)
}

// GetActiveSession returns the active session
// @Summary Get the active session
// @Tags Sessions
// @Produce json
// @Success 200 {object} models.Session
// @Failure 404 {object} map[string]string
// @Router /sessions/active [get]
// @Security PasswordGate
func GetActiveSession(c *gin.Context) {
	session, err := services.GetActiveSession(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			response.Error(c, http.StatusNotFound, ErrNoActiveSession)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchSession)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListSessions lists every session, newest first
// @Summary List sessions
// @Tags Sessions
// @Produce json
// @Success 200 {array} models.Session
// @Failure 500 {object} map[string]string
// @Router /sessions [get]
// @Security PasswordGate
func ListSessions(c *gin.Context) {
	sessions, err := services.ListSessions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchSession)
		return
	}
	c.JSON(http.StatusOK, sessions)
}
