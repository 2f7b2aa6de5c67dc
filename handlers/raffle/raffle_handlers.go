package raffle

import (
	"errors"
	"io"
	"net/http"

	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

// [POST] Draw
// @Summary Draw winners
// @Description Draw up to count winners (default 1, max 50) at random from the participants that have not won yet
// @Tags Raffle
// @Accept json
// @Produce json
// @Param draw body DrawRequest false "Draw options"
// @Success 200 {object} DrawResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /raffle/draw [post]
// @Security PasswordGate
func Draw(c *gin.Context) {
	var req DrawRequest
	// An empty body draws one winner from the active session
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	winners, err := services.Draw(c.Request.Context(), req.SessionID, req.Count)
	if err != nil {
		respondWithServiceError(c, err, ErrFailedDraw)
		return
	}

	requested := req.Count
	if requested == 0 {
		requested = 1
	}
	c.JSON(http.StatusOK, DrawResponse{Winners: winners, Requested: requested})
}

// [GET] ListWinners
// @Summary List winners
// @Tags Raffle
// @Produce json
// @Param session_id query string false "Session ID"
// @Success 200 {array} models.Participant
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /raffle/winners [get]
// @Security PasswordGate
func ListWinners(c *gin.Context) {
	winners, err := services.ListWinners(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondWithServiceError(c, err, ErrFailedFetchWinners)
		return
	}

	c.JSON(http.StatusOK, winners)
}

// [POST] Reset
// @Summary Reset the raffle
// @Description Put every winner back into the available pool
// @Tags Raffle
// @Produce json
// @Param session_id query string false "Session ID"
// @Success 200 {object} ResetResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /raffle/reset [post]
// @Security PasswordGate
func Reset(c *gin.Context) {
	n, err := services.ResetRaffle(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondWithServiceError(c, err, ErrFailedReset)
		return
	}

	c.JSON(http.StatusOK, ResetResponse{Reset: n})
}

// [GET] GetState
// @Summary Raffle state
// @Description Count the participants, the available pool and the winners
// @Tags Raffle
// @Produce json
// @Param session_id query string false "Session ID"
// @Success 200 {object} services.RaffleState
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /raffle [get]
// @Security PasswordGate
func GetState(c *gin.Context) {
	state, err := services.GetRaffleState(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondWithServiceError(c, err, ErrFailedFetchRaffleInfo)
		return
	}

	c.JSON(http.StatusOK, state)
}
