package participants

import (
	"net/http"
	"strconv"

	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateParticipant registers a participant by hand
// @Summary Register a participant
// @Description Register a participant in the active session
// @Tags Participants
// @Accept json
// @Produce json
// @Param participant body CreateParticipantRequest true "Participant"
// @Success 201 {object} models.Participant
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants [post]
// @Security PasswordGate
func CreateParticipant(c *gin.Context) {
	register(c, services.ChannelManual)
}

// Join is the public registration form behind the printed QR code
// @Summary Join the raffle
// @Description Public registration form reached by scanning the event QR code
// @Tags Participants
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param participant body CreateParticipantRequest true "Participant"
// @Success 201 {object} models.Participant
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
func Join(c *gin.Context) {
	register(c, services.ChannelQrForm)
}

func register(c *gin.Context, channel string) {
	var req CreateParticipantRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	participant, err := services.CreateParticipant(c.Request.Context(), req.toInput(), channel)
	if err != nil {
		respondWithServiceError(c, err, ErrFailedCreateParticipant)
		return
	}

	response.Created(c, participant)
}

// ListParticipants lists the participants of a session
// @Summary List participants
// @Description List the participants of a session, the active one by default
// @Tags Participants
// @Produce json
// @Param session_id query string false "Session ID"
// @Param available query bool false "Only participants that have not won yet"
// @Success 200 {array} models.Participant
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants [get]
// @Security PasswordGate
func ListParticipants(c *gin.Context) {
	onlyAvailable, _ := strconv.ParseBool(c.Query("available"))

	participants, err := services.ListParticipants(c.Request.Context(), c.Query("session_id"), onlyAvailable)
	if err != nil {
		respondWithServiceError(c, err, ErrFailedFetchParticipants)
		return
	}

	c.JSON(http.StatusOK, participants)
}

// GetParticipant returns one participant
// @Summary Get a participant
// @Tags Participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} models.Participant
// @Failure 404 {object} map[string]string
// @Router /participants/{id} [get]
// @Security PasswordGate
func GetParticipant(c *gin.Context) {
	participant, err := services.GetParticipant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, ErrFailedFetchParticipants)
		return
	}

	c.JSON(http.StatusOK, participant)
}

// DeleteParticipant removes a participant
// @Summary Delete a participant
// @Tags Participants
// @Param id path string true "Participant ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants/{id} [delete]
// @Security PasswordGate
func DeleteParticipant(c *gin.Context) {
	if err := services.DeleteParticipant(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, ErrFailedDeleteParticipant)
		return
	}

	response.NoContent(c)
}

// ExportParticipants downloads the participants and winners as an Excel workbook
// @Summary Export participants
// @Tags Participants
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param session_id query string false "Session ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants/export [get]
// @Security PasswordGate
func ExportParticipants(c *gin.Context) {
	buf, filename, err := services.ExportParticipants(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondWithServiceError(c, err, ErrFailedExport)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
