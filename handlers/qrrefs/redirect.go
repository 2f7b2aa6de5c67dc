package qrrefs

import (
	"net/http"
	"time"

	"hypnoraffle/metrics"
	"hypnoraffle/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// [GET] Redirect
// @Summary Follow a QR code
// @Description Count the scan and redirect to the target URL. Failures redirect to /qr-ref?error=<tag>
// @Description with tag one of not_found, inactive, expired, no_target, server_error.
// @Tags Redirect
// @Param slug path string true "QR ref slug"
// @Success 307
func Redirect(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("panic while resolving QR ref", zap.Any("panic", r), zap.String("slug", c.Param("slug")))
			metrics.QrRedirects.WithLabelValues(string(services.OutcomeServerError)).Inc()
			redirect(c, services.OutcomeServerError.Location(""))
		}
	}()

	meta := services.ScanMetadataFromRequest(c.Request, c.ClientIP())
	target, outcome := services.ResolveRedirect(c.Request.Context(), c.Param("slug"), meta, time.Now().UTC())
	redirect(c, outcome.Location(target))
}

func redirect(c *gin.Context, location string) {
	// Scans must reach the service every time
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusTemporaryRedirect, location)
}

var fallbackMessages = map[services.RedirectOutcome]string{
	services.OutcomeNotFound:    "This QR code is not registered",
	services.OutcomeInactive:    "This QR code has been deactivated",
	services.OutcomeExpired:     "This QR code has expired",
	services.OutcomeNoTarget:    "This QR code does not point anywhere yet",
	services.OutcomeServerError: "Something went wrong, please scan again",
}

// Fallback is where failed redirects land; it explains the error tag for clients without a frontend
func Fallback(c *gin.Context) {
	tag := services.RedirectOutcome(c.Query("error"))
	message, ok := fallbackMessages[tag]
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": "Scan a QR code to continue"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": string(tag), "message": message})
}
