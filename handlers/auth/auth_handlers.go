package auth

import (
	"errors"
	"io"
	"net/http"

	"hypnoraffle/middleware"
	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Unlock checks the site password and sets the gate cookie
// @Summary Unlock the site
// @Description Compare the SHA-256 of the password with SITE_PASSWORD_HASH and issue a 24h token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body UnlockRequest true "Password"
// @Success 200 {object} UnlockResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/unlock [post]
func Unlock(c *gin.Context) {
	var req UnlockRequest
	// An empty body is reported as a missing password
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	token, expiresAt, err := services.Unlock(req.Password)
	switch {
	case errors.Is(err, services.ErrPasswordRequired):
		response.Error(c, http.StatusBadRequest, ErrPasswordRequired)
		return
	case errors.Is(err, services.ErrIncorrectPassword):
		zap.L().Info("rejected site password", zap.String("ip", c.ClientIP()))
		response.Error(c, http.StatusUnauthorized, ErrIncorrectPassword)
		return
	case err != nil:
		zap.L().Error("failed to issue gate token", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, services.AuthTokenTTL)
	c.JSON(http.StatusOK, UnlockResponse{Message: MsgUnlocked, Token: token, ExpiresAt: expiresAt})
}

// CheckAuth reports whether the caller holds a valid gate token
// @Summary Check the gate
// @Tags Auth
// @Produce json
// @Success 200 {object} CheckResponse
// @Router /auth/check [get]
func CheckAuth(c *gin.Context) {
	if !services.PasswordGateEnabled() {
		c.JSON(http.StatusOK, CheckResponse{Enabled: false, Authenticated: true})
		return
	}

	claims, err := middleware.GateClaims(c)
	if err != nil {
		c.JSON(http.StatusOK, CheckResponse{Enabled: true, Authenticated: false})
		return
	}

	expiresAt := claims.ExpiresAt.Time
	c.JSON(http.StatusOK, CheckResponse{Enabled: true, Authenticated: true, ExpiresAt: &expiresAt})
}

// Lock clears the gate cookie and revokes the token
// @Summary Lock the site
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/lock [post]
func Lock(c *gin.Context) {
	if claims, err := middleware.GateClaims(c); err == nil {
		if err := services.RevokeToken(c.Request.Context(), claims); err != nil {
			zap.L().Error("failed to revoke gate token", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, ErrLogoutFailed)
			return
		}
	}

	clearCookieToken(c)
	c.JSON(http.StatusOK, gin.H{"message": MsgLocked})
}
