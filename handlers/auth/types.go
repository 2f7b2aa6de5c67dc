package auth

import (
	"net/http"
	"time"

	"hypnoraffle/services"

	"github.com/gin-gonic/gin"
)

// User facing messages
const (
	ErrPasswordRequired    = "Please enter the password"
	ErrIncorrectPassword   = "Incorrect password"
	ErrInvalidRequest      = "Invalid request data"
	ErrTokenGenerateFailed = "Failed to generate token"
	ErrLogoutFailed        = "Failed to lock"
	MsgUnlocked            = "Unlocked"
	MsgLocked              = "Locked"
)

// UnlockRequest carries the site password
type UnlockRequest struct {
	Password string `json:"password" form:"password"`
}

// UnlockResponse is returned after a successful unlock
type UnlockResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CheckResponse reports the gate status of the caller
type CheckResponse struct {
	Enabled       bool       `json:"enabled"`
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// setCookieToken sets the gate token as a secure HTTP-only cookie
func setCookieToken(c *gin.Context, token string, maxAge time.Duration) {
	secure := c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		services.AuthCookieName, // name
		token,                   // value
		int(maxAge.Seconds()),   // max age in seconds
		"/",                     // path
		"",                      // domain
		secure,                  // secure (HTTPS only)
		true,                    // httpOnly (not accessible via JavaScript)
	)
}

func clearCookieToken(c *gin.Context) {
	setCookieToken(c, "", -time.Second)
}
