package middleware

import (
	"net/http"

	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the gate token for clients that do not keep cookies.
// Authorization is left to the Basic gate.
const TokenHeader = "X-Auth-Token"

const gateClaimsKey = "gate_claims"

// PasswordGate requires a valid token issued by /auth/unlock when a site password is configured
func PasswordGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !services.PasswordGateEnabled() {
			c.Next()
			return
		}

		claims, err := GateClaims(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Password required")
			return
		}

		c.Set(gateClaimsKey, claims)
		c.Next()
	}
}

// GateClaims validates the gate tokens sent with the request, cookie first, then header.
// The first valid one wins; otherwise the last validation error is returned.
func GateClaims(c *gin.Context) (*services.GateClaims, error) {
	err := services.ErrInvalidToken
	for _, token := range gateTokens(c) {
		var claims *services.GateClaims
		if claims, err = services.ValidateToken(c.Request.Context(), token); err == nil {
			return claims, nil
		}
	}
	return nil, err
}

func gateTokens(c *gin.Context) []string {
	var tokens []string
	if cookie, err := c.Cookie(services.AuthCookieName); err == nil && cookie != "" {
		tokens = append(tokens, cookie)
	}
	if header := c.GetHeader(TokenHeader); header != "" {
		tokens = append(tokens, header)
	}
	return tokens
}
