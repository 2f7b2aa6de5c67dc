package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"hypnoraffle/config"

	"github.com/gin-gonic/gin"
)

const basicRealm = `Basic realm="HypnoRaffle", charset="UTF-8"`

// Paths served without the edge gate
var publicPathPrefixes = []string{"/static/", "/images/", "/favicon.ico"}

// SiteBasicAuth protects every route with the SITE_AUTH_USERNAME / SITE_AUTH_PASSWORD credentials.
// The gate is open when either value is unset.
func SiteBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password := config.SiteAuthUsername, config.SiteAuthPassword
		if username == "" || password == "" || isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		providedUser, providedPass, ok := parseBasicAuth(c.GetHeader("Authorization"))
		if ok && secureEqual(providedUser, username) && secureEqual(providedPass, password) {
			c.Next()
			return
		}

		c.Header("WWW-Authenticate", basicRealm)
		c.Data(http.StatusUnauthorized, "text/plain; charset=utf-8", []byte("Authentication required"))
		c.Abort()
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// parseBasicAuth splits the credentials at the first colon, so passwords may contain colons
func parseBasicAuth(header string) (string, string, bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}

	user, pass, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", false
	}
	return user, pass, true
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
