package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the password gate
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/unlock", Unlock)
		auth.GET("/check", CheckAuth)
		auth.POST("/lock", Lock)
	}
}
