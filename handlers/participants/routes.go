package participants

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the participant management routes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	participants := r.Group("/participants")
	{
		participants.GET("", ListParticipants)
		participants.POST("", CreateParticipant)
		participants.GET("/export", ExportParticipants)
		participants.GET("/:id", GetParticipant)
		participants.DELETE("/:id", DeleteParticipant)
	}
}

// RegisterPublicRoutes registers the registration form posted from the "scan to enter" QR code
func RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/join", Join)
}
