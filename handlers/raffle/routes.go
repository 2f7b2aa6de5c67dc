package raffle

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the raffle routes
func RegisterRoutes(r *gin.RouterGroup) {
	raffle := r.Group("/raffle")
	{
		raffle.GET("", GetState)
		raffle.POST("/draw", Draw)
		raffle.GET("/winners", ListWinners)
		raffle.POST("/reset", Reset)
	}
}
