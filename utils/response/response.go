package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes {"error": message} with the given status
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Abort writes the error body and stops the handler chain
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// Created writes a freshly created resource
func Created(c *gin.Context, resource interface{}) {
	c.JSON(http.StatusCreated, resource)
}

// NoContent acknowledges a deletion
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
