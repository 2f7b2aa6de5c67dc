package qrrefs

import (
	"hypnoraffle/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the QR ref management routes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	refs := r.Group("/qr-refs")
	{
		refs.GET("", ListQrRefs)
		refs.POST("", CreateQrRef)
		refs.GET("/:id", GetQrRef)
		refs.PATCH("/:id", UpdateQrRef)
		refs.DELETE("/:id", DeleteQrRef)
		refs.POST("/:id/toggle", ToggleQrRef)
		refs.GET("/:id/image", GetQrImage)
		refs.GET("/:id/scans", ListScans)
		refs.GET("/:id/stats", GetScanStats)
	}
}

// RegisterRedirectRoute registers the public slug redirect printed in the QR codes
func RegisterRedirectRoute(r gin.IRoutes) {
	r.GET(services.FallbackPath, Fallback)
	r.GET("/qr-ref/:slug", Redirect)
}
