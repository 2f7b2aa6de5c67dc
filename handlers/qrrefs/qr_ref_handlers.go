package qrrefs

import (
	"net/http"
	"strconv"
	"time"

	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

// [POST] CreateQrRef
// @Summary Create a QR ref
// @Description Create a slug to target URL mapping tracked by the redirect endpoint
// @Tags QR refs
// @Accept json
// @Produce json
// @Param qrRef body CreateQrRefRequest true "QR ref"
// @Success 201 {object} QrRefResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /qr-refs [post]
// @Security PasswordGate
func CreateQrRef(c *gin.Context) {
	var req CreateQrRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	ref, err := services.CreateQrRef(c.Request.Context(), req.toInput())
	if err != nil {
		respondWithServiceError(c, err, ErrFailedCreateQrRef)
		return
	}

	response.Created(c, toResponse(ref))
}

// [GET] ListQrRefs
// @Summary List QR refs
// @Tags QR refs
// @Produce json
// @Param category query string false "Category"
// @Param active query bool false "Active flag"
// @Success 200 {array} QrRefResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /qr-refs [get]
// @Security PasswordGate
func ListQrRefs(c *gin.Context) {
	filter := services.QrRefFilter{Category: c.Query("category")}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidActive)
			return
		}
		filter.IsActive = &active
	}

	refs, err := services.ListQrRefs(c.Request.Context(), filter)
	if err != nil {
		respondWithServiceError(c, err, ErrFailedFetchQrRefs)
		return
	}

	c.JSON(http.StatusOK, toResponses(refs))
}

// [GET] GetQrRef
// @Summary Get a QR ref
// @Tags QR refs
// @Produce json
// @Param id path string true "QR ref ID"
// @Success 200 {object} QrRefResponse
// @Failure 404 {object} map[string]string
// @Router /qr-refs/{id} [get]
// @Security PasswordGate
func GetQrRef(c *gin.Context) {
	ref, err := services.GetQrRef(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, ErrFailedFetchQrRefs)
		return
	}

	c.JSON(http.StatusOK, toResponse(ref))
}

// [PATCH] UpdateQrRef
// @Summary Update a QR ref
// @Description Only the fields present in the body are changed
// @Tags QR refs
// @Accept json
// @Produce json
// @Param id path string true "QR ref ID"
// @Param qrRef body UpdateQrRefRequest true "Fields to update"
// @Success 200 {object} QrRefResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /qr-refs/{id} [patch]
// @Security PasswordGate
func UpdateQrRef(c *gin.Context) {
	var req UpdateQrRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	ref, err := services.UpdateQrRef(c.Request.Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		respondWithServiceError(c, err, ErrFailedUpdateQrRef)
		return
	}

	c.JSON(http.StatusOK, toResponse(ref))
}

// [POST] ToggleQrRef
// @Summary Toggle a QR ref
// @Description Flip the active flag
// @Tags QR refs
// @Produce json
// @Param id path string true "QR ref ID"
// @Success 200 {object} QrRefResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /qr-refs/{id}/toggle [post]
// @Security PasswordGate
func ToggleQrRef(c *gin.Context) {
	ref, err := services.ToggleQrRef(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, ErrFailedUpdateQrRef)
		return
	}

	c.JSON(http.StatusOK, toResponse(ref))
}

// [DELETE] DeleteQrRef
// @Summary Delete a QR ref
// @Description Delete a QR ref and its scans
// @Tags QR refs
// @Param id path string true "QR ref ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /qr-refs/{id} [delete]
// @Security PasswordGate
func DeleteQrRef(c *gin.Context) {
	if err := services.DeleteQrRef(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, ErrFailedDeleteQrRef)
		return
	}

	response.NoContent(c)
}

// [GET] GetQrImage
// @Summary QR code image
// @Description PNG QR code encoding the public redirect URL of the ref
// @Tags QR refs
// @Produce png
// @Param id path string true "QR ref ID"
// @Param size query int false "Size in pixels (128 to 1024, default 256)"
// @Param download query bool false "Send as an attachment"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /qr-refs/{id}/image [get]
// @Security PasswordGate
func GetQrImage(c *gin.Context) {
	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidSize)
			return
		}
		size = n
	}

	ref, err := services.GetQrRef(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, ErrFailedImage)
		return
	}

	png, err := services.QrImage(ref, size)
	if err != nil {
		respondWithServiceError(c, err, ErrFailedImage)
		return
	}

	if download, _ := strconv.ParseBool(c.Query("download")); download {
		c.Header("Content-Disposition", `attachment; filename="qr-`+ref.Slug+`.png"`)
	}
	c.Data(http.StatusOK, "image/png", png)
}

// [GET] ListScans
// @Summary List scans
// @Description Latest scans of a QR ref, newest first
// @Tags QR refs
// @Produce json
// @Param id path string true "QR ref ID"
// @Param limit query int false "Maximum number of scans (default 100, max 1000)"
// @Success 200 {array} models.QrScan
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /qr-refs/{id}/scans [get]
// @Security PasswordGate
func ListScans(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(c, http.StatusBadRequest, ErrInvalidLimit)
			return
		}
		limit = n
	}

	scans, err := services.ListScans(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondWithServiceError(c, err, ErrFailedFetchScans)
		return
	}

	c.JSON(http.StatusOK, scans)
}

// [GET] GetScanStats
// @Summary Scan statistics
// @Description Scans of a QR ref by device type, country and day (last 30 days)
// @Tags QR refs
// @Produce json
// @Param id path string true "QR ref ID"
// @Success 200 {object} services.ScanStats
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /qr-refs/{id}/stats [get]
// @Security PasswordGate
func GetScanStats(c *gin.Context) {
	stats, err := services.GetScanStats(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		respondWithServiceError(c, err, ErrFailedFetchScans)
		return
	}

	c.JSON(http.StatusOK, stats)
}
