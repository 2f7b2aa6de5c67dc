package qrrefs

import (
	"errors"
	"net/http"
	"time"

	"hypnoraffle/models"
	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

// Error messages
const (
	ErrInvalidRequest    = "Invalid request data"
	ErrQrRefNotFound     = "QR ref not found"
	ErrSlugTaken         = "Slug already in use"
	ErrFailedFetchQrRefs = "Failed to fetch QR refs"
	ErrFailedCreateQrRef = "Failed to create QR ref"
	ErrFailedUpdateQrRef = "Failed to update QR ref"
	ErrFailedDeleteQrRef = "Failed to delete QR ref"
	ErrFailedImage       = "Failed to render QR code"
	ErrFailedFetchScans  = "Failed to fetch scans"
	ErrInvalidSize       = "Invalid image size"
	ErrInvalidLimit      = "Invalid limit"
	ErrInvalidActive     = "Invalid active filter"
)

// CreateQrRefRequest is the body of a QR ref creation; slug is derived from name when omitted
type CreateQrRefRequest struct {
	Name        string     `json:"name" binding:"required"`
	Slug        string     `json:"slug"`
	TargetURL   string     `json:"target_url"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	IsActive    *bool      `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// UpdateQrRefRequest is a partial update; clear_expiry removes the expiry date
type UpdateQrRefRequest struct {
	Name        *string    `json:"name"`
	Slug        *string    `json:"slug"`
	TargetURL   *string    `json:"target_url"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	IsActive    *bool      `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ClearExpiry bool       `json:"clear_expiry"`
}

// QrRefResponse is a QR ref with the URL encoded in its printed code
type QrRefResponse struct {
	models.QrRef
	PublicURL string `json:"public_url"`
}

func toResponse(ref *models.QrRef) QrRefResponse {
	return QrRefResponse{QrRef: *ref, PublicURL: services.PublicURL(ref)}
}

func toResponses(refs []models.QrRef) []QrRefResponse {
	out := make([]QrRefResponse, 0, len(refs))
	for i := range refs {
		out = append(out, toResponse(&refs[i]))
	}
	return out
}

func (r CreateQrRefRequest) toInput() services.QrRefInput {
	return services.QrRefInput{
		Name:        r.Name,
		Slug:        r.Slug,
		TargetURL:   r.TargetURL,
		Description: r.Description,
		Category:    r.Category,
		IsActive:    r.IsActive,
		ExpiresAt:   r.ExpiresAt,
	}
}

func (r UpdateQrRefRequest) toUpdate() services.QrRefUpdate {
	return services.QrRefUpdate{
		Name:        r.Name,
		Slug:        r.Slug,
		TargetURL:   r.TargetURL,
		Description: r.Description,
		Category:    r.Category,
		IsActive:    r.IsActive,
		ExpiresAt:   r.ExpiresAt,
		ClearExpiry: r.ClearExpiry,
	}
}

func respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case services.IsValidationError(err):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrQrRefNotFound):
		response.Error(c, http.StatusNotFound, ErrQrRefNotFound)
	case errors.Is(err, services.ErrSlugTaken):
		response.Error(c, http.StatusConflict, ErrSlugTaken)
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
