package services

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrNoActiveSession     = errors.New("no active session")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidName         = errors.New("name must be between 2 and 50 characters")
	ErrInvalidLastName     = errors.New("last name must be between 2 and 50 characters")
	ErrInvalidEmail        = errors.New("email must be a valid address of at most 255 characters")

	ErrNoAvailableParticipants = errors.New("no available participants to draw from")
	ErrInvalidDrawCount        = errors.New("draw count must be between 1 and 50")

	ErrQrRefNotFound      = errors.New("QR ref not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidQrRefName   = errors.New("name is required and must be at most 100 characters")
	ErrInvalidDescription = errors.New("description must be at most 255 characters")
	ErrInvalidCategory    = errors.New("category must be at most 50 characters")
	ErrInvalidSlug        = errors.New("slug must contain only lowercase letters, digits and single dashes")
	ErrInvalidTargetURL   = errors.New("target URL must be an absolute http or https URL")
	ErrInvalidImageSize   = errors.New("image size must be between 128 and 1024 pixels")

	ErrPasswordRequired  = errors.New("password is required")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

var validationErrors = []error{
	ErrInvalidName,
	ErrInvalidLastName,
	ErrInvalidEmail,
	ErrInvalidDrawCount,
	ErrInvalidQrRefName,
	ErrInvalidDescription,
	ErrInvalidCategory,
	ErrInvalidSlug,
	ErrInvalidTargetURL,
	ErrInvalidImageSize,
}

// IsValidationError reports whether err was caused by invalid caller input
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
