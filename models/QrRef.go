package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QrRef maps a short slug printed in a QR code to a target URL.
// IsActive has no column default on purpose: gorm would replace an explicit false with it.
type QrRef struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	Slug          string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	TargetURL     string     `gorm:"type:text;not null" json:"target_url"`
	Description   string     `gorm:"type:varchar(255)" json:"description,omitempty"`
	Category      string     `gorm:"type:varchar(50);index" json:"category,omitempty"`
	ScanCount     int64      `gorm:"not null;default:0" json:"scan_count"`
	LastScannedAt *time.Time `json:"last_scanned_at,omitempty"`
	IsActive      bool       `gorm:"not null" json:"is_active"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Scans         []*QrScan  `gorm:"foreignKey:QrRefID;constraint:OnDelete:CASCADE" json:"-"`
}

func (q *QrRef) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// Expired reports whether the ref has an expiry strictly before now
func (q *QrRef) Expired(now time.Time) bool {
	return q.ExpiresAt != nil && q.ExpiresAt.Before(now)
}
