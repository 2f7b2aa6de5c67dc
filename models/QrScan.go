package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QrScan is one logged visit of a QR ref's redirect endpoint
type QrScan struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	QrRefID     string    `gorm:"type:uuid;not null;index" json:"qr_ref_id"`
	Slug        string    `gorm:"type:varchar(64);not null" json:"slug"`
	UserAgent   string    `gorm:"type:text" json:"user_agent,omitempty"`
	DeviceType  string    `gorm:"type:varchar(20);index" json:"device_type,omitempty"`
	OS          string    `gorm:"column:os;type:varchar(50)" json:"os,omitempty"`
	Browser     string    `gorm:"type:varchar(50)" json:"browser,omitempty"`
	IPAddress   string    `gorm:"column:ip_address;type:varchar(64)" json:"ip_address,omitempty"`
	Country     string    `gorm:"type:varchar(100)" json:"country,omitempty"`
	CountryCode string    `gorm:"type:varchar(2);index" json:"country_code,omitempty"`
	City        string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	Region      string    `gorm:"type:varchar(100)" json:"region,omitempty"`
	Referrer    string    `gorm:"type:text" json:"referrer,omitempty"`
	Language    string    `gorm:"type:varchar(35)" json:"language,omitempty"`
	ScannedAt   time.Time `gorm:"not null;index" json:"scanned_at"`
}

func (s *QrScan) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
