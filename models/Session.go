package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session groups the participants of one raffle evening. Only one session is active at a time.
type Session struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	IsActive     bool           `gorm:"not null;default:false;index" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	Participants []*Participant `gorm:"foreignKey:SessionID" json:"participants,omitempty"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
