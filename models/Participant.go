package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Participant represents a raffle entrant
type Participant struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name"`
	LastName    string     `gorm:"type:varchar(50);not null" json:"last_name"`
	DisplayName string     `gorm:"type:varchar(60);not null" json:"display_name"`
	SessionID   *string    `gorm:"type:uuid;index" json:"session_id,omitempty"`
	Email       *string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Won         bool       `gorm:"not null;default:false;index" json:"won"`
	WonAt       *time.Time `json:"won_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Session     *Session   `gorm:"foreignKey:SessionID" json:"-"`
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
