package model

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyAlertModel is the GORM-specific struct for the 'emergency_alerts' table.
// Timeline and Response are stored as JSONB documents; the timeline is append-only
// so the whole document is rewritten on every save.
type EmergencyAlertModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Type            string    `gorm:"type:text;not null"`
	Status          string    `gorm:"type:text;not null;index"`
	Priority        string    `gorm:"type:text;not null"`
	EscalationLevel int       `gorm:"not null;default:0"`
	Latitude        *float64  `gorm:"type:decimal(10,8)"`
	Longitude       *float64  `gorm:"type:decimal(11,8)"`
	Accuracy        *float64  `gorm:"type:decimal(10,2)"`
	Address         string    `gorm:"type:text"`
	Description     string    `gorm:"type:text"`
	Response        []byte    `gorm:"type:jsonb;not null;default:'{}'"`
	Timeline        []byte    `gorm:"type:jsonb;not null;default:'[]'"`
	ResolvedAt      *time.Time
	ResolvedBy      string `gorm:"type:text"`
	Version         int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmergencyAlertModel) TableName() string {
	return "emergency_alerts"
}
