package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSampleModel is the GORM-specific struct for the 'location_samples' table.
// Samples are written once and read back in descending timestamp order.
type LocationSampleModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_location_samples_user_ts,priority:1"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null"`
	Accuracy     float64   `gorm:"type:decimal(10,2)"`
	Speed        *float64  `gorm:"type:decimal(10,4)"`
	Heading      *float64  `gorm:"type:decimal(6,2)"`
	Altitude     *float64  `gorm:"type:decimal(10,2)"`
	BatteryLevel *float64  `gorm:"type:decimal(5,2)"`
	Source       string    `gorm:"type:text"`
	Timestamp    time.Time `gorm:"not null;index:idx_location_samples_user_ts,priority:2,sort:desc"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationSampleModel) TableName() string {
	return "location_samples"
}
