package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName    string    `gorm:"type:text;not null"`
	Phone       string    `gorm:"type:text;not null"`
	Email       string    `gorm:"type:text;uniqueIndex;not null"`
	MedicalInfo string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// EmergencyContactModel is the GORM-specific struct for the 'emergency_contacts' table.
type EmergencyContactModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:text;not null"`
	Phone    string    `gorm:"type:text;not null"`
	Email    string    `gorm:"type:text"`
	FCMToken string    `gorm:"type:text"`
	IsActive bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}

// CheckInScheduleModel is the GORM-specific struct for the 'check_in_schedules' table.
// Interval and grace period are stored in seconds.
type CheckInScheduleModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	IntervalSecs int64     `gorm:"not null"`
	GraceSecs    int64     `gorm:"not null"`
	LastCheckIn  time.Time `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckInScheduleModel) TableName() string {
	return "check_in_schedules"
}
