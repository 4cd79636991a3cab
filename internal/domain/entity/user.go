// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is a person notified when a user's alert escalates.
type EmergencyContact struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email,omitempty"`
	FCMToken string    `json:"fcm_token,omitempty"` // Push token for the contact's companion app.
	IsActive bool      `json:"is_active"`
}

// User holds the identity, medical and contact information attached to alerts
// when police or medical services are notified.
type User struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	MedicalInfo string    `json:"medical_info,omitempty"` // Free-text conditions, allergies, medication.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CheckInSchedule is a recurring safety check-in expectation for a user.
// When a check-in is overdue past the grace period, a check_in_missed alert
// is opened on the user's behalf.
type CheckInSchedule struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Interval    time.Duration `json:"interval"`     // Expected time between check-ins.
	GracePeriod time.Duration `json:"grace_period"` // Allowance past the interval before alerting.
	LastCheckIn time.Time     `json:"last_check_in"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Overdue reports whether the schedule has missed its check-in window as of now.
func (s *CheckInSchedule) Overdue(now time.Time) bool {
	if !s.IsActive {
		return false
	}

	return now.Sub(s.LastCheckIn) > s.Interval+s.GracePeriod
}
