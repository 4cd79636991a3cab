// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType classifies what kind of emergency an alert represents.
type AlertType string

const (
	AlertTypeMedical           AlertType = "medical"
	AlertTypeFire              AlertType = "fire"
	AlertTypePolice            AlertType = "police"
	AlertTypePanic             AlertType = "panic"
	AlertTypeAutoDetect        AlertType = "auto_detect"
	AlertTypeCheckInMissed     AlertType = "check_in_missed"
	AlertTypeGeofenceViolation AlertType = "geofence_violation"
	AlertTypeManual            AlertType = "manual"
)

// String returns the string representation of the AlertType.
func (t AlertType) String() string {
	return string(t)
}

// Valid reports whether the type is one of the known alert types.
func (t AlertType) Valid() bool {
	switch t {
	case AlertTypeMedical, AlertTypeFire, AlertTypePolice, AlertTypePanic,
		AlertTypeAutoDetect, AlertTypeCheckInMissed, AlertTypeGeofenceViolation, AlertTypeManual:
		return true
	default:
		return false
	}
}

// AlertStatus tracks an alert through its lifecycle.
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusCancelled    AlertStatus = "cancelled"
)

// Terminal reports whether the status permits no further mutation.
func (s AlertStatus) Terminal() bool {
	return s == AlertStatusResolved || s == AlertStatusCancelled
}

// AlertPriority is the urgency derived from the alert type.
type AlertPriority string

const (
	PriorityLow      AlertPriority = "low"
	PriorityMedium   AlertPriority = "medium"
	PriorityHigh     AlertPriority = "high"
	PriorityCritical AlertPriority = "critical"
)

// MaxEscalationLevel is the highest escalation level an alert can reach.
const MaxEscalationLevel = 3

// Location is a geographic point snapshot attached to alerts and samples.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"` // Horizontal accuracy in meters, 0 when unknown.
	Address   string  `json:"address,omitempty"`
}

// TimelineEntry is a single immutable record in an alert's audit trail.
type TimelineEntry struct {
	Action      string    `json:"action"`
	Timestamp   time.Time `json:"timestamp"`
	Details     string    `json:"details"`
	PerformedBy string    `json:"performed_by"`
}

// ResponseState tracks which escalation tiers have been notified for an alert.
type ResponseState struct {
	ContactsNotified   bool       `json:"contacts_notified"`
	ContactsNotifiedAt *time.Time `json:"contacts_notified_at,omitempty"`
	PoliceNotified     bool       `json:"police_notified"`
	PoliceNotifiedAt   *time.Time `json:"police_notified_at,omitempty"`
	MedicalNotified    bool       `json:"medical_notified"`
	MedicalNotifiedAt  *time.Time `json:"medical_notified_at,omitempty"`
}

// Alert represents a single emergency event raised for a user, tracked through
// its lifecycle. While the status is active the escalation level only ever
// moves upward, capped at MaxEscalationLevel; once resolved or cancelled the
// alert is terminal and no workflow method mutates it again.
type Alert struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Type            AlertType       `json:"type"`
	Status          AlertStatus     `json:"status"`
	Priority        AlertPriority   `json:"priority"`
	EscalationLevel int             `json:"escalation_level"`
	Location        *Location       `json:"location,omitempty"`
	Description     string          `json:"description,omitempty"`
	Response        ResponseState   `json:"response"`
	Timeline        []TimelineEntry `json:"timeline"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	ResolvedBy      string          `json:"resolved_by,omitempty"`

	// Version is the optimistic concurrency token checked by SaveAlert.
	Version int64 `json:"version"`
}

// AppendTimeline appends an audit entry. The timeline is append-only history;
// existing entries are never reordered or removed.
func (a *Alert) AppendTimeline(action, details, performedBy string) {
	a.Timeline = append(a.Timeline, TimelineEntry{
		Action:      action,
		Timestamp:   time.Now(),
		Details:     details,
		PerformedBy: performedBy,
	})
}

// PriorityForType derives the alert priority from its type. The mapping is
// total over the closed AlertType enum; unknown values fall back to medium.
func PriorityForType(t AlertType) AlertPriority {
	switch t {
	case AlertTypePanic:
		return PriorityCritical
	case AlertTypeMedical:
		return PriorityCritical
	case AlertTypeFire:
		return PriorityCritical
	case AlertTypeAutoDetect:
		return PriorityHigh
	case AlertTypeManual:
		return PriorityHigh
	case AlertTypePolice:
		return PriorityHigh
	case AlertTypeCheckInMissed:
		return PriorityMedium
	case AlertTypeGeofenceViolation:
		return PriorityMedium
	default:
		return PriorityMedium
	}
}
