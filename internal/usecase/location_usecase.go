package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/safety"

	"github.com/google/uuid"
)

// UpdateLocationInput represents a position report from a user's device
type UpdateLocationInput struct {
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Accuracy     float64   `json:"accuracy,omitempty"`
	Speed        *float64  `json:"speed,omitempty"`
	Heading      *float64  `json:"heading,omitempty"`
	Altitude     *float64  `json:"altitude,omitempty"`
	BatteryLevel *float64  `json:"battery_level,omitempty"`
	Source       string    `json:"source,omitempty"`
	Timestamp    time.Time `json:"timestamp,omitempty"`
}

// SafetyEvaluation is the outcome of ingesting one location update: the
// stored sample plus whatever the geofence and movement evaluators flagged.
type SafetyEvaluation struct {
	Sample     *entity.LocationSample     `json:"sample"`
	Violations []safety.GeofenceViolation `json:"violations,omitempty"`
	Anomalies  []safety.MovementAnomaly   `json:"anomalies,omitempty"`
}

// GeofenceViolationEvent is the payload published for each fence violation.
type GeofenceViolationEvent struct {
	UserID    uuid.UUID                `json:"user_id"`
	Violation safety.GeofenceViolation `json:"violation"`
}

// MovementAnomalyEvent is the payload published for each movement anomaly.
type MovementAnomalyEvent struct {
	UserID  uuid.UUID              `json:"user_id"`
	Anomaly safety.MovementAnomaly `json:"anomaly"`
}

// LocationUsecase defines the interface for location ingestion and safety
// evaluation.
type LocationUsecase interface {
	// UpdateLocation stores the sample, evaluates the user's geofences and
	// recent movement, and publishes detector events for anything flagged.
	UpdateLocation(ctx context.Context, userID uuid.UUID, input *UpdateLocationInput) (*SafetyEvaluation, error)

	// GetLatestLocation retrieves the user's most recent sample.
	GetLatestLocation(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error)
}
