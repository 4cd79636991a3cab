// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAlertInput represents the input for opening a new emergency alert
type CreateAlertInput struct {
	Type        entity.AlertType `json:"type"`
	Location    *entity.Location `json:"location,omitempty"`
	Description string           `json:"description,omitempty"`
}

// EmergencyUsecase defines the interface for the emergency alert workflow.
// All lifecycle transitions are serialized per alert; concurrent calls for
// the same alert observe a consistent before/after ordering.
type EmergencyUsecase interface {
	// CreateAlert opens a new alert for the user, arms the response and
	// escalation timers and announces the alert on the event bus.
	CreateAlert(ctx context.Context, userID uuid.UUID, input *CreateAlertInput) (*entity.Alert, error)

	// AcknowledgeAlert marks an active alert as seen by a responder.
	// Acknowledging twice is a no-op; the escalation chain keeps running
	// until the alert is resolved or cancelled.
	AcknowledgeAlert(ctx context.Context, alertID uuid.UUID, acknowledgedBy string) (*entity.Alert, error)

	// ResolveAlert closes an active or acknowledged alert and cancels its
	// pending timers. The resolution note, when given, is recorded on the
	// timeline.
	ResolveAlert(ctx context.Context, alertID uuid.UUID, resolvedBy, resolution string) (*entity.Alert, error)

	// CancelAlert dismisses an alert as a false alarm and cancels its
	// pending timers. The reason, when given, is recorded on the timeline.
	// Terminal alerts cannot be cancelled.
	CancelAlert(ctx context.Context, alertID uuid.UUID, cancelledBy, reason string) (*entity.Alert, error)

	// EscalateAlert raises the escalation level of an alert by one, firing
	// that level's notifications. Acknowledgement does not stop the chain;
	// resolved and cancelled alerts are left untouched.
	EscalateAlert(ctx context.Context, alertID uuid.UUID) error

	// GetAlert retrieves a single alert.
	GetAlert(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error)

	// GetActiveAlerts retrieves the user's alerts still requiring attention.
	GetActiveAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// GetAlertHistory retrieves the user's alert history, newest first.
	GetAlertHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Alert, error)

	// HandleScheduledJob consumes a fired response or escalation timer.
	// Delivery is at-least-once; duplicate and late fires are safe no-ops.
	HandleScheduledJob(ctx context.Context, job *entity.ScheduledJob) error
}
