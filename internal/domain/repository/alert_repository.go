// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrStaleAlert is returned when a save is rejected because the alert was
	// modified concurrently (optimistic version mismatch).
	ErrStaleAlert = errors.New("alert version is stale")
)

// AlertRepository defines the interface for alert-related database operations.
// SaveAlert enforces optimistic concurrency: the write only succeeds when the
// stored version matches the version the alert was loaded with.
type AlertRepository interface {
	// CreateAlert persists a new emergency alert.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindAlertByID retrieves an alert by its unique ID.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// SaveAlert persists a mutated alert, rejecting stale versions with ErrStaleAlert.
	// On success the alert's version is advanced in place.
	SaveAlert(ctx context.Context, alert *entity.Alert) error

	// FindActiveAlertsByUser retrieves a user's alerts in active or acknowledged
	// state, newest first.
	FindActiveAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// FindAlertsByUser retrieves a user's alert history, newest first, up to limit.
	FindAlertsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Alert, error)
}
