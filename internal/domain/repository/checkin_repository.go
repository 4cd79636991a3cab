// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for check-in persistence.
var (
	// ErrCheckInScheduleNotFound is returned when a user has no check-in schedule.
	ErrCheckInScheduleNotFound = errors.New("check-in schedule not found")
)

// CheckInRepository defines the interface for check-in schedule database operations.
type CheckInRepository interface {
	// UpsertSchedule creates or replaces the check-in schedule for a user.
	UpsertSchedule(ctx context.Context, schedule *entity.CheckInSchedule) error

	// FindScheduleByUser retrieves the check-in schedule for a user.
	FindScheduleByUser(ctx context.Context, userID uuid.UUID) (*entity.CheckInSchedule, error)

	// RecordCheckIn updates the last check-in time for a user's schedule.
	RecordCheckIn(ctx context.Context, userID uuid.UUID, at time.Time) error

	// FindOverdueSchedules retrieves active schedules whose check-in window has
	// lapsed as of now.
	FindOverdueSchedules(ctx context.Context, now time.Time) ([]*entity.CheckInSchedule, error)
}
