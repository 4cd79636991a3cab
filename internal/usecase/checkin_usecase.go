package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ConfigureScheduleInput represents the input for creating or updating a
// user's check-in schedule
type ConfigureScheduleInput struct {
	Interval    time.Duration `json:"interval"`
	GracePeriod time.Duration `json:"grace_period"`
	IsActive    bool          `json:"is_active"`
}

// CheckInUsecase defines the interface for safety check-in management.
type CheckInUsecase interface {
	// ConfigureSchedule creates or replaces the user's check-in schedule.
	ConfigureSchedule(ctx context.Context, userID uuid.UUID, input *ConfigureScheduleInput) (*entity.CheckInSchedule, error)

	// CheckIn records a successful check-in for the user.
	CheckIn(ctx context.Context, userID uuid.UUID) (*entity.CheckInSchedule, error)

	// GetSchedule retrieves the user's check-in schedule.
	GetSchedule(ctx context.Context, userID uuid.UUID) (*entity.CheckInSchedule, error)

	// SweepOverdue opens a check_in_missed alert for every user whose
	// check-in window has lapsed, returning how many alerts were opened.
	SweepOverdue(ctx context.Context) (int, error)
}
