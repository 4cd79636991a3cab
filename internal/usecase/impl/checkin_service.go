package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

// minCheckInInterval rejects schedules tight enough to page on every sweep.
const minCheckInInterval = time.Minute

// checkInService manages recurring safety check-ins. The sweep opens a
// check_in_missed alert for every overdue schedule and pauses the schedule so
// one missed window produces exactly one alert.
type checkInService struct {
	checkInRepo repository.CheckInRepository
	sampleRepo  repository.LocationSampleRepository
	emergency   usecase.EmergencyUsecase
	logger      *slog.Logger
}

// NewCheckInService creates a new check-in management service instance
func NewCheckInService(
	checkInRepo repository.CheckInRepository,
	sampleRepo repository.LocationSampleRepository,
	emergency usecase.EmergencyUsecase,
	logger *slog.Logger,
) usecase.CheckInUsecase {
	return &checkInService{
		checkInRepo: checkInRepo,
		sampleRepo:  sampleRepo,
		emergency:   emergency,
		logger:      logger,
	}
}

// ConfigureSchedule creates or replaces the user's check-in schedule. The
// clock starts from now; the user is not immediately overdue.
func (s *checkInService) ConfigureSchedule(ctx context.Context, userID uuid.UUID, input *usecase.ConfigureScheduleInput) (*entity.CheckInSchedule, error) {
	if input == nil || input.Interval < minCheckInInterval {
		return nil, domainerrors.ErrValidationFailed.WithDetails("check-in interval is too short")
	}
	if input.GracePeriod < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("grace period cannot be negative")
	}

	schedule := &entity.CheckInSchedule{
		ID:          uuid.New(),
		UserID:      userID,
		Interval:    input.Interval,
		GracePeriod: input.GracePeriod,
		LastCheckIn: time.Now(),
		IsActive:    input.IsActive,
	}

	if err := s.checkInRepo.UpsertSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// CheckIn records a successful check-in for the user.
func (s *checkInService) CheckIn(ctx context.Context, userID uuid.UUID) (*entity.CheckInSchedule, error) {
	now := time.Now()
	if err := s.checkInRepo.RecordCheckIn(ctx, userID, now); err != nil {
		if errors.Is(err, repository.ErrCheckInScheduleNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("no check-in schedule configured")
		}

		return nil, err
	}

	return s.GetSchedule(ctx, userID)
}

// GetSchedule retrieves the user's check-in schedule.
func (s *checkInService) GetSchedule(ctx context.Context, userID uuid.UUID) (*entity.CheckInSchedule, error) {
	schedule, err := s.checkInRepo.FindScheduleByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInScheduleNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("no check-in schedule configured")
		}

		return nil, errors.Wrap(err, "failed to load check-in schedule")
	}

	return schedule, nil
}

// SweepOverdue opens a check_in_missed alert for every user whose check-in
// window has lapsed. Each overdue schedule is deactivated before its alert is
// opened, so a sweep running again before the user responds does not open a
// second alert.
func (s *checkInService) SweepOverdue(ctx context.Context) (int, error) {
	overdue, err := s.checkInRepo.FindOverdueSchedules(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to find overdue schedules")
	}

	opened := 0
	for _, schedule := range overdue {
		schedule.IsActive = false
		if err := s.checkInRepo.UpsertSchedule(ctx, schedule); err != nil {
			s.logger.Error("failed to pause overdue schedule",
				slog.String("userID", schedule.UserID.String()),
				slog.Any("error", err),
			)

			continue
		}

		input := &usecase.CreateAlertInput{
			Type: entity.AlertTypeCheckInMissed,
			Description: fmt.Sprintf("Scheduled check-in missed (expected every %s)",
				schedule.Interval),
		}
		if sample, err := s.sampleRepo.FindLatestSample(ctx, schedule.UserID); err == nil {
			input.Location = &entity.Location{
				Latitude:  sample.Latitude,
				Longitude: sample.Longitude,
				Accuracy:  sample.Accuracy,
			}
		}

		if _, err := s.emergency.CreateAlert(ctx, schedule.UserID, input); err != nil {
			s.logger.Error("failed to open missed check-in alert",
				slog.String("userID", schedule.UserID.String()),
				slog.Any("error", err),
			)

			continue
		}

		opened++
	}

	return opened, nil
}
