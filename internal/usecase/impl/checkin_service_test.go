package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	mockUsecase "lifeline/internal/mocks/usecase"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkInServiceFixtures struct {
	service     usecase.CheckInUsecase
	checkInRepo *mockRepo.MockCheckInRepository
	sampleRepo  *mockRepo.MockLocationSampleRepository
	emergency   *mockUsecase.MockEmergencyUsecase
}

func createTestCheckInService(t *testing.T) checkInServiceFixtures {
	checkInRepo := mockRepo.NewMockCheckInRepository(t)
	sampleRepo := mockRepo.NewMockLocationSampleRepository(t)
	emergency := mockUsecase.NewMockEmergencyUsecase(t)

	svc := NewCheckInService(checkInRepo, sampleRepo, emergency, newDiscardLogger())

	return checkInServiceFixtures{
		service:     svc,
		checkInRepo: checkInRepo,
		sampleRepo:  sampleRepo,
		emergency:   emergency,
	}
}

func overdueSchedule(userID uuid.UUID) *entity.CheckInSchedule {
	return &entity.CheckInSchedule{
		ID:          uuid.New(),
		UserID:      userID,
		Interval:    4 * time.Hour,
		GracePeriod: 30 * time.Minute,
		LastCheckIn: time.Now().Add(-6 * time.Hour),
		IsActive:    true,
	}
}

func TestCheckInService_ConfigureSchedule_Success(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.checkInRepo.EXPECT().
		UpsertSchedule(ctx, mock.AnythingOfType("*entity.CheckInSchedule")).
		Return(nil)

	schedule, err := fx.service.ConfigureSchedule(ctx, userID, &usecase.ConfigureScheduleInput{
		Interval:    4 * time.Hour,
		GracePeriod: 30 * time.Minute,
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, schedule.UserID)
	assert.Equal(t, 4*time.Hour, schedule.Interval)
	assert.True(t, schedule.IsActive)
	assert.False(t, schedule.LastCheckIn.IsZero())
}

func TestCheckInService_ConfigureSchedule_IntervalTooShort(t *testing.T) {
	fx := createTestCheckInService(t)

	_, err := fx.service.ConfigureSchedule(context.Background(), uuid.New(), &usecase.ConfigureScheduleInput{
		Interval: 10 * time.Second,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCheckInService_ConfigureSchedule_NegativeGracePeriod(t *testing.T) {
	fx := createTestCheckInService(t)

	_, err := fx.service.ConfigureSchedule(context.Background(), uuid.New(), &usecase.ConfigureScheduleInput{
		Interval:    time.Hour,
		GracePeriod: -time.Minute,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCheckInService_CheckIn_Success(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()
	schedule := &entity.CheckInSchedule{
		ID:          uuid.New(),
		UserID:      userID,
		Interval:    time.Hour,
		LastCheckIn: time.Now(),
		IsActive:    true,
	}

	fx.checkInRepo.EXPECT().
		RecordCheckIn(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.checkInRepo.EXPECT().
		FindScheduleByUser(ctx, userID).
		Return(schedule, nil)

	got, err := fx.service.CheckIn(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, schedule, got)
}

func TestCheckInService_CheckIn_NoSchedule(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.checkInRepo.EXPECT().
		RecordCheckIn(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrCheckInScheduleNotFound)

	_, err := fx.service.CheckIn(ctx, userID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestCheckInService_SweepOverdue_OpensAlertAndPausesSchedule(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()
	schedule := overdueSchedule(userID)
	sample := &entity.LocationSample{UserID: userID, Latitude: 25.0330, Longitude: 121.5654, Accuracy: 8}

	fx.checkInRepo.EXPECT().
		FindOverdueSchedules(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.CheckInSchedule{schedule}, nil)

	fx.checkInRepo.EXPECT().
		UpsertSchedule(ctx, mock.AnythingOfType("*entity.CheckInSchedule")).
		Run(func(_ context.Context, s *entity.CheckInSchedule) {
			assert.False(t, s.IsActive)
		}).
		Return(nil)

	fx.sampleRepo.EXPECT().
		FindLatestSample(ctx, userID).
		Return(sample, nil)

	fx.emergency.EXPECT().
		CreateAlert(ctx, userID, mock.AnythingOfType("*usecase.CreateAlertInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.CreateAlertInput) {
			assert.Equal(t, entity.AlertTypeCheckInMissed, input.Type)
			require.NotNil(t, input.Location)
			assert.Equal(t, sample.Latitude, input.Location.Latitude)
		}).
		Return(&entity.Alert{ID: uuid.New()}, nil)

	opened, err := fx.service.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
}

func TestCheckInService_SweepOverdue_NoKnownLocation(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()
	schedule := overdueSchedule(userID)

	fx.checkInRepo.EXPECT().
		FindOverdueSchedules(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.CheckInSchedule{schedule}, nil)

	fx.checkInRepo.EXPECT().
		UpsertSchedule(ctx, mock.AnythingOfType("*entity.CheckInSchedule")).
		Return(nil)

	fx.sampleRepo.EXPECT().
		FindLatestSample(ctx, userID).
		Return(nil, repository.ErrNoLocationSamples)

	fx.emergency.EXPECT().
		CreateAlert(ctx, userID, mock.AnythingOfType("*usecase.CreateAlertInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.CreateAlertInput) {
			assert.Nil(t, input.Location)
		}).
		Return(&entity.Alert{ID: uuid.New()}, nil)

	opened, err := fx.service.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
}

func TestCheckInService_SweepOverdue_PauseFailureSkipsAlert(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	schedule := overdueSchedule(uuid.New())

	fx.checkInRepo.EXPECT().
		FindOverdueSchedules(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.CheckInSchedule{schedule}, nil)

	fx.checkInRepo.EXPECT().
		UpsertSchedule(ctx, mock.AnythingOfType("*entity.CheckInSchedule")).
		Return(errors.New("database error"))

	// No CreateAlert expectation: pausing failed, so no alert is opened and
	// the next sweep retries the schedule.
	opened, err := fx.service.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, opened)
}

func TestCheckInService_SweepOverdue_AlertFailureDoesNotCount(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()
	schedule := overdueSchedule(userID)

	fx.checkInRepo.EXPECT().
		FindOverdueSchedules(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.CheckInSchedule{schedule}, nil)

	fx.checkInRepo.EXPECT().
		UpsertSchedule(ctx, mock.AnythingOfType("*entity.CheckInSchedule")).
		Return(nil)

	fx.sampleRepo.EXPECT().
		FindLatestSample(ctx, userID).
		Return(nil, repository.ErrNoLocationSamples)

	fx.emergency.EXPECT().
		CreateAlert(ctx, userID, mock.AnythingOfType("*usecase.CreateAlertInput")).
		Return(nil, errors.New("queue unavailable"))

	opened, err := fx.service.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, opened)
}

func TestCheckInService_SweepOverdue_FindError(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()

	fx.checkInRepo.EXPECT().
		FindOverdueSchedules(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("database error"))

	_, err := fx.service.SweepOverdue(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find overdue schedules")
}
