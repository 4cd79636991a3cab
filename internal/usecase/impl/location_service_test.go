package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/safety"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockService "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	sampleRepo   *mockRepo.MockLocationSampleRepository
	geofenceRepo *mockRepo.MockGeofenceRepository
	eventBus     *mockService.MockEventBus
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	sampleRepo := mockRepo.NewMockLocationSampleRepository(t)
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	eventBus := mockService.NewMockEventBus(t)

	svc := NewLocationService(sampleRepo, geofenceRepo, eventBus,
		safety.DefaultMovementThresholds(), 30*time.Minute, 10, newDiscardLogger())

	return locationServiceFixtures{
		service:      svc,
		sampleRepo:   sampleRepo,
		geofenceRepo: geofenceRepo,
		eventBus:     eventBus,
	}
}

func TestLocationService_UpdateLocation_StoresSample(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sampleRepo.EXPECT().
		CreateSample(ctx, mock.AnythingOfType("*entity.LocationSample")).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventLocationUpdated, mock.AnythingOfType("*entity.LocationSample")).
		Return()

	fx.geofenceRepo.EXPECT().
		FindGeofencesByUser(ctx, userID).
		Return([]*entity.Geofence{}, nil)

	fx.sampleRepo.EXPECT().
		FindRecentSamples(ctx, userID, mock.AnythingOfType("time.Time"), 10).
		Return([]*entity.LocationSample{}, nil)

	evaluation, err := fx.service.UpdateLocation(ctx, userID, &usecase.UpdateLocationInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
		Accuracy:  12,
		Source:    "gps",
	})
	require.NoError(t, err)
	require.NotNil(t, evaluation.Sample)
	assert.Equal(t, userID, evaluation.Sample.UserID)
	assert.False(t, evaluation.Sample.Timestamp.IsZero())
	assert.Empty(t, evaluation.Violations)
	assert.Empty(t, evaluation.Anomalies)
}

func TestLocationService_UpdateLocation_RejectsBadCoordinates(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	_, err := fx.service.UpdateLocation(ctx, uuid.New(), &usecase.UpdateLocationInput{
		Latitude:  95,
		Longitude: 0,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestLocationService_UpdateLocation_NilInput(t *testing.T) {
	fx := createTestLocationService(t)

	_, err := fx.service.UpdateLocation(context.Background(), uuid.New(), nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestLocationService_UpdateLocation_SafeZoneExitEmitsViolation(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Fence around Taipei 101; the reported point is kilometers away.
	fence := &entity.Geofence{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Home",
		Type:      entity.GeofenceTypeSafe,
		Latitude:  25.0330,
		Longitude: 121.5654,
		Radius:    200,
	}

	fx.sampleRepo.EXPECT().
		CreateSample(ctx, mock.AnythingOfType("*entity.LocationSample")).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventLocationUpdated, mock.AnythingOfType("*entity.LocationSample")).
		Return()

	fx.geofenceRepo.EXPECT().
		FindGeofencesByUser(ctx, userID).
		Return([]*entity.Geofence{fence}, nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventGeofenceViolation, mock.AnythingOfType("*usecase.GeofenceViolationEvent")).
		Return()

	fx.sampleRepo.EXPECT().
		FindRecentSamples(ctx, userID, mock.AnythingOfType("time.Time"), 10).
		Return([]*entity.LocationSample{}, nil)

	evaluation, err := fx.service.UpdateLocation(ctx, userID, &usecase.UpdateLocationInput{
		Latitude:  25.1000,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	require.Len(t, evaluation.Violations, 1)
	assert.Equal(t, "Home", evaluation.Violations[0].GeofenceName)
	assert.Greater(t, evaluation.Violations[0].Distance, fence.Radius)
}

func TestLocationService_UpdateLocation_GeofenceReadFailureKeepsSample(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sampleRepo.EXPECT().
		CreateSample(ctx, mock.AnythingOfType("*entity.LocationSample")).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventLocationUpdated, mock.AnythingOfType("*entity.LocationSample")).
		Return()

	fx.geofenceRepo.EXPECT().
		FindGeofencesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	fx.sampleRepo.EXPECT().
		FindRecentSamples(ctx, userID, mock.AnythingOfType("time.Time"), 10).
		Return([]*entity.LocationSample{}, nil)

	evaluation, err := fx.service.UpdateLocation(ctx, userID, &usecase.UpdateLocationInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	require.NotNil(t, evaluation.Sample)
	assert.Empty(t, evaluation.Violations)
}

func TestLocationService_UpdateLocation_HighSpeedEmitsAnomaly(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	// Three samples roughly 1.1 km apart at 30 second spacing: ~37 m/s
	// sustained, well above the default thresholds.
	window := []*entity.LocationSample{
		{UserID: userID, Latitude: 25.0530, Longitude: 121.5654, Timestamp: now},
		{UserID: userID, Latitude: 25.0430, Longitude: 121.5654, Timestamp: now.Add(-30 * time.Second)},
		{UserID: userID, Latitude: 25.0330, Longitude: 121.5654, Timestamp: now.Add(-60 * time.Second)},
	}

	fx.sampleRepo.EXPECT().
		CreateSample(ctx, mock.AnythingOfType("*entity.LocationSample")).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventLocationUpdated, mock.AnythingOfType("*entity.LocationSample")).
		Return()

	fx.geofenceRepo.EXPECT().
		FindGeofencesByUser(ctx, userID).
		Return([]*entity.Geofence{}, nil)

	fx.sampleRepo.EXPECT().
		FindRecentSamples(ctx, userID, mock.AnythingOfType("time.Time"), 10).
		Return(window, nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventMovementUnusual, mock.AnythingOfType("*usecase.MovementAnomalyEvent")).
		Return()

	evaluation, err := fx.service.UpdateLocation(ctx, userID, &usecase.UpdateLocationInput{
		Latitude:  25.0530,
		Longitude: 121.5654,
		Timestamp: now,
	})
	require.NoError(t, err)
	require.Len(t, evaluation.Anomalies, 1)
	assert.Equal(t, safety.AnomalyHighSpeed, evaluation.Anomalies[0].Type)
}

func TestLocationService_GetLatestLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	sample := &entity.LocationSample{ID: uuid.New(), UserID: userID, Latitude: 25, Longitude: 121}

	fx.sampleRepo.EXPECT().
		FindLatestSample(ctx, userID).
		Return(sample, nil)

	got, err := fx.service.GetLatestLocation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestLocationService_GetLatestLocation_NoneRecorded(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sampleRepo.EXPECT().
		FindLatestSample(ctx, userID).
		Return(nil, repository.ErrNoLocationSamples)

	_, err := fx.service.GetLatestLocation(ctx, userID)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}
