package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/safety"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockService "lifeline/internal/mocks/service"
	mockUsecase "lifeline/internal/mocks/usecase"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type autoTriggerFixtures struct {
	trigger   *AutoTrigger
	emergency *mockUsecase.MockEmergencyUsecase
	alertRepo *mockRepo.MockAlertRepository
}

func createTestAutoTrigger(t *testing.T) autoTriggerFixtures {
	emergency := mockUsecase.NewMockEmergencyUsecase(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	trigger := NewAutoTrigger(emergency, alertRepo, newDiscardLogger())

	return autoTriggerFixtures{
		trigger:   trigger,
		emergency: emergency,
		alertRepo: alertRepo,
	}
}

func TestAutoTrigger_Register(t *testing.T) {
	fx := createTestAutoTrigger(t)
	eventBus := mockService.NewMockEventBus(t)

	eventBus.EXPECT().
		Subscribe(service.EventGeofenceViolation, mock.AnythingOfType("service.EventHandler")).
		Return()

	eventBus.EXPECT().
		Subscribe(service.EventMovementUnusual, mock.AnythingOfType("service.EventHandler")).
		Return()

	fx.trigger.Register(eventBus)
}

func TestAutoTrigger_GeofenceViolation_OpensAlert(t *testing.T) {
	fx := createTestAutoTrigger(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &usecase.GeofenceViolationEvent{
		UserID: userID,
		Violation: safety.GeofenceViolation{
			GeofenceID:   uuid.New().String(),
			GeofenceName: "Home",
			Type:         entity.GeofenceTypeSafe,
			Distance:     850,
			Location:     entity.Location{Latitude: 25.1, Longitude: 121.56},
		},
	}

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID).
		Return([]*entity.Alert{}, nil)

	fx.emergency.EXPECT().
		CreateAlert(ctx, userID, mock.AnythingOfType("*usecase.CreateAlertInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.CreateAlertInput) {
			assert.Equal(t, entity.AlertTypeGeofenceViolation, input.Type)
			assert.Contains(t, input.Description, "left safe zone")
			assert.Contains(t, input.Description, "Home")
			require.NotNil(t, input.Location)
			assert.Equal(t, 25.1, input.Location.Latitude)
		}).
		Return(&entity.Alert{ID: uuid.New()}, nil)

	fx.trigger.handleGeofenceViolation(ctx, event)
}

func TestAutoTrigger_DangerZoneEntry_OpensAlert(t *testing.T) {
	fx := createTestAutoTrigger(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &usecase.GeofenceViolationEvent{
		UserID: userID,
		Violation: safety.GeofenceViolation{
			GeofenceName: "Construction site",
			Type:         entity.GeofenceTypeDanger,
			Location:     entity.Location{Latitude: 25.05, Longitude: 121.5},
		},
	}

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID).
		Return([]*entity.Alert{}, nil)

	fx.emergency.EXPECT().
		CreateAlert(ctx, userID, mock.AnythingOfType("*usecase.CreateAlertInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.CreateAlertInput) {
			assert.Contains(t, input.Description, "entered danger zone")
		}).
		Return(&entity.Alert{ID: uuid.New()}, nil)

	fx.trigger.handleGeofenceViolation(ctx, event)
}

func TestAutoTrigger_GeofenceViolation_SuppressesDuplicate(t *testing.T) {
	fx := createTestAutoTrigger(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &usecase.GeofenceViolationEvent{
		UserID: userID,
		Violation: safety.GeofenceViolation{
			GeofenceName: "Home",
			Type:         entity.GeofenceTypeSafe,
		},
	}

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID).
		Return([]*entity.Alert{
			{ID: uuid.New(), UserID: userID, Type: entity.AlertTypeGeofenceViolation, Status: entity.AlertStatusActive},
		}, nil)

	// No CreateAlert expectation: the open alert of the same type wins.
	fx.trigger.handleGeofenceViolation(ctx, event)
}

func TestAutoTrigger_GeofenceViolation_OtherAlertTypeDoesNotSuppress(t *testing.T) {
	fx := createTestAutoTrigger(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &usecase.GeofenceViolationEvent{
		UserID: userID,
		Violation: safety.GeofenceViolation{
			GeofenceName: "Home",
			Type:         entity.GeofenceTypeSafe,
		},
	}

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID).
		Return([]*entity.Alert{
			{ID: uuid.New(), UserID: userID, Type: entity.AlertTypePanic, Status: entity.AlertStatusActive},
		}, nil)

	fx.emergency.EXPECT().
		CreateAlert(ctx, userID, mock.AnythingOfType("*usecase.CreateAlertInput")).
		Return(&entity.Alert{ID: uuid.New()}, nil)

	fx.trigger.handleGeofenceViolation(ctx, event)
}

func TestAutoTrigger_MovementAnomaly_OpensAlert(t *testing.T) {
	fx := createTestAutoTrigger(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &usecase.MovementAnomalyEvent{
		UserID: userID,
		Anomaly: safety.MovementAnomaly{
			Type:         safety.AnomalyHighSpeed,
			AverageSpeed: 28.4,
			MaxSpeed:     36.9,
			Location:     entity.Location{Latitude: 25.04, Longitude: 121.52},
		},
	}

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID).
		Return([]*entity.Alert{}, nil)

	fx.emergency.EXPECT().
		CreateAlert(ctx, userID, mock.AnythingOfType("*usecase.CreateAlertInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.CreateAlertInput) {
			assert.Equal(t, entity.AlertTypeAutoDetect, input.Type)
			assert.Contains(t, input.Description, "high_speed")
		}).
		Return(&entity.Alert{ID: uuid.New()}, nil)

	fx.trigger.handleMovementAnomaly(ctx, event)
}

func TestAutoTrigger_ActiveAlertLookupFailure(t *testing.T) {
	fx := createTestAutoTrigger(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &usecase.MovementAnomalyEvent{
		UserID:  userID,
		Anomaly: safety.MovementAnomaly{Type: safety.AnomalyHighSpeed},
	}

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	// No CreateAlert expectation: the lookup failure aborts the trigger.
	fx.trigger.handleMovementAnomaly(ctx, event)
}

func TestAutoTrigger_UnexpectedPayloadIsIgnored(t *testing.T) {
	fx := createTestAutoTrigger(t)

	ctx := context.Background()

	fx.trigger.handleGeofenceViolation(ctx, "not an event")
	fx.trigger.handleMovementAnomaly(ctx, 42)
}
