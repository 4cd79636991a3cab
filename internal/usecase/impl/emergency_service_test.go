package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
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

const testEscalationInterval = time.Minute

type emergencyServiceFixtures struct {
	service   usecase.EmergencyUsecase
	alertRepo *mockRepo.MockAlertRepository
	userRepo  *mockRepo.MockUserRepository
	notifier  *mockService.MockNotificationChannel
	queue     *mockService.MockDurableQueue
	eventBus  *mockService.MockEventBus
}

func createTestEmergencyService(t *testing.T) emergencyServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockService.NewMockNotificationChannel(t)
	queue := mockService.NewMockDurableQueue(t)
	eventBus := mockService.NewMockEventBus(t)

	svc := NewEmergencyService(alertRepo, userRepo, notifier, queue, eventBus, testEscalationInterval, newDiscardLogger())

	return emergencyServiceFixtures{
		service:   svc,
		alertRepo: alertRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		queue:     queue,
		eventBus:  eventBus,
	}
}

func activeAlert(userID uuid.UUID) *entity.Alert {
	now := time.Now()

	return &entity.Alert{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      entity.AlertTypePanic,
		Status:    entity.AlertStatusActive,
		Priority:  entity.PriorityCritical,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func alertJobPayload(t *testing.T, alertID uuid.UUID) json.RawMessage {
	payload, err := json.Marshal(entity.AlertJobPayload{AlertID: alertID.String()})
	require.NoError(t, err)

	return payload
}

func TestEmergencyService_CreateAlert_Success(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, FullName: "Alex Chen"}, nil)

	fx.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)

	fx.queue.EXPECT().
		ScheduleJob(ctx, mock.AnythingOfType("string"), entity.JobTypeResponse, mock.AnythingOfType("json.RawMessage"), time.Duration(0)).
		Return(nil)

	fx.queue.EXPECT().
		ScheduleJob(ctx, mock.AnythingOfType("string"), entity.JobTypeEscalation, mock.AnythingOfType("json.RawMessage"), testEscalationInterval).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyCreated, mock.AnythingOfType("*entity.Alert")).
		Return()

	alert, err := fx.service.CreateAlert(ctx, userID, &usecase.CreateAlertInput{
		Type:        entity.AlertTypePanic,
		Description: "help",
	})
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, userID, alert.UserID)
	assert.Equal(t, entity.AlertStatusActive, alert.Status)
	assert.Equal(t, entity.PriorityCritical, alert.Priority)
	assert.Equal(t, 0, alert.EscalationLevel)
	assert.False(t, alert.Response.ContactsNotified)
	require.Len(t, alert.Timeline, 1)
	assert.Equal(t, "Alert Created", alert.Timeline[0].Action)
}

func TestEmergencyService_CreateAlert_PriorityFollowsType(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)

	fx.queue.EXPECT().
		ScheduleJob(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("json.RawMessage"), mock.AnythingOfType("time.Duration")).
		Return(nil).
		Times(2)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyCreated, mock.AnythingOfType("*entity.Alert")).
		Return()

	alert, err := fx.service.CreateAlert(ctx, userID, &usecase.CreateAlertInput{
		Type: entity.AlertTypeCheckInMissed,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityMedium, alert.Priority)
}

func TestEmergencyService_CreateAlert_UnknownType(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()

	_, err := fx.service.CreateAlert(ctx, uuid.New(), &usecase.CreateAlertInput{Type: "earthquake"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestEmergencyService_CreateAlert_UserNotFound(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateAlert(ctx, userID, &usecase.CreateAlertInput{Type: entity.AlertTypePanic})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestEmergencyService_CreateAlert_SchedulingFailureDoesNotFail(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)

	fx.queue.EXPECT().
		ScheduleJob(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("json.RawMessage"), mock.AnythingOfType("time.Duration")).
		Return(errors.New("queue unavailable")).
		Times(2)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyCreated, mock.AnythingOfType("*entity.Alert")).
		Return()

	alert, err := fx.service.CreateAlert(ctx, userID, &usecase.CreateAlertInput{Type: entity.AlertTypeMedical})
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusActive, alert.Status)
}

func TestEmergencyService_AcknowledgeAlert_Success(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityMedium).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyAcknowledged, alert).
		Return()

	updated, err := fx.service.AcknowledgeAlert(ctx, alert.ID, "contact:maria")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusAcknowledged, updated.Status)
	require.Len(t, updated.Timeline, 1)
	assert.Equal(t, "Alert Acknowledged", updated.Timeline[0].Action)
	assert.Equal(t, "contact:maria", updated.Timeline[0].PerformedBy)
}

func TestEmergencyService_AcknowledgeAlert_AlreadyAcknowledged(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Status = entity.AlertStatusAcknowledged

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	// Idempotent: no save, no notification, no event.
	updated, err := fx.service.AcknowledgeAlert(ctx, alert.ID, "contact:maria")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusAcknowledged, updated.Status)
	assert.Empty(t, updated.Timeline)
}

func TestEmergencyService_AcknowledgeAlert_FromTerminal(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Status = entity.AlertStatusResolved

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	_, err := fx.service.AcknowledgeAlert(ctx, alert.ID, "contact:maria")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestEmergencyService_AcknowledgeAlert_StaleWrite(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(repository.ErrStaleAlert)

	_, err := fx.service.AcknowledgeAlert(ctx, alert.ID, "contact:maria")
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrStaleWrite, err)
}

func TestEmergencyService_AcknowledgeAlert_NotFound(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alertID := uuid.New()

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(nil, repository.ErrAlertNotFound)

	_, err := fx.service.AcknowledgeAlert(ctx, alertID, "contact:maria")
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrAlertNotFound, err)
}

func TestEmergencyService_ResolveAlert_FromAcknowledged(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Status = entity.AlertStatusAcknowledged

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.queue.EXPECT().
		CancelJob(ctx, entity.JobKey(alert.ID.String(), entity.JobTypeResponse)).
		Return(nil)

	fx.queue.EXPECT().
		CancelJob(ctx, entity.JobKey(alert.ID.String(), entity.JobTypeEscalation)).
		Return(nil)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityLow).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyResolved, alert).
		Return()

	resolved, err := fx.service.ResolveAlert(ctx, alert.ID, "user", "reached the user by phone")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, "user", resolved.ResolvedBy)
}

func TestEmergencyService_ResolveAlert_AlreadyTerminal(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Status = entity.AlertStatusCancelled

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	_, err := fx.service.ResolveAlert(ctx, alert.ID, "user", "reached the user by phone")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestEmergencyService_CancelAlert_Success(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.queue.EXPECT().
		CancelJob(ctx, mock.AnythingOfType("string")).
		Return(nil).
		Times(2)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityLow).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyCancelled, alert).
		Return()

	cancelled, err := fx.service.CancelAlert(ctx, alert.ID, "user", "false alarm")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusCancelled, cancelled.Status)
}

func TestEmergencyService_CancelAlert_FromAcknowledged(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Status = entity.AlertStatusAcknowledged

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.queue.EXPECT().
		CancelJob(ctx, mock.AnythingOfType("string")).
		Return(nil).
		Times(2)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityLow).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyCancelled, alert).
		Return()

	cancelled, err := fx.service.CancelAlert(ctx, alert.ID, "user", "false alarm")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusCancelled, cancelled.Status)
}

func TestEmergencyService_CancelAlert_AlreadyTerminal(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Status = entity.AlertStatusResolved

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	_, err := fx.service.CancelAlert(ctx, alert.ID, "user", "false alarm")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestEmergencyService_EscalateAlert_LevelOneNotifiesContacts(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityCritical).
		Return(nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyEscalated, alert).
		Return()

	fx.queue.EXPECT().
		ScheduleJob(ctx, entity.JobKey(alert.ID.String(), entity.JobTypeEscalation), entity.JobTypeEscalation, mock.AnythingOfType("json.RawMessage"), testEscalationInterval).
		Return(nil)

	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, alert.EscalationLevel)
	assert.True(t, alert.Response.ContactsNotified)
	assert.NotNil(t, alert.Response.ContactsNotifiedAt)
	assert.False(t, alert.Response.PoliceNotified)
}

func TestEmergencyService_EscalateAlert_LevelTwoAddsPolice(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.EscalationLevel = 1
	now := time.Now()
	alert.Response.ContactsNotified = true
	alert.Response.ContactsNotifiedAt = &now

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, alert.UserID).
		Return(&entity.User{ID: alert.UserID, FullName: "Alex Chen", Phone: "+15550100"}, nil)

	fx.notifier.EXPECT().
		NotifyPolice(ctx, mock.AnythingOfType("*service.PolicePayload")).
		Return(nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyEscalated, alert).
		Return()

	fx.queue.EXPECT().
		ScheduleJob(ctx, mock.AnythingOfType("string"), entity.JobTypeEscalation, mock.AnythingOfType("json.RawMessage"), testEscalationInterval).
		Return(nil)

	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, alert.EscalationLevel)
	assert.True(t, alert.Response.PoliceNotified)
	assert.False(t, alert.Response.MedicalNotified)
}

func TestEmergencyService_EscalateAlert_LevelThreeAddsMedicalWithoutRearm(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.EscalationLevel = 2
	now := time.Now()
	alert.Response.ContactsNotified = true
	alert.Response.ContactsNotifiedAt = &now
	alert.Response.PoliceNotified = true
	alert.Response.PoliceNotifiedAt = &now

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, alert.UserID).
		Return(&entity.User{ID: alert.UserID, MedicalInfo: "type 1 diabetes"}, nil)

	fx.notifier.EXPECT().
		NotifyMedical(ctx, mock.AnythingOfType("*service.MedicalPayload")).
		Return(nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyEscalated, alert).
		Return()

	// No ScheduleJob expectation: the chain stops at the maximum level.
	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxEscalationLevel, alert.EscalationLevel)
	assert.True(t, alert.Response.MedicalNotified)
}

func TestEmergencyService_EscalateAlert_LevelThreeSkipsMedicalForNonCritical(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Type = entity.AlertTypeGeofenceViolation
	alert.Priority = entity.PriorityMedium
	alert.EscalationLevel = 2
	now := time.Now()
	alert.Response.ContactsNotified = true
	alert.Response.ContactsNotifiedAt = &now
	alert.Response.PoliceNotified = true
	alert.Response.PoliceNotifiedAt = &now

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyEscalated, alert).
		Return()

	// No NotifyMedical expectation: medical dispatch is reserved for
	// critical alerts.
	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxEscalationLevel, alert.EscalationLevel)
	assert.False(t, alert.Response.MedicalNotified)
	assert.Nil(t, alert.Response.MedicalNotifiedAt)
}

func TestEmergencyService_EscalateAlert_AtMaxLevelIsNoop(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.EscalationLevel = entity.MaxEscalationLevel

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxEscalationLevel, alert.EscalationLevel)
}

func TestEmergencyService_EscalateAlert_TerminalIsNoop(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Status = entity.AlertStatusResolved

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, alert.EscalationLevel)
}

func TestEmergencyService_EscalateAlert_AcknowledgedStillEscalates(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	alert.Status = entity.AlertStatusAcknowledged

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityCritical).
		Return(nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyEscalated, alert).
		Return()

	fx.queue.EXPECT().
		ScheduleJob(ctx, entity.JobKey(alert.ID.String(), entity.JobTypeEscalation), entity.JobTypeEscalation, mock.AnythingOfType("json.RawMessage"), testEscalationInterval).
		Return(nil)

	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusAcknowledged, alert.Status)
	assert.Equal(t, 1, alert.EscalationLevel)
}

func TestEmergencyService_EscalateAlert_NotifyFailureStillEscalates(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityCritical).
		Return(errors.New("push provider down"))

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	fx.eventBus.EXPECT().
		Emit(ctx, service.EventEmergencyEscalated, alert).
		Return()

	fx.queue.EXPECT().
		ScheduleJob(ctx, mock.AnythingOfType("string"), entity.JobTypeEscalation, mock.AnythingOfType("json.RawMessage"), testEscalationInterval).
		Return(nil)

	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, alert.EscalationLevel)
	// Flag stays unset so the next level retries the send.
	assert.False(t, alert.Response.ContactsNotified)
}

func TestEmergencyService_EscalateAlert_StaleWriteDroppedSilently(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityCritical).
		Return(nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(repository.ErrStaleAlert)

	// No Emit and no ScheduleJob: the user transition won the race.
	err := fx.service.EscalateAlert(ctx, alert.ID)
	require.NoError(t, err)
}

func TestEmergencyService_HandleScheduledJob_ResponseNotifiesContacts(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityCritical).
		Return(nil)

	fx.alertRepo.EXPECT().
		SaveAlert(ctx, alert).
		Return(nil)

	job := &entity.ScheduledJob{
		Key:     entity.JobKey(alert.ID.String(), entity.JobTypeResponse),
		JobType: entity.JobTypeResponse,
		Payload: alertJobPayload(t, alert.ID),
	}

	err := fx.service.HandleScheduledJob(ctx, job)
	require.NoError(t, err)
	assert.True(t, alert.Response.ContactsNotified)
}

func TestEmergencyService_HandleScheduledJob_ResponseDuplicateIsNoop(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())
	now := time.Now()
	alert.Response.ContactsNotified = true
	alert.Response.ContactsNotifiedAt = &now

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	job := &entity.ScheduledJob{
		Key:     entity.JobKey(alert.ID.String(), entity.JobTypeResponse),
		JobType: entity.JobTypeResponse,
		Payload: alertJobPayload(t, alert.ID),
	}

	err := fx.service.HandleScheduledJob(ctx, job)
	require.NoError(t, err)
}

func TestEmergencyService_HandleScheduledJob_ResponseDeliveryFailure(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alert := activeAlert(uuid.New())

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alert.ID).
		Return(alert, nil)

	fx.notifier.EXPECT().
		NotifyContacts(ctx, alert.UserID.String(), mock.AnythingOfType("string"), entity.PriorityCritical).
		Return(errors.New("push provider down"))

	job := &entity.ScheduledJob{
		Key:     entity.JobKey(alert.ID.String(), entity.JobTypeResponse),
		JobType: entity.JobTypeResponse,
		Payload: alertJobPayload(t, alert.ID),
	}

	// Delivery failed, nothing to persist; the level-1 escalation retries.
	err := fx.service.HandleScheduledJob(ctx, job)
	require.NoError(t, err)
	assert.False(t, alert.Response.ContactsNotified)
}

func TestEmergencyService_HandleScheduledJob_EscalationForMissingAlert(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alertID := uuid.New()

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(nil, repository.ErrAlertNotFound)

	job := &entity.ScheduledJob{
		Key:     entity.JobKey(alertID.String(), entity.JobTypeEscalation),
		JobType: entity.JobTypeEscalation,
		Payload: alertJobPayload(t, alertID),
	}

	err := fx.service.HandleScheduledJob(ctx, job)
	require.NoError(t, err)
}

func TestEmergencyService_HandleScheduledJob_UndecodablePayload(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()

	job := &entity.ScheduledJob{
		Key:     "garbage:response",
		JobType: entity.JobTypeResponse,
		Payload: json.RawMessage(`{not json`),
	}

	err := fx.service.HandleScheduledJob(ctx, job)
	require.NoError(t, err)
}

func TestEmergencyService_HandleScheduledJob_UnknownJobType(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	alertID := uuid.New()

	job := &entity.ScheduledJob{
		Key:     entity.JobKey(alertID.String(), "reminder"),
		JobType: "reminder",
		Payload: alertJobPayload(t, alertID),
	}

	err := fx.service.HandleScheduledJob(ctx, job)
	require.NoError(t, err)
}

func TestEmergencyService_GetActiveAlerts(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	userID := uuid.New()
	alerts := []*entity.Alert{activeAlert(userID), activeAlert(userID)}

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID).
		Return(alerts, nil)

	got, err := fx.service.GetActiveAlerts(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEmergencyService_GetAlertHistory(t *testing.T) {
	fx := createTestEmergencyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.alertRepo.EXPECT().
		FindAlertsByUser(ctx, userID, 20).
		Return([]*entity.Alert{activeAlert(userID)}, nil)

	got, err := fx.service.GetAlertHistory(ctx, userID, 20)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
