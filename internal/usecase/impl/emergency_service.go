// Package impl provides the implementation of the use case interfaces.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

const (
	// defaultEscalationInterval is the delay between escalation steps when no
	// interval is configured.
	defaultEscalationInterval = 5 * time.Minute

	// systemActor is recorded in the timeline for workflow-initiated actions.
	systemActor = "System"
)

// emergencyService drives the alert lifecycle: creation, the escalation
// chain, user transitions and the scheduled jobs that keep the chain moving.
// Transitions for one alert are serialized in-process by a keyed mutex and
// cross-process by the repository's optimistic version check.
type emergencyService struct {
	alertRepo repository.AlertRepository
	userRepo  repository.UserRepository
	notifier  service.NotificationChannel
	queue     service.DurableQueue
	eventBus  service.EventBus
	logger    *slog.Logger

	escalationInterval time.Duration
	locks              *alertLocks
}

// NewEmergencyService creates a new emergency workflow instance
func NewEmergencyService(
	alertRepo repository.AlertRepository,
	userRepo repository.UserRepository,
	notifier service.NotificationChannel,
	queue service.DurableQueue,
	eventBus service.EventBus,
	escalationInterval time.Duration,
	logger *slog.Logger,
) usecase.EmergencyUsecase {
	if escalationInterval <= 0 {
		escalationInterval = defaultEscalationInterval
	}

	return &emergencyService{
		alertRepo:          alertRepo,
		userRepo:           userRepo,
		notifier:           notifier,
		queue:              queue,
		eventBus:           eventBus,
		logger:             logger,
		escalationInterval: escalationInterval,
		locks:              newAlertLocks(),
	}
}

// CreateAlert opens a new alert, arms the response and escalation timers and
// announces the alert on the event bus.
func (s *emergencyService) CreateAlert(ctx context.Context, userID uuid.UUID, input *usecase.CreateAlertInput) (*entity.Alert, error) {
	if input == nil || !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown alert type")
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	now := time.Now()
	alert := &entity.Alert{
		ID:              uuid.New(),
		UserID:          userID,
		Type:            input.Type,
		Status:          entity.AlertStatusActive,
		Priority:        entity.PriorityForType(input.Type),
		EscalationLevel: 0,
		Location:        input.Location,
		Description:     input.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	alert.AppendTimeline("Alert Created", fmt.Sprintf("Emergency alert created: %s", input.Type), systemActor)

	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, err
	}

	s.scheduleAlertJob(ctx, alert.ID, entity.JobTypeResponse, 0)
	s.scheduleAlertJob(ctx, alert.ID, entity.JobTypeEscalation, s.escalationInterval)

	s.eventBus.Emit(ctx, service.EventEmergencyCreated, alert)

	return alert, nil
}

// AcknowledgeAlert marks an active alert as seen. A repeated acknowledge is a
// no-op. Acknowledging does not stop the escalation chain; only resolution or
// cancellation does.
func (s *emergencyService) AcknowledgeAlert(ctx context.Context, alertID uuid.UUID, acknowledgedBy string) (*entity.Alert, error) {
	unlock := s.locks.lock(alertID)
	defer unlock()

	alert, err := s.loadAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if alert.Status == entity.AlertStatusAcknowledged {
		return alert, nil
	}
	if alert.Status != entity.AlertStatusActive {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot acknowledge alert in status %s", alert.Status))
	}

	alert.Status = entity.AlertStatusAcknowledged
	alert.AppendTimeline("Alert Acknowledged", "Alert acknowledged by "+acknowledgedBy, acknowledgedBy)

	if err := s.saveAlert(ctx, alert); err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, alert, "Emergency alert acknowledged by "+acknowledgedBy, entity.PriorityMedium)

	s.eventBus.Emit(ctx, service.EventEmergencyAcknowledged, alert)

	return alert, nil
}

// ResolveAlert closes an active or acknowledged alert and disarms its timers.
func (s *emergencyService) ResolveAlert(ctx context.Context, alertID uuid.UUID, resolvedBy, resolution string) (*entity.Alert, error) {
	unlock := s.locks.lock(alertID)
	defer unlock()

	alert, err := s.loadAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if alert.Status.Terminal() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot resolve alert in status %s", alert.Status))
	}

	now := time.Now()
	alert.Status = entity.AlertStatusResolved
	alert.ResolvedAt = &now
	alert.ResolvedBy = resolvedBy
	details := "Alert resolved by " + resolvedBy
	if resolution != "" {
		details += ": " + resolution
	}
	alert.AppendTimeline("Alert Resolved", details, resolvedBy)

	if err := s.saveAlert(ctx, alert); err != nil {
		return nil, err
	}

	// A timer firing between the save and the cancel lands on a terminal
	// alert and no-ops, so this ordering is safe.
	s.cancelAlertJobs(ctx, alert.ID)

	s.notifyTransition(ctx, alert, "Emergency alert resolved by "+resolvedBy, entity.PriorityLow)

	s.eventBus.Emit(ctx, service.EventEmergencyResolved, alert)

	return alert, nil
}

// CancelAlert dismisses an active or acknowledged alert as a false alarm and
// disarms its timers.
func (s *emergencyService) CancelAlert(ctx context.Context, alertID uuid.UUID, cancelledBy, reason string) (*entity.Alert, error) {
	unlock := s.locks.lock(alertID)
	defer unlock()

	alert, err := s.loadAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if alert.Status.Terminal() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot cancel alert in status %s", alert.Status))
	}

	alert.Status = entity.AlertStatusCancelled
	details := "Alert cancelled by " + cancelledBy
	if reason != "" {
		details += ": " + reason
	}
	alert.AppendTimeline("Alert Cancelled", details, cancelledBy)

	if err := s.saveAlert(ctx, alert); err != nil {
		return nil, err
	}

	s.cancelAlertJobs(ctx, alert.ID)

	s.notifyTransition(ctx, alert, "Emergency alert cancelled as a false alarm by "+cancelledBy, entity.PriorityLow)

	s.eventBus.Emit(ctx, service.EventEmergencyCancelled, alert)

	return alert, nil
}

// EscalateAlert raises the escalation level of an alert by one and fires that
// level's notifications. Acknowledgement does not stop the chain; only
// resolved or cancelled alerts, or alerts already at the maximum level, are
// left untouched. That no-op is what makes duplicate and late timer fires
// safe.
func (s *emergencyService) EscalateAlert(ctx context.Context, alertID uuid.UUID) error {
	unlock := s.locks.lock(alertID)
	defer unlock()

	alert, err := s.loadAlert(ctx, alertID)
	if err != nil {
		return err
	}

	if alert.Status.Terminal() {
		return nil
	}
	if alert.EscalationLevel >= entity.MaxEscalationLevel {
		return nil
	}

	level := alert.EscalationLevel + 1
	alert.EscalationLevel = level
	alert.AppendTimeline("Alert Escalated", fmt.Sprintf("Escalation level increased to %d", level), systemActor)

	s.applyEscalationEffects(ctx, alert, level)

	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		if errors.Is(err, repository.ErrStaleAlert) {
			// A user transition won the race; the fresh state decides whether
			// the chain continues on the next fire.
			s.logger.Debug("escalation dropped after concurrent update",
				slog.String("alertID", alertID.String()),
			)

			return nil
		}
		if errors.Is(err, repository.ErrAlertNotFound) {
			return domainerrors.ErrAlertNotFound
		}

		return err
	}

	s.eventBus.Emit(ctx, service.EventEmergencyEscalated, alert)

	if level < entity.MaxEscalationLevel {
		s.scheduleAlertJob(ctx, alert.ID, entity.JobTypeEscalation, s.escalationInterval)
	}

	return nil
}

// GetAlert retrieves a single alert.
func (s *emergencyService) GetAlert(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error) {
	return s.loadAlert(ctx, alertID)
}

// GetActiveAlerts retrieves the user's alerts still requiring attention.
func (s *emergencyService) GetActiveAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	alerts, err := s.alertRepo.FindActiveAlertsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active alerts")
	}

	return alerts, nil
}

// GetAlertHistory retrieves the user's alert history, newest first.
func (s *emergencyService) GetAlertHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Alert, error) {
	alerts, err := s.alertRepo.FindAlertsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alert history")
	}

	return alerts, nil
}

// HandleScheduledJob consumes a fired response or escalation timer.
func (s *emergencyService) HandleScheduledJob(ctx context.Context, job *entity.ScheduledJob) error {
	var payload entity.AlertJobPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		s.logger.Error("dropping scheduled job with undecodable payload",
			slog.String("key", job.Key),
		)

		return nil
	}

	alertID, err := uuid.Parse(payload.AlertID)
	if err != nil {
		s.logger.Error("dropping scheduled job with invalid alert ID",
			slog.String("key", job.Key),
			slog.String("alertID", payload.AlertID),
		)

		return nil
	}

	switch job.JobType {
	case entity.JobTypeResponse:
		return s.handleResponseJob(ctx, alertID)
	case entity.JobTypeEscalation:
		if err := s.EscalateAlert(ctx, alertID); err != nil {
			if errors.Is(err, domainerrors.ErrAlertNotFound) {
				s.logger.Warn("escalation fired for missing alert",
					slog.String("alertID", alertID.String()),
				)

				return nil
			}

			return err
		}

		return nil
	default:
		s.logger.Warn("ignoring scheduled job of unknown type",
			slog.String("key", job.Key),
			slog.String("jobType", job.JobType),
		)

		return nil
	}
}

// handleResponseJob performs the immediate response to a new alert: the
// user's emergency contacts are notified right away, without waiting for the
// first escalation step.
func (s *emergencyService) handleResponseJob(ctx context.Context, alertID uuid.UUID) error {
	unlock := s.locks.lock(alertID)
	defer unlock()

	alert, err := s.loadAlert(ctx, alertID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlertNotFound) {
			s.logger.Warn("response job fired for missing alert",
				slog.String("alertID", alertID.String()),
			)

			return nil
		}

		return err
	}

	if alert.Status != entity.AlertStatusActive || alert.Response.ContactsNotified {
		return nil
	}

	s.ensureContactsNotified(ctx, alert, alert.Priority)
	if !alert.Response.ContactsNotified {
		// Delivery failed; the level-1 escalation retries it.
		return nil
	}

	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		if errors.Is(err, repository.ErrStaleAlert) {
			// The flag is lost with the save, so a duplicate fire may send
			// again. Contacts tolerate a repeat; missing the first send
			// entirely would be worse.
			return nil
		}

		return err
	}

	return nil
}

// applyEscalationEffects fires the notifications owed at the given level.
// Effects are cumulative and idempotent: a tier already marked notified is
// skipped, and a failed send leaves its flag unset so the next level (or a
// duplicate fire) retries it. Medical dispatch is reserved for critical
// alerts. Notification failures never abort the transition.
func (s *emergencyService) applyEscalationEffects(ctx context.Context, alert *entity.Alert, level int) {
	s.ensureContactsNotified(ctx, alert, entity.PriorityCritical)

	if level >= 2 {
		s.ensurePoliceNotified(ctx, alert)
	}
	if level >= 3 && alert.Priority == entity.PriorityCritical {
		s.ensureMedicalNotified(ctx, alert)
	}
}

// notifyTransition tells the user's contacts about a lifecycle change.
// Delivery is best effort: a failure is logged and the committed transition
// stands.
func (s *emergencyService) notifyTransition(ctx context.Context, alert *entity.Alert, message string, priority entity.AlertPriority) {
	if err := s.notifier.NotifyContacts(ctx, alert.UserID.String(), message, priority); err != nil {
		s.logger.Error("failed to notify contacts of alert transition",
			slog.String("alertID", alert.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *emergencyService) ensureContactsNotified(ctx context.Context, alert *entity.Alert, priority entity.AlertPriority) {
	if alert.Response.ContactsNotified {
		return
	}

	message := fmt.Sprintf("Emergency alert (%s): your contact needs help. Please respond immediately.", alert.Type)
	if err := s.notifier.NotifyContacts(ctx, alert.UserID.String(), message, priority); err != nil {
		s.logger.Error("failed to notify emergency contacts",
			slog.String("alertID", alert.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	now := time.Now()
	alert.Response.ContactsNotified = true
	alert.Response.ContactsNotifiedAt = &now
}

func (s *emergencyService) ensurePoliceNotified(ctx context.Context, alert *entity.Alert) {
	if alert.Response.PoliceNotified {
		return
	}

	user, err := s.userRepo.FindUserByID(ctx, alert.UserID)
	if err != nil {
		s.logger.Error("failed to load user for police dispatch",
			slog.String("alertID", alert.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	payload := &service.PolicePayload{
		UserID:      alert.UserID.String(),
		AlertID:     alert.ID.String(),
		AlertType:   alert.Type,
		Priority:    alert.Priority,
		Location:    alert.Location,
		UserName:    user.FullName,
		UserPhone:   user.Phone,
		MedicalInfo: user.MedicalInfo,
	}
	if err := s.notifier.NotifyPolice(ctx, payload); err != nil {
		s.logger.Error("failed to notify police",
			slog.String("alertID", alert.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	now := time.Now()
	alert.Response.PoliceNotified = true
	alert.Response.PoliceNotifiedAt = &now
}

func (s *emergencyService) ensureMedicalNotified(ctx context.Context, alert *entity.Alert) {
	if alert.Response.MedicalNotified {
		return
	}

	user, err := s.userRepo.FindUserByID(ctx, alert.UserID)
	if err != nil {
		s.logger.Error("failed to load user for medical dispatch",
			slog.String("alertID", alert.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	payload := &service.MedicalPayload{
		UserID:      alert.UserID.String(),
		AlertID:     alert.ID.String(),
		AlertType:   alert.Type,
		Location:    alert.Location,
		MedicalInfo: user.MedicalInfo,
	}
	if err := s.notifier.NotifyMedical(ctx, payload); err != nil {
		s.logger.Error("failed to notify medical services",
			slog.String("alertID", alert.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	now := time.Now()
	alert.Response.MedicalNotified = true
	alert.Response.MedicalNotifiedAt = &now
}

// scheduleAlertJob arms a durable timer for the alert. Scheduling failures
// are logged rather than surfaced: the alert itself is already persisted and
// visible, and the queue retries nothing on our behalf.
func (s *emergencyService) scheduleAlertJob(ctx context.Context, alertID uuid.UUID, jobType string, delay time.Duration) {
	payload, err := json.Marshal(entity.AlertJobPayload{AlertID: alertID.String()})
	if err != nil {
		s.logger.Error("failed to encode alert job payload",
			slog.String("alertID", alertID.String()),
			slog.Any("error", err),
		)

		return
	}

	key := entity.JobKey(alertID.String(), jobType)
	if err := s.queue.ScheduleJob(ctx, key, jobType, payload, delay); err != nil {
		s.logger.Error("failed to schedule alert job",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// cancelAlertJobs disarms both timers for the alert. Cancellation is
// idempotent and unknown keys are no-ops.
func (s *emergencyService) cancelAlertJobs(ctx context.Context, alertID uuid.UUID) {
	for _, jobType := range []string{entity.JobTypeResponse, entity.JobTypeEscalation} {
		key := entity.JobKey(alertID.String(), jobType)
		if err := s.queue.CancelJob(ctx, key); err != nil {
			s.logger.Error("failed to cancel alert job",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}
}

func (s *emergencyService) loadAlert(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to load alert")
	}

	return alert, nil
}

func (s *emergencyService) saveAlert(ctx context.Context, alert *entity.Alert) error {
	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		switch {
		case errors.Is(err, repository.ErrStaleAlert):
			return domainerrors.ErrStaleWrite
		case errors.Is(err, repository.ErrAlertNotFound):
			return domainerrors.ErrAlertNotFound
		default:
			return err
		}
	}

	return nil
}
