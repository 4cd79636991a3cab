package impl

import (
	"context"
	"fmt"
	"log/slog"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

// AutoTrigger turns detector events into alerts: a geofence violation opens a
// geofence_violation alert, a movement anomaly an auto_detect alert. A user
// with an open alert of the same type is not alerted again, so a stream of
// updates from the same incident produces one alert.
type AutoTrigger struct {
	emergency usecase.EmergencyUsecase
	alertRepo repository.AlertRepository
	logger    *slog.Logger
}

// NewAutoTrigger creates the detector-event subscriber.
func NewAutoTrigger(
	emergency usecase.EmergencyUsecase,
	alertRepo repository.AlertRepository,
	logger *slog.Logger,
) *AutoTrigger {
	return &AutoTrigger{
		emergency: emergency,
		alertRepo: alertRepo,
		logger:    logger,
	}
}

// Register subscribes the trigger to the detector events on the bus.
func (t *AutoTrigger) Register(eventBus service.EventBus) {
	eventBus.Subscribe(service.EventGeofenceViolation, t.handleGeofenceViolation)
	eventBus.Subscribe(service.EventMovementUnusual, t.handleMovementAnomaly)
}

func (t *AutoTrigger) handleGeofenceViolation(ctx context.Context, payload any) {
	event, ok := payload.(*usecase.GeofenceViolationEvent)
	if !ok {
		t.logger.Error("unexpected geofence violation payload",
			slog.String("type", fmt.Sprintf("%T", payload)),
		)

		return
	}

	verb := "left safe zone"
	if event.Violation.Type == entity.GeofenceTypeDanger {
		verb = "entered danger zone"
	}

	t.openAlert(ctx, event.UserID, &usecase.CreateAlertInput{
		Type:        entity.AlertTypeGeofenceViolation,
		Location:    &event.Violation.Location,
		Description: fmt.Sprintf("User %s %q", verb, event.Violation.GeofenceName),
	})
}

func (t *AutoTrigger) handleMovementAnomaly(ctx context.Context, payload any) {
	event, ok := payload.(*usecase.MovementAnomalyEvent)
	if !ok {
		t.logger.Error("unexpected movement anomaly payload",
			slog.String("type", fmt.Sprintf("%T", payload)),
		)

		return
	}

	t.openAlert(ctx, event.UserID, &usecase.CreateAlertInput{
		Type:     entity.AlertTypeAutoDetect,
		Location: &event.Anomaly.Location,
		Description: fmt.Sprintf("Unusual movement detected (%s, max %.1f m/s)",
			event.Anomaly.Type, event.Anomaly.MaxSpeed),
	})
}

// openAlert creates the alert unless the user already has one of the same
// type open.
func (t *AutoTrigger) openAlert(ctx context.Context, userID uuid.UUID, input *usecase.CreateAlertInput) {
	active, err := t.alertRepo.FindActiveAlertsByUser(ctx, userID)
	if err != nil {
		t.logger.Error("failed to check active alerts before auto-trigger",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	for _, alert := range active {
		if alert.Type == input.Type {
			t.logger.Debug("suppressing duplicate auto-triggered alert",
				slog.String("userID", userID.String()),
				slog.String("type", input.Type.String()),
			)

			return
		}
	}

	alert, err := t.emergency.CreateAlert(ctx, userID, input)
	if err != nil {
		t.logger.Error("failed to open auto-triggered alert",
			slog.String("userID", userID.String()),
			slog.String("type", input.Type.String()),
			slog.Any("error", err),
		)

		return
	}

	t.logger.Info("auto-triggered alert opened",
		slog.String("alertID", alert.ID.String()),
		slog.String("userID", userID.String()),
		slog.String("type", input.Type.String()),
	)
}
