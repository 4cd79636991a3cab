package notification

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// channel implements service.NotificationChannel by fanning emergency
// messages out to contact devices over Firebase and to responder services
// over HTTP.
type channel struct {
	push     *pushSender
	webhooks *webhookSender
	users    repository.UserRepository
	cfg      *config.Config
	logger   *slog.Logger
}

// Params holds dependencies for the NotificationChannel, injected by Fx
type Params struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	UserRepo repository.UserRepository
}

// New creates the outbound notification channel. Firebase is optional in
// development: without credentials the contact channel degrades to logging.
func New(params Params) (service.NotificationChannel, error) {
	var push *pushSender
	if params.Config.Firebase != nil && params.Config.Firebase.CredentialsPath != "" {
		sender, err := newPushSender(params.Ctx, params.Config.Firebase.CredentialsPath)
		if err != nil {
			return nil, err
		}
		push = sender
	} else {
		params.Logger.Warn("Firebase not configured, contact notifications will be logged only")
	}

	var timeout = defaultWebhookTimeout
	if params.Config.Responders != nil && params.Config.Responders.Timeout > 0 {
		timeout = params.Config.Responders.Timeout
	}

	return &channel{
		push:     push,
		webhooks: newWebhookSender(timeout),
		users:    params.UserRepo,
		cfg:      params.Config,
		logger:   params.Logger,
	}, nil
}

// NotifyContacts sends a push message to every active emergency contact of
// the user that has a device token registered.
func (c *channel) NotifyContacts(ctx context.Context, userID string, message string, priority entity.AlertPriority) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return errors.Wrap(err, "invalid user ID")
	}

	contacts, err := c.users.FindEmergencyContacts(ctx, uid)
	if err != nil {
		return errors.Wrap(err, "failed to load emergency contacts")
	}

	if len(contacts) == 0 {
		c.logger.Warn("user has no active emergency contacts",
			slog.String("userID", userID),
		)

		return nil
	}

	tokens := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		if contact.FCMToken != "" {
			tokens = append(tokens, contact.FCMToken)
		}
	}

	if c.push == nil || len(tokens) == 0 {
		c.logger.Info("emergency contact notification (no push delivery)",
			slog.String("userID", userID),
			slog.String("message", message),
			slog.String("priority", string(priority)),
			slog.Int("contacts", len(contacts)),
		)

		return nil
	}

	successCount, failureCount, err := c.push.sendMulticast(ctx, tokens, "Emergency Alert", message, map[string]string{
		"user_id":  userID,
		"priority": string(priority),
	})
	if err != nil {
		return err
	}

	c.logger.Info("emergency contacts notified",
		slog.String("userID", userID),
		slog.Int("success", successCount),
		slog.Int("failed", failureCount),
	)

	return nil
}

// NotifyPolice forwards the alert to the police dispatch endpoint.
func (c *channel) NotifyPolice(ctx context.Context, payload *service.PolicePayload) error {
	if c.cfg.Responders == nil || c.cfg.Responders.PoliceURL == "" {
		c.logger.Warn("police dispatch not configured, skipping",
			slog.String("alertID", payload.AlertID),
		)

		return nil
	}

	return c.webhooks.post(ctx, c.cfg.Responders.PoliceURL, payload)
}

// NotifyMedical forwards the alert to the medical dispatch endpoint.
func (c *channel) NotifyMedical(ctx context.Context, payload *service.MedicalPayload) error {
	if c.cfg.Responders == nil || c.cfg.Responders.MedicalURL == "" {
		c.logger.Warn("medical dispatch not configured, skipping",
			slog.String("alertID", payload.AlertID),
		)

		return nil
	}

	return c.webhooks.post(ctx, c.cfg.Responders.MedicalURL, payload)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
