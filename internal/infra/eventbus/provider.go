package eventbus

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the EventBus, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the in-process event bus and, when configured, attaches the
// Google Pub/Sub bridge so lifecycle events are mirrored to the topic.
func New(params Params) (service.EventBus, error) {
	eventBus := NewBus(params.Logger)

	cfg := params.Config.PubSub
	if cfg != nil && cfg.Provider == constants.PubSubProviderGoogle {
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		bridge, err := NewGoogleBridge(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
		if err != nil {
			return nil, err
		}

		bridge.Attach(eventBus,
			service.EventEmergencyCreated,
			service.EventEmergencyAcknowledged,
			service.EventEmergencyResolved,
			service.EventEmergencyCancelled,
			service.EventEmergencyEscalated,
			service.EventGeofenceViolation,
			service.EventMovementUnusual,
		)

		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return bridge.Close()
			},
		})
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing event bus")

			return eventBus.Close()
		},
	})

	return eventBus, nil
}

// Module provides the event bus FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
