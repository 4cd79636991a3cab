package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"lifeline/config"
	"lifeline/internal/delivery"
	"lifeline/internal/delivery/cron"
	"lifeline/internal/delivery/http"
	"lifeline/internal/delivery/http/router/handler"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/safety"
	"lifeline/internal/domain/service"
	"lifeline/internal/infra/eventbus"
	logs "lifeline/internal/infra/log"
	"lifeline/internal/infra/notification"
	"lifeline/internal/infra/persistence/postgres"
	"lifeline/internal/infra/queue"
	"lifeline/internal/usecase"
	"lifeline/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			registerJobHandler,
			registerAutoTrigger,
			cron.NewCheckInSweeper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAlertRepository,
			postgres.NewUserRepository,
			postgres.NewGeofenceRepository,
			postgres.NewLocationSampleRepository,
			postgres.NewCheckInRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		queue.Module,
		eventbus.Module,
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newEmergencyService,
			newLocationService,
			impl.NewCheckInService,
			impl.NewAutoTrigger,
		),
	)
}

// newEmergencyService wires the emergency workflow with the configured
// escalation interval
func newEmergencyService(
	cfg *config.Config,
	alertRepo repository.AlertRepository,
	userRepo repository.UserRepository,
	notifier service.NotificationChannel,
	durableQueue service.DurableQueue,
	eventBus service.EventBus,
	logger *slog.Logger,
) usecase.EmergencyUsecase {
	var interval time.Duration
	if cfg.Escalation != nil {
		interval = cfg.Escalation.Interval
	}

	return impl.NewEmergencyService(alertRepo, userRepo, notifier, durableQueue, eventBus, interval, logger)
}

// newLocationService wires location ingestion with the configured movement
// thresholds and sample window
func newLocationService(
	cfg *config.Config,
	sampleRepo repository.LocationSampleRepository,
	geofenceRepo repository.GeofenceRepository,
	eventBus service.EventBus,
	logger *slog.Logger,
) usecase.LocationUsecase {
	thresholds := safety.DefaultMovementThresholds()

	var lookback time.Duration
	var maxSamples int
	if cfg.Safety != nil {
		if cfg.Safety.HighSpeed > 0 {
			thresholds.HighSpeed = cfg.Safety.HighSpeed
		}
		if cfg.Safety.AverageSpeed > 0 {
			thresholds.AverageSpeed = cfg.Safety.AverageSpeed
		}
		if cfg.Safety.SpeedVariation > 0 {
			thresholds.SpeedVariation = cfg.Safety.SpeedVariation
		}
		lookback = cfg.Safety.Lookback
		maxSamples = cfg.Safety.MaxSamples
	}

	return impl.NewLocationService(sampleRepo, geofenceRepo, eventBus, thresholds, lookback, maxSamples, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEmergencyHandler,
			handler.NewLocationHandler,
			handler.NewCheckInHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerJobHandler points fired timers at the emergency workflow
func registerJobHandler(durableQueue service.DurableQueue, emergencyUC usecase.EmergencyUsecase) {
	durableQueue.SetHandler(emergencyUC.HandleScheduledJob)
}

// registerAutoTrigger subscribes the detector-event consumer to the bus
func registerAutoTrigger(trigger *impl.AutoTrigger, eventBus service.EventBus) {
	trigger.Register(eventBus)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
