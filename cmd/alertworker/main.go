package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"lifeline/config"
	"lifeline/internal/delivery"
	"lifeline/internal/delivery/worker"
	"lifeline/internal/delivery/worker/handler"
	"lifeline/internal/domain/repository"
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

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
