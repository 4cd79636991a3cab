package queue

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/lifecycle"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the DurableQueue, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates a DurableQueue based on configuration. The memory provider is
// the default for development; production uses the redis provider so pending
// escalation timers survive restarts.
func New(params Params) (service.DurableQueue, error) {
	cfg := params.Config.Queue
	logger := params.Logger

	provider := constants.QueueProviderMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var durableQueue service.DurableQueue

	switch provider {
	case constants.QueueProviderMemory:
		logger.Info("Using in-memory durable queue")

		durableQueue = NewMemoryQueue(logger)

	case constants.QueueProviderRedis:
		redisCfg := params.Config.Redis
		if redisCfg == nil || redisCfg.Addr == "" {
			return nil, errors.New("redis address is required for redis queue provider")
		}
		logger.Info("Using redis durable queue",
			slog.String("addr", redisCfg.Addr),
			slog.String("keyPrefix", cfg.KeyPrefix),
		)

		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, errors.Wrap(err, "failed to connect to redis")
		}

		durableQueue = NewRedisQueue(client, cfg.KeyPrefix, cfg.PollInterval, logger)

	default:
		return nil, errors.Errorf("unknown queue provider: %s", provider)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing durable queue")

			return durableQueue.Close()
		},
	})

	return durableQueue, nil
}

// Module provides the durable queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
