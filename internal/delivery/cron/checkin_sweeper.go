// Package cron runs the periodic overdue check-in sweep.
package cron

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const defaultSweepSpec = "@every 1m"

// CheckInSweeper periodically opens check_in_missed alerts for users whose
// check-in window has lapsed.
type CheckInSweeper struct {
	cron      *cron.Cron
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
}

// SweeperParams holds dependencies for the check-in sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// NewCheckInSweeper creates the sweeper and registers its lifecycle hooks.
// The sweep is disabled unless configured.
func NewCheckInSweeper(params SweeperParams) (*CheckInSweeper, error) {
	sweeper := &CheckInSweeper{
		cron:      cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
	}

	if params.Cfg.CheckIn == nil || !params.Cfg.CheckIn.Enabled {
		params.Logger.Info("Check-in sweep disabled")

		return sweeper, nil
	}

	spec := params.Cfg.CheckIn.SweepSpec
	if spec == "" {
		spec = defaultSweepSpec
	}

	if _, err := sweeper.cron.AddFunc(spec, sweeper.sweep); err != nil {
		return nil, errors.Wrapf(err, "invalid check-in sweep spec %q", spec)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.logger.Info("Starting check-in sweep", slog.String("spec", spec))
			sweeper.cron.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.logger.Info("Stopping check-in sweep")
			stopped := sweeper.cron.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}

			return nil
		},
	})

	return sweeper, nil
}

func (s *CheckInSweeper) sweep() {
	opened, err := s.checkInUC.SweepOverdue(context.Background())
	if err != nil {
		s.logger.Error("Check-in sweep failed", slog.Any("error", err))

		return
	}

	if opened > 0 {
		s.logger.Info("Check-in sweep opened alerts", slog.Int("opened", opened))
	}
}
