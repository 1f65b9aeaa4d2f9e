package bootstrap

import (
	"context"
	"log/slog"

	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/config"
	"fervo/internal/usecase/jobs"
	"fervo/internal/usecase/shared"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(NewDispatcher),
	fx.Invoke(func(*jobs.Dispatcher) {}),
)

func NewDispatcher(lc fx.Lifecycle, uow shared.UnitOfWork, sender shared.PushSender, mirror shared.DirectoryMirror, clk clock.Clock, cfg config.Config, logger *slog.Logger) *jobs.Dispatcher {
	d := jobs.NewDispatcher(uow, sender, mirror, clk, jobs.Options{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
		BaseBackoff:  cfg.Outbox.BaseBackoff,
		Lease:        cfg.Outbox.Lease,
	}, logger.With("component", "outbox"))

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}
