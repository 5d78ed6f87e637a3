package app

import (
	"context"

	"github.com/saradorri/predictor/internal/http"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"github.com/saradorri/predictor/internal/infrastructure/scheduler"
	"go.uber.org/fx"
)

// RegisterHooks ties the server and the daily scheduler to the fx lifecycle
func (a *application) RegisterHooks(
	lc fx.Lifecycle,
	server *http.Server,
	sched *scheduler.Scheduler,
	log *logger.Logger,
) {
	// Registered first so it runs last on stop
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = log.Sync()
			return nil
		},
	})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})

	if a.config.Scheduler.Enabled {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return sched.Start()
			},
			OnStop: func(context.Context) error {
				return sched.Stop()
			},
		})
	}
}
