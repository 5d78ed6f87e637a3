package app

import (
	"context"
	"time"

	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/lock"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitCycleLock returns a Redis lock when redis is enabled, otherwise an in-process one
func (a *application) InitCycleLock(lc fx.Lifecycle, log *logger.Logger) (domain.CycleLock, error) {
	cfg := a.config.Redis
	if !cfg.Enabled {
		log.Info("Redis disabled, using in-process cycle lock")
		return lock.NewLocalCycleLock(log), nil
	}

	ctx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()

	client, err := lock.NewRedisClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	log.Info("Using redis cycle lock", zap.String("addr", cfg.Addr), zap.Duration("ttl", cfg.LockTTL))
	return lock.NewRedisCycleLock(client, cfg.LockTTL, log), nil
}
