package app

import (
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/clock"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"github.com/saradorri/predictor/internal/infrastructure/scheduler"
)

func (a *application) InitScheduler(
	cycleUC domain.EnergyCycleUseCase,
	c domain.Clock,
	log *logger.Logger,
) (*scheduler.Scheduler, error) {
	loc := clock.Zone(a.config.Energy.UTCOffsetHour)
	return scheduler.NewScheduler(cycleUC, c, loc, a.config.Scheduler.DailyAt, log)
}
