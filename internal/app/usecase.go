package app

import (
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/clock"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"github.com/saradorri/predictor/internal/infrastructure/prediction"
	"github.com/saradorri/predictor/internal/usecase/energycycle"
	"github.com/saradorri/predictor/internal/usecase/player"
)

func (a *application) InitClock() domain.Clock {
	return clock.NewFixedZoneClock(a.config.Energy.UTCOffsetHour)
}

func (a *application) InitEnergyPolicy() domain.EnergyPolicy {
	return domain.EnergyPolicy{
		MaxEnergy:     a.config.Energy.MaxEnergy,
		CatchUpCap:    a.config.Energy.CatchUpCap,
		InitialEnergy: a.config.Energy.InitialEnergy,
	}
}

func (a *application) InitPredictionGenerator() domain.PredictionGenerator {
	return prediction.NewGenerator()
}

func (a *application) InitPlayerUseCase(
	pr domain.PlayerRepository,
	gen domain.PredictionGenerator,
	c domain.Clock,
	policy domain.EnergyPolicy,
	log *logger.Logger,
) domain.PlayerUseCase {
	return player.NewPlayerUseCase(pr, gen, c, policy, log)
}

func (a *application) InitEnergyCycleUseCase(
	cr domain.EnergyCycleRepository,
	pr domain.PlayerRepository,
	lock domain.CycleLock,
	c domain.Clock,
	policy domain.EnergyPolicy,
	log *logger.Logger,
) domain.EnergyCycleUseCase {
	return energycycle.NewEnergyCycleUseCase(cr, pr, lock, c, policy, a.config.Energy.BulkBatchSize, log)
}
