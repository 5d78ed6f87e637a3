package app

import (
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/http/handlers"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
)

func (a *application) InitDepositHandler(uc domain.PlayerUseCase, log *logger.Logger) *handlers.DepositHandler {
	return handlers.NewDepositHandler(uc, log)
}

func (a *application) InitPlayerHandler(uc domain.PlayerUseCase, log *logger.Logger) *handlers.PlayerHandler {
	return handlers.NewPlayerHandler(uc, log)
}

func (a *application) InitEnergyHandler(uc domain.EnergyCycleUseCase, log *logger.Logger) *handlers.EnergyHandler {
	return handlers.NewEnergyHandler(uc, log)
}
