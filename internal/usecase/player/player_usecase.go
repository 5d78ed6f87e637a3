package player

import (
	"context"

	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
)

// PlayerUseCase implements the deposit, energy and draw rules for a single player
type PlayerUseCase struct {
	playerRepo domain.PlayerRepository
	generator  domain.PredictionGenerator
	clock      domain.Clock
	policy     domain.EnergyPolicy
	logger     *logger.Logger
}

// NewPlayerUseCase creates a new player usecase
func NewPlayerUseCase(
	playerRepo domain.PlayerRepository,
	generator domain.PredictionGenerator,
	clock domain.Clock,
	policy domain.EnergyPolicy,
	logger *logger.Logger,
) domain.PlayerUseCase {
	logger.Info("PlayerUseCase initialized successfully")
	return &PlayerUseCase{
		playerRepo: playerRepo,
		generator:  generator,
		clock:      clock,
		policy:     policy,
		logger:     logger,
	}
}

// ApplyDeposit adds amount to the player's deposit total and applies the event's chance rule
func (uc *PlayerUseCase) ApplyDeposit(ctx context.Context, externalID string, amount float64, kind domain.EventKind) (*domain.Player, error) {
	return uc.applyDeposit(ctx, externalID, amount, kind)
}

// CheckAndRefillEnergy grants the daily energy accrual at most once per calendar day
func (uc *PlayerUseCase) CheckAndRefillEnergy(ctx context.Context, externalID string, today domain.Date) (*domain.Player, error) {
	return uc.checkAndRefillEnergy(ctx, externalID, today)
}

// DrawPrediction debits one energy and returns a display prediction
func (uc *PlayerUseCase) DrawPrediction(ctx context.Context, externalID string) (*domain.Draw, error) {
	return uc.drawPrediction(ctx, externalID)
}

// Login creates an unseen player or refills an existing one for today
func (uc *PlayerUseCase) Login(ctx context.Context, externalID string) (*domain.Player, error) {
	return uc.login(ctx, externalID)
}

// GetPlayer returns the stored state of a player
func (uc *PlayerUseCase) GetPlayer(ctx context.Context, externalID string) (*domain.Player, error) {
	if err := validateExternalID(externalID); err != nil {
		return nil, err
	}
	return uc.getExisting(ctx, externalID)
}
