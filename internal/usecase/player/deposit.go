package player

import (
	"context"

	"github.com/saradorri/predictor/internal/domain"
	"go.uber.org/zap"
)

// applyDeposit merges one accepted deposit into the player's deposit-owned fields
func (uc *PlayerUseCase) applyDeposit(ctx context.Context, externalID string, amount float64, kind domain.EventKind) (*domain.Player, error) {
	log := uc.logger.WithContext(ctx)

	if err := validateExternalID(externalID); err != nil {
		return nil, err
	}
	if err := domain.ValidateDepositAmount(amount); err != nil {
		log.Warn("Rejected deposit amount", zap.String("userID", externalID), zap.Float64("amount", amount))
		return nil, err
	}
	amount = domain.RoundCents(amount)

	log.Info("Applying deposit",
		zap.String("userID", externalID),
		zap.Float64("amount", amount),
		zap.String("event", string(kind)))

	existing, err := uc.playerRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, uc.storeError(ctx, "get player", externalID, err)
	}
	if existing == nil {
		log.Debug("Player not found, starting from defaults", zap.String("userID", externalID))
		existing = domain.NewPlayer(externalID, uc.policy)
	}

	write := uc.buildDepositWrite(existing, amount, kind)

	player, err := uc.playerRepo.UpsertDeposit(ctx, write)
	if err != nil {
		return nil, uc.storeError(ctx, "upsert deposit", externalID, err)
	}

	log.Info("Deposit applied",
		zap.String("userID", externalID),
		zap.Float64("depositTotal", player.DepositTotal),
		zap.Int("chance", player.Chance))
	return player, nil
}

// buildDepositWrite derives the new deposit total, chance and login stamp for kind
func (uc *PlayerUseCase) buildDepositWrite(existing *domain.Player, amount float64, kind domain.EventKind) domain.DepositWrite {
	// chance is derived from the total as stored, not from the unrounded sum
	newTotal := domain.RoundCents(existing.DepositTotal + amount)

	write := domain.DepositWrite{
		ExternalID:    existing.ExternalID,
		DepositTotal:  newTotal,
		Chance:        existing.Chance,
		InitialEnergy: uc.policy.InitialEnergy,
	}

	switch {
	case kind.RecomputesChance():
		write.Chance = domain.ComputeChance(newTotal)
		write.UpdateChance = true
	case kind.ResetsChance():
		// dep resets to the baseline even though the total keeps accumulating
		write.Chance = domain.ChanceBaseline
		write.UpdateChance = true
	}

	if kind.StampsLogin() {
		today := uc.clock.Today()
		write.LastLoginDate = &today
	}

	return write
}
