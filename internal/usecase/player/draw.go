package player

import (
	"context"

	"github.com/saradorri/predictor/internal/domain"
	"go.uber.org/zap"
)

// drawPrediction debits one energy atomically. A prediction is only generated
// after the debit succeeded, and once it has the draw is returned even if the
// refreshed row cannot be read back.
func (uc *PlayerUseCase) drawPrediction(ctx context.Context, externalID string) (*domain.Draw, error) {
	log := uc.logger.WithContext(ctx)

	if err := validateExternalID(externalID); err != nil {
		return nil, err
	}

	player, err := uc.getExisting(ctx, externalID)
	if err != nil {
		return nil, err
	}

	consumed, err := uc.playerRepo.ConsumeEnergy(ctx, externalID)
	if err != nil {
		return nil, uc.storeError(ctx, "consume energy", externalID, err)
	}
	if !consumed {
		log.Warn("Draw rejected, no energy left", zap.String("userID", externalID))
		return nil, domain.NewInsufficientEnergyError(externalID)
	}

	stored, err := uc.playerRepo.GetByExternalID(ctx, externalID)
	if err != nil || stored == nil {
		// the debit is committed; answer from the pre-debit read
		log.Warn("Could not re-read player after draw, returning estimated energy",
			zap.String("userID", externalID),
			zap.Error(err))
		if player.Energy > 0 {
			player.Energy--
		}
	} else {
		player = stored
	}

	prediction := uc.generator.Next(player.Chance)

	log.Info("Prediction drawn",
		zap.String("userID", externalID),
		zap.Int("energy", player.Energy),
		zap.Int("chance", player.Chance),
		zap.Float64("coefficient", prediction.Coefficient))

	return &domain.Draw{
		Player:     player,
		Energy:     player.Energy,
		Prediction: prediction,
	}, nil
}
