package player

import (
	"context"

	"github.com/saradorri/predictor/internal/domain"
	"go.uber.org/zap"
)

// checkAndRefillEnergy applies min(elapsed, cap) energy once per calendar day
func (uc *PlayerUseCase) checkAndRefillEnergy(ctx context.Context, externalID string, today domain.Date) (*domain.Player, error) {
	log := uc.logger.WithContext(ctx)

	if err := validateExternalID(externalID); err != nil {
		return nil, err
	}

	player, err := uc.getExisting(ctx, externalID)
	if err != nil {
		return nil, err
	}

	if player.LastLoginDate != nil && player.LastLoginDate.Equal(today) {
		log.Debug("Energy already granted today",
			zap.String("userID", externalID),
			zap.String("today", today.String()))
		return player, nil
	}

	elapsed := uc.policy.ElapsedDays(player.LastLoginDate, today)
	if elapsed == 0 {
		// last login is ahead of today; keep the gate where it is
		log.Warn("Last login date is after today, skipping refill",
			zap.String("userID", externalID),
			zap.String("lastLoginDate", player.LastLoginDate.String()),
			zap.String("today", today.String()))
		return player, nil
	}

	grant := uc.policy.GrantFor(elapsed)
	newEnergy := uc.policy.Refill(player.Energy, elapsed)

	log.Info("Refilling energy",
		zap.String("userID", externalID),
		zap.Int("elapsedDays", elapsed),
		zap.Int("grant", grant),
		zap.Int("energy", player.Energy),
		zap.Int("newEnergy", newEnergy))

	applied, err := uc.playerRepo.RefillEnergy(ctx, externalID, player.LastLoginDate, today, grant, uc.policy.MaxEnergy)
	if err != nil {
		return nil, uc.storeError(ctx, "refill energy", externalID, err)
	}
	if !applied {
		log.Info("Concurrent login already refilled energy, returning fresh state", zap.String("userID", externalID))
		return uc.getExisting(ctx, externalID)
	}

	// the capped update is authoritative; a draw may have landed between the read and the write
	stored, err := uc.playerRepo.GetByExternalID(ctx, externalID)
	if err != nil || stored == nil {
		log.Warn("Could not re-read player after refill, returning computed state",
			zap.String("userID", externalID),
			zap.Int("newEnergy", newEnergy),
			zap.Error(err))
		player.Energy = newEnergy
		player.LastLoginDate = &today
		return player, nil
	}
	return stored, nil
}

// login ensures the player exists and runs the daily refill for the clock's today
func (uc *PlayerUseCase) login(ctx context.Context, externalID string) (*domain.Player, error) {
	log := uc.logger.WithContext(ctx)

	if err := validateExternalID(externalID); err != nil {
		return nil, err
	}

	today := uc.clock.Today()
	candidate := domain.NewPlayer(externalID, uc.policy)
	candidate.LastLoginDate = &today

	player, created, err := uc.playerRepo.EnsureExists(ctx, candidate)
	if err != nil {
		return nil, uc.storeError(ctx, "ensure player", externalID, err)
	}
	if created {
		log.Info("Created player on first login",
			zap.String("userID", externalID),
			zap.Int("energy", player.Energy))
		return player, nil
	}

	return uc.checkAndRefillEnergy(ctx, externalID, today)
}
