package player

import (
	"context"
	"strings"

	"github.com/saradorri/predictor/internal/domain"
	"go.uber.org/zap"
)

// validateExternalID rejects empty player ids before any store access
func validateExternalID(externalID string) error {
	if strings.TrimSpace(externalID) == "" {
		return domain.NewInvalidInputError("user_id is required")
	}
	return nil
}

// storeError logs a repository failure and wraps it for the caller
func (uc *PlayerUseCase) storeError(ctx context.Context, operation, externalID string, err error) error {
	appErr := domain.NewStoreError(operation, err)
	uc.logger.WithContext(ctx).Error("Player store operation failed",
		zap.String("operation", operation),
		zap.String("userID", externalID),
		zap.String("code", appErr.Code),
		zap.Error(err))
	return appErr
}

// getExisting loads a player and fails with USER_NOT_FOUND when absent
func (uc *PlayerUseCase) getExisting(ctx context.Context, externalID string) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, uc.storeError(ctx, "get player", externalID, err)
	}
	if player == nil {
		uc.logger.WithContext(ctx).Warn("Player not found", zap.String("userID", externalID))
		return nil, domain.NewUserNotFoundError(externalID)
	}
	return player, nil
}
