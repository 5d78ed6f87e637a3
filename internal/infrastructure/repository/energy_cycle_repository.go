package repository

import (
	"context"
	"errors"

	"github.com/saradorri/predictor/internal/domain"
	"gorm.io/gorm"
)

// EnergyCycleRepository implements domain.EnergyCycleRepository
type EnergyCycleRepository struct {
	db *gorm.DB
}

// NewEnergyCycleRepository creates a new energy cycle repository
func NewEnergyCycleRepository(db *gorm.DB) domain.EnergyCycleRepository {
	return &EnergyCycleRepository{
		db: db,
	}
}

// GetByCycleID retrieves a processed cycle, nil when the cycle never ran
func (r *EnergyCycleRepository) GetByCycleID(ctx context.Context, cycleID string) (*domain.EnergyCycle, error) {
	if r.db == nil {
		return nil, domain.ErrStoreNotConfigured
	}
	var cycle domain.EnergyCycle
	result := r.db.WithContext(ctx).Where("cycle_id = ?", cycleID).First(&cycle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &cycle, nil
}

// Create records a processed cycle; a second insert for the same id fails on the primary key
func (r *EnergyCycleRepository) Create(ctx context.Context, cycle *domain.EnergyCycle) error {
	if r.db == nil {
		return domain.ErrStoreNotConfigured
	}
	return r.db.WithContext(ctx).Create(cycle).Error
}
