package app

import (
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return repository.NewPlayerRepository(db)
}

func (a *application) InitEnergyCycleRepository(db *gorm.DB) domain.EnergyCycleRepository {
	return repository.NewEnergyCycleRepository(db)
}
