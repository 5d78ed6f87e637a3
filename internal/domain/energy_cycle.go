package domain

import (
	"context"
	"time"
)

// EnergyCycle records one processed bulk energy grant. Its existence makes any
// later run with the same CycleID a no-op.
type EnergyCycle struct {
	CycleID       string    `json:"cycleId" gorm:"primaryKey;column:cycle_id;type:varchar(128)"`
	ProcessedAt   time.Time `json:"processedAt" gorm:"not null"`
	UsersAffected int       `json:"usersAffected" gorm:"not null;default:0"`
	Succeeded     bool      `json:"succeeded" gorm:"not null"`
}

// TableName specifies the table name for EnergyCycle
func (c EnergyCycle) TableName() string {
	return "energy_cycles"
}

// CycleResult is the outcome of RunBulkEnergyGrant
type CycleResult struct {
	CycleID          string `json:"cycleId"`
	AlreadyProcessed bool   `json:"alreadyProcessed"`
	UpdatedCount     int    `json:"updatedCount"`
	FailedCount      int    `json:"failedCount"`
	Succeeded        bool   `json:"succeeded"`
}

// EnergyCycleRepository defines the interface for processed cycle records
//
//go:generate mockgen -source=energy_cycle.go -destination=mocks/energy_cycle_mock.go -package=mocks
type EnergyCycleRepository interface {
	GetByCycleID(ctx context.Context, cycleID string) (*EnergyCycle, error)
	Create(ctx context.Context, cycle *EnergyCycle) error
}

// CycleLock keeps two runs of the same cycle from overlapping
type CycleLock interface {
	Acquire(ctx context.Context, cycleID string) (bool, error)
	Release(ctx context.Context, cycleID string) error
}

// EnergyCycleUseCase defines the interface for the bulk energy grant
type EnergyCycleUseCase interface {
	RunBulkEnergyGrant(ctx context.Context, cycleID string) (*CycleResult, error)
}
