package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saradorri/predictor/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository implements domain.PlayerRepository.
// Every write touches only the columns its operation owns, so a deposit never
// overwrites energy and an energy change never overwrites deposits.
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByExternalID retrieves a player by external id, nil when absent
func (r *PlayerRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Player, error) {
	if r.db == nil {
		return nil, domain.ErrStoreNotConfigured
	}
	var player domain.Player
	result := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// UpsertDeposit inserts the player or merges the deposit-owned columns in one statement
func (r *PlayerRepository) UpsertDeposit(ctx context.Context, write domain.DepositWrite) (*domain.Player, error) {
	if r.db == nil {
		return nil, domain.ErrStoreNotConfigured
	}
	now := time.Now()
	player := &domain.Player{
		ExternalID:    write.ExternalID,
		DepositTotal:  write.DepositTotal,
		Chance:        write.Chance,
		Energy:        write.InitialEnergy,
		LastLoginDate: write.LastLoginDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	columns := []string{"deposit_total", "updated_at"}
	if write.UpdateChance {
		columns = append(columns, "chance")
	}
	if write.LastLoginDate != nil {
		columns = append(columns, "last_login_date")
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(player).Error
	if err != nil {
		return nil, err
	}

	return r.mustGet(ctx, write.ExternalID)
}

// EnsureExists inserts the player unless one with the same external id exists.
// It returns the stored row and whether this call created it.
func (r *PlayerRepository) EnsureExists(ctx context.Context, player *domain.Player) (*domain.Player, bool, error) {
	if r.db == nil {
		return nil, false, domain.ErrStoreNotConfigured
	}
	now := time.Now()
	row := *player
	row.ID = 0
	row.CreatedAt = now
	row.UpdatedAt = now

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if result.Error != nil {
		return nil, false, result.Error
	}

	stored, err := r.mustGet(ctx, player.ExternalID)
	if err != nil {
		return nil, false, err
	}
	return stored, result.RowsAffected > 0, nil
}

// RefillEnergy applies the daily grant only if last_login_date still holds the
// value the caller read. It reports false when another writer got there first.
func (r *PlayerRepository) RefillEnergy(ctx context.Context, externalID string, expectedLast *domain.Date, today domain.Date, grant, maxEnergy int) (bool, error) {
	if r.db == nil {
		return false, domain.ErrStoreNotConfigured
	}
	query := r.db.WithContext(ctx).Model(&domain.Player{}).Where("external_id = ?", externalID)
	if expectedLast == nil {
		query = query.Where("last_login_date IS NULL")
	} else {
		query = query.Where("last_login_date = ?", *expectedLast)
	}

	result := query.Updates(map[string]interface{}{
		"energy":          cappedIncrement(grant, maxEnergy),
		"last_login_date": today,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ConsumeEnergy debits one unit when the balance allows it
func (r *PlayerRepository) ConsumeEnergy(ctx context.Context, externalID string) (bool, error) {
	if r.db == nil {
		return false, domain.ErrStoreNotConfigured
	}
	result := r.db.WithContext(ctx).Model(&domain.Player{}).
		Where("external_id = ? AND energy >= 1", externalID).
		Updates(map[string]interface{}{
			"energy":     gorm.Expr("energy - 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GrantEnergy adds amount to the player's energy, capped at maxEnergy
func (r *PlayerRepository) GrantEnergy(ctx context.Context, externalID string, amount, maxEnergy int) error {
	if r.db == nil {
		return domain.ErrStoreNotConfigured
	}
	result := r.db.WithContext(ctx).Model(&domain.Player{}).
		Where("external_id = ?", externalID).
		Updates(map[string]interface{}{
			"energy":     cappedIncrement(amount, maxEnergy),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("player %s not found", externalID)
	}
	return nil
}

// ListExternalIDs returns every player's external id in insertion order
func (r *PlayerRepository) ListExternalIDs(ctx context.Context) ([]string, error) {
	if r.db == nil {
		return nil, domain.ErrStoreNotConfigured
	}
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.Player{}).Order("id ASC").Pluck("external_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PlayerRepository) mustGet(ctx context.Context, externalID string) (*domain.Player, error) {
	player, err := r.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, fmt.Errorf("player %s missing after write", externalID)
	}
	return player, nil
}

// cappedIncrement builds energy + amount capped at max. Rows already at or above
// max keep their value so a write never lowers energy.
func cappedIncrement(amount, maxEnergy int) clause.Expr {
	return gorm.Expr(
		"CASE WHEN energy >= CAST(? AS INTEGER) THEN energy "+
			"WHEN energy + CAST(? AS INTEGER) > CAST(? AS INTEGER) THEN CAST(? AS INTEGER) "+
			"ELSE energy + CAST(? AS INTEGER) END",
		maxEnergy, amount, maxEnergy, maxEnergy, amount,
	)
}
