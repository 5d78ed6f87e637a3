package energycycle

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// DefaultBatchSize is the number of players granted concurrently per batch
const DefaultBatchSize = 50

// EnergyCycleUseCase runs the "+1 energy for everyone" pass at most once per cycle id
type EnergyCycleUseCase struct {
	cycleRepo  domain.EnergyCycleRepository
	playerRepo domain.PlayerRepository
	lock       domain.CycleLock
	clock      domain.Clock
	policy     domain.EnergyPolicy
	batchSize  int
	logger     *logger.Logger
}

// NewEnergyCycleUseCase creates a new energy cycle usecase
func NewEnergyCycleUseCase(
	cycleRepo domain.EnergyCycleRepository,
	playerRepo domain.PlayerRepository,
	lock domain.CycleLock,
	clock domain.Clock,
	policy domain.EnergyPolicy,
	batchSize int,
	logger *logger.Logger,
) domain.EnergyCycleUseCase {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	logger.Info("EnergyCycleUseCase initialized successfully", zap.Int("batchSize", batchSize))
	return &EnergyCycleUseCase{
		cycleRepo:  cycleRepo,
		playerRepo: playerRepo,
		lock:       lock,
		clock:      clock,
		policy:     policy,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// RunBulkEnergyGrant grants one energy to every player unless cycleID was already processed
func (uc *EnergyCycleUseCase) RunBulkEnergyGrant(ctx context.Context, cycleID string) (*domain.CycleResult, error) {
	log := uc.logger.WithContext(ctx).WithField("cycleID", cycleID)

	if strings.TrimSpace(cycleID) == "" {
		return nil, domain.NewInvalidInputError("cycleId is required")
	}

	if result, err := uc.processedResult(ctx, cycleID); result != nil || err != nil {
		return result, err
	}

	acquired, err := uc.lock.Acquire(ctx, cycleID)
	if err != nil {
		log.Error("Failed to acquire cycle lock", zap.Error(err))
		return nil, domain.NewStoreError("acquire cycle lock", err)
	}
	if !acquired {
		log.Warn("Cycle is already running elsewhere")
		return nil, domain.NewCycleInProgressError(cycleID)
	}
	defer func() {
		if err := uc.lock.Release(context.WithoutCancel(ctx), cycleID); err != nil {
			log.Error("Failed to release cycle lock", zap.Error(err))
		}
	}()

	// another holder may have finished between the first check and the lock
	if result, err := uc.processedResult(ctx, cycleID); result != nil || err != nil {
		return result, err
	}

	ids, err := uc.playerRepo.ListExternalIDs(ctx)
	if err != nil {
		log.Error("Failed to list players", zap.Error(err))
		return nil, domain.NewStoreError("list players", err)
	}

	log.Info("Starting bulk energy grant", zap.Int("players", len(ids)))
	updated, failed := uc.grantAll(ctx, ids)

	// the grants are already applied, so the record must outlive a cancelled caller
	recordCtx := context.WithoutCancel(ctx)
	record := &domain.EnergyCycle{
		CycleID:       cycleID,
		ProcessedAt:   uc.clock.Now().UTC(),
		UsersAffected: updated,
		Succeeded:     failed == 0,
	}
	if err := uc.cycleRepo.Create(recordCtx, record); err != nil {
		log.Error("Failed to record processed cycle", zap.Int("updated", updated), zap.Error(err))
		return nil, domain.NewStoreError("record cycle", err)
	}

	log.Info("Bulk energy grant completed",
		zap.Int("updated", updated),
		zap.Int("failed", failed),
		zap.Bool("succeeded", record.Succeeded))

	return &domain.CycleResult{
		CycleID:      cycleID,
		UpdatedCount: updated,
		FailedCount:  failed,
		Succeeded:    record.Succeeded,
	}, nil
}

// processedResult returns the stored outcome when cycleID already ran, nil otherwise
func (uc *EnergyCycleUseCase) processedResult(ctx context.Context, cycleID string) (*domain.CycleResult, error) {
	existing, err := uc.cycleRepo.GetByCycleID(ctx, cycleID)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to read cycle record", zap.String("cycleID", cycleID), zap.Error(err))
		return nil, domain.NewStoreError("get cycle", err)
	}
	if existing == nil {
		return nil, nil
	}

	uc.logger.WithContext(ctx).Info("Cycle already processed",
		zap.String("cycleID", cycleID),
		zap.Time("processedAt", existing.ProcessedAt))
	return &domain.CycleResult{
		CycleID:          cycleID,
		AlreadyProcessed: true,
		UpdatedCount:     existing.UsersAffected,
		Succeeded:        existing.Succeeded,
	}, nil
}

// grantAll works through ids batch by batch. Per-player failures are logged and
// counted; they never stop the pass. Once ctx is done the remaining players are
// counted as failed without being touched.
func (uc *EnergyCycleUseCase) grantAll(ctx context.Context, ids []string) (int, int) {
	var updated, failed atomic.Int64

	for start := 0; start < len(ids); start += uc.batchSize {
		end := start + uc.batchSize
		if end > len(ids) {
			end = len(ids)
		}

		p := pool.New().WithMaxGoroutines(uc.batchSize)
		for _, id := range ids[start:end] {
			id := id
			p.Go(func() {
				if ctx.Err() != nil {
					failed.Add(1)
					return
				}
				if err := uc.playerRepo.GrantEnergy(ctx, id, 1, uc.policy.MaxEnergy); err != nil {
					failed.Add(1)
					uc.logger.WithContext(ctx).Warn("Failed to grant energy",
						zap.String("userID", id),
						zap.Error(err))
					return
				}
				updated.Add(1)
			})
		}
		p.Wait()

		uc.logger.WithContext(ctx).Debug("Batch processed",
			zap.Int("from", start),
			zap.Int("to", end))
	}

	if err := ctx.Err(); err != nil {
		uc.logger.WithContext(ctx).Warn("Bulk energy grant interrupted",
			zap.Int64("updated", updated.Load()),
			zap.Int64("failed", failed.Load()),
			zap.Error(err))
	}

	return int(updated.Load()), int(failed.Load())
}
