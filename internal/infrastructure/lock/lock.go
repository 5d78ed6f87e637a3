package lock

import (
	"context"
	"sync"

	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LocalCycleLock serialises cycle runs inside one process
type LocalCycleLock struct {
	mu     sync.Mutex
	held   map[string]struct{}
	logger *logger.Logger
}

// NewLocalCycleLock creates an in-process cycle lock
func NewLocalCycleLock(logger *logger.Logger) *LocalCycleLock {
	logger.Info("LocalCycleLock initialized")
	return &LocalCycleLock{
		held:   make(map[string]struct{}),
		logger: logger,
	}
}

var _ domain.CycleLock = (*LocalCycleLock)(nil)

// Acquire attempts to take the lock for cycleID without blocking
func (m *LocalCycleLock) Acquire(ctx context.Context, cycleID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.held[cycleID]; busy {
		m.logger.Debug("Cycle lock is busy", zap.String("cycleID", cycleID))
		return false, nil
	}
	m.held[cycleID] = struct{}{}
	m.logger.Info("Acquired cycle lock", zap.String("cycleID", cycleID))
	return true, nil
}

// Release frees the lock for cycleID. Releasing a lock that is not held is a no-op.
func (m *LocalCycleLock) Release(_ context.Context, cycleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.held[cycleID]; !ok {
		m.logger.Warn("No cycle lock held during release", zap.String("cycleID", cycleID))
		return nil
	}
	delete(m.held, cycleID)
	m.logger.Info("Released cycle lock", zap.String("cycleID", cycleID))
	return nil
}
