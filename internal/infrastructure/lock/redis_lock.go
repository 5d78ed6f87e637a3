package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const keyCycleLock = "predictor:energy-cycle:lock:%s"

// releaseScript deletes the key only when it still holds our token, so an
// expired lock picked up by another instance is never removed by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisCycleLock serialises cycle runs across instances with SET NX EX
type RedisCycleLock struct {
	client *redis.Client
	ttl    time.Duration
	tokens sync.Map // map[string]string
	logger *logger.Logger
}

// NewRedisCycleLock creates a Redis-backed cycle lock
func NewRedisCycleLock(client *redis.Client, ttl time.Duration, logger *logger.Logger) *RedisCycleLock {
	logger.Info("RedisCycleLock initialized", zap.Duration("ttl", ttl))
	return &RedisCycleLock{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

var _ domain.CycleLock = (*RedisCycleLock)(nil)

// Acquire sets the lock key if absent. It reports false when another run holds it.
func (l *RedisCycleLock) Acquire(ctx context.Context, cycleID string) (bool, error) {
	key := fmt.Sprintf(keyCycleLock, cycleID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("set cycle lock failed: %w", err)
	}
	if !ok {
		l.logger.Debug("Cycle lock is held by another run", zap.String("cycleID", cycleID))
		return false, nil
	}

	l.tokens.Store(cycleID, token)
	l.logger.Info("Acquired cycle lock", zap.String("cycleID", cycleID), zap.String("key", key))
	return true, nil
}

// Release deletes the lock key if this instance still owns it
func (l *RedisCycleLock) Release(ctx context.Context, cycleID string) error {
	tokenValue, ok := l.tokens.LoadAndDelete(cycleID)
	if !ok {
		l.logger.Warn("No cycle lock token found during release", zap.String("cycleID", cycleID))
		return nil
	}

	key := fmt.Sprintf(keyCycleLock, cycleID)
	deleted, err := releaseScript.Run(ctx, l.client, []string{key}, tokenValue.(string)).Int()
	if err != nil {
		return fmt.Errorf("delete cycle lock failed: %w", err)
	}
	if deleted == 0 {
		l.logger.Warn("Cycle lock expired before release", zap.String("cycleID", cycleID))
		return nil
	}

	l.logger.Info("Released cycle lock", zap.String("cycleID", cycleID))
	return nil
}

// NewRedisClient connects to Redis and verifies the connection with PING
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
