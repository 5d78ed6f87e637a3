package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const jobName = "daily-energy-grant"

// Scheduler runs the bulk energy grant once a day at a fixed local time
type Scheduler struct {
	cycleUC domain.EnergyCycleUseCase
	clock   domain.Clock
	loc     *time.Location
	hour    uint
	minute  uint
	timeout time.Duration
	logger  *logger.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.Mutex
	sched     gocron.Scheduler
	isRunning bool
}

// NewScheduler creates a scheduler that fires at dailyAt ("HH:MM") in loc
func NewScheduler(
	cycleUC domain.EnergyCycleUseCase,
	clock domain.Clock,
	loc *time.Location,
	dailyAt string,
	logger *logger.Logger,
) (*Scheduler, error) {
	hour, minute, err := ParseDailyAt(dailyAt)
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		cycleUC: cycleUC,
		clock:   clock,
		loc:     loc,
		hour:    hour,
		minute:  minute,
		timeout: 10 * time.Minute,
		logger:  logger,
	}, nil
}

// ParseDailyAt parses "HH:MM" in 24h form
func ParseDailyAt(value string) (uint, uint, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid daily time %q: want HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in daily time %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in daily time %q", value)
	}
	return uint(hour), uint(minute), nil
}

// CycleIDFor returns the idempotency token of the daily cycle for day
func CycleIDFor(day domain.Date) string {
	return "daily-" + day.String()
}

// RunOnce triggers today's cycle. Re-running on the same day is a no-op.
func (s *Scheduler) RunOnce(ctx context.Context) (*domain.CycleResult, error) {
	cycleID := CycleIDFor(s.clock.Today())

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.cycleUC.RunBulkEnergyGrant(ctx, cycleID)
	if err != nil {
		if appErr, ok := domain.IsAppError(err); ok && appErr.Code == domain.ErrCodeCycleInProgress {
			s.logger.Info("Daily cycle already running on another instance", zap.String("cycleID", cycleID))
			return nil, err
		}
		s.logger.Error("Daily energy cycle failed", zap.String("cycleID", cycleID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Daily energy cycle finished",
		zap.String("cycleID", cycleID),
		zap.Bool("alreadyProcessed", result.AlreadyProcessed),
		zap.Int("updated", result.UpdatedCount),
		zap.Int("failed", result.FailedCount))
	return result, nil
}

// Start registers the daily job and starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		s.logger.Warn("Energy scheduler is already running")
		return nil
	}

	sched, err := gocron.NewScheduler(gocron.WithLocation(s.loc))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	// each start gets its own context; Stop cancels it for good
	ctx, cancel := context.WithCancel(context.Background())

	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(s.hour, s.minute, 0))),
		gocron.NewTask(func() {
			_, _ = s.RunOnce(ctx)
		}),
		gocron.WithName(jobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = sched.Shutdown()
		return fmt.Errorf("failed to register %s job: %w", jobName, err)
	}

	sched.Start()
	s.ctx = ctx
	s.cancel = cancel
	s.sched = sched
	s.isRunning = true

	s.logger.Info("Energy scheduler started",
		zap.String("location", s.loc.String()),
		zap.String("dailyAt", fmt.Sprintf("%02d:%02d", s.hour, s.minute)))
	return nil
}

// Stop cancels a running cycle and shuts the scheduler down
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		s.logger.Warn("Energy scheduler is not running")
		return nil
	}

	s.logger.Info("Stopping energy scheduler...")
	s.cancel()
	err := s.sched.Shutdown()
	s.isRunning = false
	s.logger.Info("Energy scheduler stopped")
	return err
}
