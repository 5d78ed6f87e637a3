package seeder

import (
	"context"

	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DemoPlayer is one seeded player and the deposit it starts with
type DemoPlayer struct {
	ExternalID string
	Deposit    float64
}

// DefaultDemoPlayers covers one player per chance band
var DefaultDemoPlayers = []DemoPlayer{
	{ExternalID: "demo_low", Deposit: 40},
	{ExternalID: "demo_mid", Deposit: 180},
	{ExternalID: "demo_high", Deposit: 650},
	{ExternalID: "demo_max", Deposit: 1200},
}

// Seeder handles database seeding operations
type Seeder struct {
	playerRepo domain.PlayerRepository
	playerUC   domain.PlayerUseCase
	logger     *logger.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(playerRepo domain.PlayerRepository, playerUC domain.PlayerUseCase, logger *logger.Logger) *Seeder {
	return &Seeder{
		playerRepo: playerRepo,
		playerUC:   playerUC,
		logger:     logger,
	}
}

// SeedPlayers creates the given players through the deposit path. Players that
// already exist are skipped so the seeder can be re-run.
func (s *Seeder) SeedPlayers(ctx context.Context, players []DemoPlayer) (int, error) {
	s.logger.Info("Seeding players...", zap.Int("count", len(players)))

	created := 0
	for _, p := range players {
		existing, err := s.playerRepo.GetByExternalID(ctx, p.ExternalID)
		if err != nil {
			s.logger.Warn("Error checking existing player, skipping", zap.String("userID", p.ExternalID), zap.Error(err))
			continue
		}
		if existing != nil {
			s.logger.Info("Player already exists, skipping", zap.String("userID", p.ExternalID))
			continue
		}

		player, err := s.playerUC.ApplyDeposit(ctx, p.ExternalID, p.Deposit, domain.EventDeposit)
		if err != nil {
			s.logger.Error("Error creating player", zap.String("userID", p.ExternalID), zap.Error(err))
			return created, err
		}
		created++
		s.logger.Info("Successfully created player",
			zap.String("userID", player.ExternalID),
			zap.Float64("depositTotal", player.DepositTotal),
			zap.Int("chance", player.Chance))
	}

	s.logger.Info("Player seeding completed successfully", zap.Int("created", created))
	return created, nil
}
