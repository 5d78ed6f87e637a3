package main

import (
	"fmt"

	"github.com/saradorri/predictor/internal/app"
	"github.com/saradorri/predictor/internal/config"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/clock"
	"github.com/saradorri/predictor/internal/infrastructure/database"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"github.com/saradorri/predictor/internal/infrastructure/prediction"
	"github.com/saradorri/predictor/internal/infrastructure/repository"
	"github.com/saradorri/predictor/internal/infrastructure/seeder"
	"github.com/saradorri/predictor/internal/usecase/player"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newSeedCmd() *cobra.Command {
	var (
		configPath string
		env        string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the demo players, one per chance band",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(viper.New(), configPath, env)
			if err != nil {
				return err
			}

			log := logger.NewLogger(env, cfg.Log.Level)
			defer func() { _ = log.Sync() }()

			db, err := database.NewDatabase(&database.Config{
				Host:            cfg.Database.Host,
				Port:            cfg.Database.Port,
				User:            cfg.Database.User,
				Password:        cfg.Database.Password,
				Name:            cfg.Database.Name,
				SSLMode:         cfg.Database.SSLMode,
				MaxIdleConns:    cfg.Database.MaxIdleConns,
				MaxOpenConns:    cfg.Database.MaxOpenConns,
				ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			})
			if err != nil {
				return err
			}
			defer db.Close()

			playerRepo := repository.NewPlayerRepository(db.GetDB())
			playerUC := player.NewPlayerUseCase(
				playerRepo,
				prediction.NewGenerator(),
				clock.NewFixedZoneClock(cfg.Energy.UTCOffsetHour),
				domain.EnergyPolicy{
					MaxEnergy:     cfg.Energy.MaxEnergy,
					CatchUpCap:    cfg.Energy.CatchUpCap,
					InitialEnergy: cfg.Energy.InitialEnergy,
				},
				log,
			)

			created, err := seeder.NewSeeder(playerRepo, playerUC, log).SeedPlayers(cmd.Context(), seeder.DefaultDemoPlayers)
			if err != nil {
				return err
			}
			log.Info("Database seeding completed successfully", zap.Int("created", created))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d players\n", created)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "./config", "path to config directory")
	cmd.Flags().StringVar(&env, "env", config.GetEnvironment(), "environment (development, production)")
	return cmd
}
