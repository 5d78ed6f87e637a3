package main

import (
	"fmt"
	"os"
	"time"

	"github.com/saradorri/predictor/internal/infrastructure/clock"
	"github.com/saradorri/predictor/internal/infrastructure/external/cycleclient"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"github.com/saradorri/predictor/internal/infrastructure/scheduler"
	"github.com/spf13/cobra"
)

func newGrantCmd() *cobra.Command {
	var (
		baseURL   string
		cycleID   string
		retries   int
		timeout   time.Duration
		utcOffset int
	)

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Trigger the bulk +1 energy grant on a running API",
		Long: "Posts a cycle id to /api/v1/energy/cycles. Re-running with the same " +
			"cycle id is a no-op on the server, so the command is safe to retry.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cycleID == "" {
				cycleID = scheduler.CycleIDFor(clock.NewFixedZoneClock(utcOffset).Today())
			}

			client := cycleclient.NewClient(cycleclient.Options{
				BaseURL:  baseURL,
				Timeout:  timeout,
				RetryMax: retries,
			}, logger.NewLogger("development", "warn"))

			resp, err := client.TriggerCycle(cmd.Context(), cycleID)
			if err != nil {
				if cycleclient.Is409Error(err) {
					return fmt.Errorf("cycle %s is being processed by another run", cycleID)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if resp.AlreadyProcessed {
				fmt.Fprintf(out, "cycle %s already processed\n", resp.CycleID)
				return nil
			}
			fmt.Fprintf(out, "cycle %s: %d players granted, %d failed\n", resp.CycleID, resp.UpdatedCount, resp.FailedCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", envOr("PREDICTOR_API_URL", "http://localhost:8080"), "API base URL")
	cmd.Flags().StringVar(&cycleID, "cycle-id", "", "cycle id (default daily-<today>)")
	cmd.Flags().IntVar(&retries, "retries", 3, "retry attempts on 5xx or network errors")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "per-attempt timeout")
	cmd.Flags().IntVar(&utcOffset, "utc-offset", 3, "UTC offset in hours used for the default cycle id")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
