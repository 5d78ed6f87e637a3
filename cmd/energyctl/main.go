package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "energyctl",
		Short:        "Operator tooling for the predictor energy cycles",
		SilenceUsage: true,
	}

	root.AddCommand(
		newGrantCmd(),
		newSeedCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
