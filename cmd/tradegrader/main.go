package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	appName = "tradegrader"
	version = "v0.4.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Grade fantasy trades and project their season impact",
		Version: version,
		Long: `tradegrader evaluates proposed fantasy-football trades.

'grade' scores a trade's fairness and explains the result; 'simulate' runs
seeded Monte Carlo projections of the remaining season to estimate how the
trade moves each side's playoff odds. Both commands read a league+trade
fixture file and print JSON.`,
	}

	rootCmd.AddCommand(newGradeCmd())
	rootCmd.AddCommand(newSimulateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
