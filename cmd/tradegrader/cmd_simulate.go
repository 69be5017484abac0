package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gridironhq/tradegrader/internal/sim"
	"github.com/gridironhq/tradegrader/internal/telemetry"
	"github.com/gridironhq/tradegrader/internal/valuation"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project the trade's effect on playoff odds",
		Long:  "Run paired with/without-trade Monte Carlo projections of the remaining season and report per-team playoff probabilities and the trade-attributable delta.",
		RunE:  runSimulate,
	}
	cmd.Flags().String("fixture", "", "Path to league+trade fixture yaml (required)")
	cmd.Flags().String("config", "", "Path to engine config yaml (defaults built in)")
	cmd.Flags().Int("iterations", 1000, "Season iterations to run (clamped by config ceiling)")
	cmd.Flags().Int("weeks", 0, "Remaining weeks to simulate (0 derives from league settings)")
	cmd.Flags().Int64("seed", 1, "Base RNG seed for reproducible runs")
	cmd.Flags().Duration("timeout", 0, "Optional wall-clock budget; expiry returns a truncated partial result")
	cmd.Flags().Bool("pretty", false, "Indent JSON output")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	fixturePath, _ := cmd.Flags().GetString("fixture")
	configPath, _ := cmd.Flags().GetString("config")
	iterations, _ := cmd.Flags().GetInt("iterations")
	weeks, _ := cmd.Flags().GetInt("weeks")
	seed, _ := cmd.Flags().GetInt64("seed")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	pretty, _ := cmd.Flags().GetBool("pretty")

	cfg, err := loadEngineConfig(configPath)
	if err != nil {
		return err
	}
	fx, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	if weeks == 0 {
		weeks = fx.League.Settings.WeeksRemaining()
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	simulator := sim.New(valuation.NewModel(&cfg.Valuation), &cfg.Simulation, metrics)

	runID := uuid.NewString()
	log.Info().
		Str("run_id", runID).
		Str("league", fx.League.ID).
		Int("iterations", iterations).
		Int("weeks", weeks).
		Int64("seed", seed).
		Msg("starting simulation")

	start := time.Now()
	result, err := simulator.SimulateLeague(ctx, &fx.League, fx.Trade, sim.Params{
		WeeksRemaining: weeks,
		Iterations:     iterations,
		Seed:           seed,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	log.Info().
		Str("run_id", runID).
		Int("iterations_used", result.IterationsUsed).
		Bool("truncated", result.Truncated).
		Dur("elapsed", time.Since(start)).
		Msg("simulation complete")

	return writeJSON(os.Stdout, result, pretty)
}
