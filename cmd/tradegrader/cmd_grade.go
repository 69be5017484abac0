package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gridironhq/tradegrader/internal/analyzer"
	"github.com/gridironhq/tradegrader/internal/telemetry"
	"github.com/gridironhq/tradegrader/internal/valuation"
)

func newGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade a proposed trade",
		Long:  "Validate a trade against league rosters, score its fairness 0-100, and explain the grade.",
		RunE:  runGrade,
	}
	cmd.Flags().String("fixture", "", "Path to league+trade fixture yaml (required)")
	cmd.Flags().String("config", "", "Path to engine config yaml (defaults built in)")
	cmd.Flags().Bool("pretty", false, "Indent JSON output")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

func runGrade(cmd *cobra.Command, args []string) error {
	fixturePath, _ := cmd.Flags().GetString("fixture")
	configPath, _ := cmd.Flags().GetString("config")
	pretty, _ := cmd.Flags().GetBool("pretty")

	cfg, err := loadEngineConfig(configPath)
	if err != nil {
		return err
	}
	fx, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	eng := analyzer.New(valuation.NewModel(&cfg.Valuation), &cfg.Grading)

	reportID := uuid.NewString()
	log.Info().
		Str("report_id", reportID).
		Str("league", fx.League.ID).
		Str("team_a", fx.Trade.TeamAID).
		Str("team_b", fx.Trade.TeamBID).
		Msg("grading trade")

	result, err := eng.AnalyzeTrade(&fx.League, fx.Trade)
	if err != nil {
		return fmt.Errorf("grade failed: %w", err)
	}
	metrics.GradeObserved()

	log.Info().
		Str("report_id", reportID).
		Float64("score", result.Score).
		Str("letter", string(result.Letter)).
		Msg("trade graded")

	return writeJSON(os.Stdout, result, pretty)
}

func writeJSON(out *os.File, v any, pretty bool) error {
	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
