package analyzer

import (
	"fmt"

	"github.com/gridironhq/tradegrader/internal/domain"
	"github.com/gridironhq/tradegrader/internal/valuation"
)

// GradeThresholds is the named threshold table for letter assignment and
// risk tagging. Cutoffs are minimum scores; anything below MinD grades F.
type GradeThresholds struct {
	MinA float64 `yaml:"min_a"`
	MinB float64 `yaml:"min_b"`
	MinC float64 `yaml:"min_c"`
	MinD float64 `yaml:"min_d"`

	// LopsidedDeltaPct is the fairness delta at which the lopsided-value
	// risk tag fires.
	LopsidedDeltaPct float64 `yaml:"lopsided_delta_pct"`
}

// DefaultGradeThresholds returns the production grading table.
func DefaultGradeThresholds() *GradeThresholds {
	return &GradeThresholds{
		MinA:             90,
		MinB:             80,
		MinC:             70,
		MinD:             60,
		LopsidedDeltaPct: 40,
	}
}

// Validate checks the cutoffs are strictly descending and in range.
func (t *GradeThresholds) Validate() error {
	cutoffs := []struct {
		name  string
		value float64
	}{
		{"min_a", t.MinA}, {"min_b", t.MinB}, {"min_c", t.MinC}, {"min_d", t.MinD},
	}
	prev := 100.0
	for _, c := range cutoffs {
		if c.value <= 0 || c.value > 100 {
			return fmt.Errorf("%s=%.1f out of range (0, 100]", c.name, c.value)
		}
		if c.value >= prev {
			return fmt.Errorf("%s=%.1f must be below the next cutoff %.1f", c.name, c.value, prev)
		}
		prev = c.value
	}
	if t.LopsidedDeltaPct <= 0 || t.LopsidedDeltaPct > 100 {
		return fmt.Errorf("lopsided_delta_pct=%.1f out of range (0, 100]", t.LopsidedDeltaPct)
	}
	return nil
}

// Letter maps a clamped score to its grade.
func (t *GradeThresholds) Letter(score float64) domain.Letter {
	switch {
	case score >= t.MinA:
		return domain.LetterA
	case score >= t.MinB:
		return domain.LetterB
	case score >= t.MinC:
		return domain.LetterC
	case score >= t.MinD:
		return domain.LetterD
	default:
		return domain.LetterF
	}
}

// riskTags derives data-quality and fairness flags, independent of the
// letter itself. Tags are emitted in a fixed order.
func (t *GradeThresholds) riskTags(fairness domain.Fairness, rt *domain.ResolvedTrade, model *valuation.Model, rules domain.ScoringRules) []domain.RiskTag {
	// Non-nil so a clean trade serializes as an empty list.
	tags := []domain.RiskTag{}
	if fairness.DeltaPercent >= t.LopsidedDeltaPct {
		tags = append(tags, domain.RiskLopsidedValue)
	}

	lowSample := false
	for _, p := range append(append([]domain.Player{}, rt.TeamAOut...), rt.TeamBOut...) {
		if model.AdjustedProjection(p, rules) == 0 {
			lowSample = true
			break
		}
	}
	if lowSample {
		tags = append(tags, domain.RiskLowSampleProjection)
	}
	return tags
}
