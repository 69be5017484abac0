package valuation

import (
	"fmt"

	"github.com/gridironhq/tradegrader/internal/domain"
)

// ScarcityConfig holds the positional scarcity table used to turn a weekly
// projection into a trade value. PositionWeights are the base multipliers;
// BaselineSupply is the league-wide startable player pool per position that
// a demand ratio is measured against; ScarcityBoost scales how hard excess
// demand inflates a position's multiplier.
type ScarcityConfig struct {
	PositionWeights map[domain.Position]float64 `yaml:"position_weights"`
	BaselineSupply  map[domain.Position]float64 `yaml:"baseline_supply"`
	ScarcityBoost   float64                     `yaml:"scarcity_boost"`
	MaxMultiplier   float64                     `yaml:"max_multiplier"`
}

// DefaultScarcityConfig returns the production scarcity table.
func DefaultScarcityConfig() *ScarcityConfig {
	return &ScarcityConfig{
		PositionWeights: map[domain.Position]float64{
			domain.PositionQB:   1.05,
			domain.PositionRB:   1.15,
			domain.PositionWR:   1.10,
			domain.PositionTE:   1.00,
			domain.PositionK:    0.70,
			domain.PositionDEF:  0.75,
			domain.PositionFlex: 1.00,
		},
		// Startable bodies league-wide in a typical 12-team player pool.
		BaselineSupply: map[domain.Position]float64{
			domain.PositionQB:   24,
			domain.PositionRB:   48,
			domain.PositionWR:   60,
			domain.PositionTE:   24,
			domain.PositionK:    24,
			domain.PositionDEF:  24,
			domain.PositionFlex: 60,
		},
		ScarcityBoost: 0.25,
		MaxMultiplier: 2.0,
	}
}

// Validate checks the table is usable.
func (c *ScarcityConfig) Validate() error {
	if len(c.PositionWeights) == 0 {
		return fmt.Errorf("position_weights is empty")
	}
	for pos, w := range c.PositionWeights {
		if !pos.Valid() {
			return fmt.Errorf("position_weights: unknown position %q", pos)
		}
		if w <= 0 {
			return fmt.Errorf("position_weights[%s]=%.3f, must be positive", pos, w)
		}
	}
	for pos, s := range c.BaselineSupply {
		if !pos.Valid() {
			return fmt.Errorf("baseline_supply: unknown position %q", pos)
		}
		if s <= 0 {
			return fmt.Errorf("baseline_supply[%s]=%.1f, must be positive", pos, s)
		}
	}
	if c.ScarcityBoost < 0 {
		return fmt.Errorf("scarcity_boost=%.3f, must be >= 0", c.ScarcityBoost)
	}
	if c.MaxMultiplier < 1 {
		return fmt.Errorf("max_multiplier=%.3f, must be >= 1", c.MaxMultiplier)
	}
	return nil
}

// Model converts players into trade values. It is stateless and safe for
// concurrent use; identical inputs always produce identical output.
type Model struct {
	config *ScarcityConfig
}

// NewModel builds a valuation model. A nil config selects the defaults.
func NewModel(config *ScarcityConfig) *Model {
	if config == nil {
		config = DefaultScarcityConfig()
	}
	return &Model{config: config}
}

// AdjustedProjection returns the rules-adjusted weekly projection. When the
// player carries a raw stat line the scoring weights apply directly;
// otherwise ProjectedPoints already folds the rules in. Missing data scores
// 0, never an error.
func (m *Model) AdjustedProjection(p domain.Player, rules domain.ScoringRules) float64 {
	if len(p.Stats) > 0 && len(rules.Weights) > 0 {
		var total float64
		for cat, amount := range p.Stats {
			total += rules.Weights[cat] * amount
		}
		if total < 0 {
			return 0
		}
		return total
	}
	if p.ProjectedPoints < 0 {
		return 0
	}
	return p.ProjectedPoints
}

// Value computes the trade value: rules-adjusted projection scaled by the
// positional scarcity multiplier for this league's shape.
func (m *Model) Value(p domain.Player, rules domain.ScoringRules, settings domain.LeagueSettings) float64 {
	return m.AdjustedProjection(p, rules) * m.scarcityMultiplier(p.Position, settings)
}

// scarcityMultiplier inflates positions whose starting slots are scarce
// relative to league size. demandRatio is startable demand (slots × teams)
// over the baseline supply pool; demand above baseline raises the
// multiplier, capped at MaxMultiplier.
func (m *Model) scarcityMultiplier(pos domain.Position, settings domain.LeagueSettings) float64 {
	weight, ok := m.config.PositionWeights[pos]
	if !ok {
		weight = 1.0
	}

	slots := settings.RosterSlots[pos]
	supply := m.config.BaselineSupply[pos]
	if slots <= 0 || supply <= 0 || settings.TeamCount <= 0 {
		return weight
	}

	demandRatio := float64(slots*settings.TeamCount) / supply
	multiplier := weight * (1 + m.config.ScarcityBoost*(demandRatio-1))
	if multiplier < 0 {
		multiplier = 0
	}
	if multiplier > m.config.MaxMultiplier {
		multiplier = m.config.MaxMultiplier
	}
	return multiplier
}
