// Package analyzer grades proposed trades. The pipeline is a fixed linear
// sequence of pure stages: validate league → resolve trade → compute impact
// → compute fairness → assign grade → generate rationale. Any validation
// failure short-circuits with a typed error and no partial result.
package analyzer

import (
	"github.com/gridironhq/tradegrader/internal/domain"
	"github.com/gridironhq/tradegrader/internal/valuation"
)

// Analyzer is the sole public entry point for trade grading. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	model      *valuation.Model
	thresholds *GradeThresholds
}

// New builds an analyzer. Nil arguments select production defaults.
func New(model *valuation.Model, thresholds *GradeThresholds) *Analyzer {
	if model == nil {
		model = valuation.NewModel(nil)
	}
	if thresholds == nil {
		thresholds = DefaultGradeThresholds()
	}
	return &Analyzer{model: model, thresholds: thresholds}
}

// AnalyzeTrade grades a trade against the league. Identical inputs always
// yield an identical result.
func (a *Analyzer) AnalyzeTrade(league *domain.League, trade domain.Trade) (*domain.GradeResult, error) {
	if err := league.ValidateLeague(); err != nil {
		return nil, err
	}
	rt, err := league.ResolveTrade(trade)
	if err != nil {
		return nil, err
	}

	impacts := computeImpacts(rt, a.model, league)
	fairness := computeFairness(impacts)
	score := fairnessScore(fairness)

	return &domain.GradeResult{
		Score:       score,
		Letter:      a.thresholds.Letter(score),
		TeamImpacts: impacts,
		Fairness:    fairness,
		Rationale:   buildRationale(rt, fairness, a.model, league),
		RiskTags:    a.thresholds.riskTags(fairness, rt, a.model, league.Rules),
	}, nil
}
