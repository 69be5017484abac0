package analyzer

import (
	"github.com/gridironhq/tradegrader/internal/domain"
	"github.com/gridironhq/tradegrader/internal/valuation"
)

// computeImpacts aggregates player values into per-team totals and net
// deltas. Order is fixed: team A first, then team B.
func computeImpacts(rt *domain.ResolvedTrade, model *valuation.Model, league *domain.League) []domain.TeamImpact {
	var outA, outB float64
	for _, p := range rt.TeamAOut {
		outA += model.Value(p, league.Rules, league.Settings)
	}
	for _, p := range rt.TeamBOut {
		outB += model.Value(p, league.Rules, league.Settings)
	}

	// What leaves B arrives at A and vice versa.
	return []domain.TeamImpact{
		{TeamID: rt.TeamA.ID, Incoming: outB, Outgoing: outA, Net: outB - outA},
		{TeamID: rt.TeamB.ID, Incoming: outA, Outgoing: outB, Net: outA - outB},
	}
}

// totalExchanged is the gross value moving in both directions.
func totalExchanged(impacts []domain.TeamImpact) float64 {
	var total float64
	for _, imp := range impacts {
		total += imp.Outgoing
	}
	return total
}
