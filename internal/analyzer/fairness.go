package analyzer

import (
	"fmt"
	"math"

	"github.com/gridironhq/tradegrader/internal/domain"
)

// computeFairness turns the two net deltas into a directional measurement.
//
//	deltaPercent = 100 × |dA − dB| / (2 × totalExchanged)
//
// The deltas are exact opposites (each side's gain is the other's loss), so
// |dA − dB| is twice the value imbalance and the ratio spans the full range:
// equal deltas give 0, strictly monotone in the imbalance, and exactly 100
// when one side ships all the value for nothing. TowardsTeamID names the
// team with the strictly larger net gain and stays empty on an exact tie.
func computeFairness(impacts []domain.TeamImpact) domain.Fairness {
	a, b := impacts[0], impacts[1]

	denom := 2 * totalExchanged(impacts)
	var deltaPercent float64
	if denom > 0 {
		deltaPercent = 100 * math.Abs(a.Net-b.Net) / denom
	}
	deltaPercent = clamp(deltaPercent, 0, 100)

	fairness := domain.Fairness{DeltaPercent: deltaPercent}
	switch {
	case a.Net > b.Net:
		fairness.TowardsTeamID = a.TeamID
	case b.Net > a.Net:
		fairness.TowardsTeamID = b.TeamID
	}

	if fairness.TowardsTeamID == "" {
		fairness.Explanation = "Both sides receive equal value."
	} else {
		fairness.Explanation = fmt.Sprintf(
			"Trade favors team %s by %.1f%% of the value exchanged.",
			fairness.TowardsTeamID, deltaPercent)
	}
	return fairness
}

// fairnessScore maps the lopsidedness measurement onto the 0-100 grade
// scale: a perfectly even trade scores 100.
func fairnessScore(f domain.Fairness) float64 {
	return clamp(100-f.DeltaPercent, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
