package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridironhq/tradegrader/internal/domain"
)

func impactsFor(netA, outA, outB float64) []domain.TeamImpact {
	return []domain.TeamImpact{
		{TeamID: "a", Incoming: outB, Outgoing: outA, Net: netA},
		{TeamID: "b", Incoming: outA, Outgoing: outB, Net: -netA},
	}
}

func TestComputeFairness_EqualDeltasScoreZero(t *testing.T) {
	f := computeFairness(impactsFor(0, 20, 20))
	assert.Equal(t, 0.0, f.DeltaPercent)
	assert.Empty(t, f.TowardsTeamID)
	assert.Equal(t, 100.0, fairnessScore(f))
}

func TestComputeFairness_NamesLargerGainer(t *testing.T) {
	f := computeFairness(impactsFor(5, 10, 15))
	assert.Equal(t, "a", f.TowardsTeamID)
	assert.Greater(t, f.DeltaPercent, 0.0)

	g := computeFairness(impactsFor(-5, 15, 10))
	assert.Equal(t, "b", g.TowardsTeamID)
}

func TestComputeFairness_DominationApproaches100(t *testing.T) {
	// One side gives up nearly nothing and receives everything.
	f := computeFairness(impactsFor(99.9, 0.1, 100))
	assert.GreaterOrEqual(t, f.DeltaPercent, 99.0)
	assert.LessOrEqual(t, fairnessScore(f), 1.0)

	// Shipping all the value for nothing hits the ceiling exactly, at any
	// magnitude.
	for _, out := range []float64{100, 1000, 1e6} {
		g := computeFairness(impactsFor(-out, out, 0))
		assert.Equal(t, 100.0, g.DeltaPercent, "one-sided trade of %.0f", out)
		assert.Equal(t, 0.0, fairnessScore(g))
	}

	// More balanced trades measure far less lopsided.
	h := computeFairness(impactsFor(2, 49, 51))
	assert.Less(t, h.DeltaPercent, f.DeltaPercent)
}

func TestComputeFairness_MonotoneInImbalance(t *testing.T) {
	prev := -1.0
	for _, net := range []float64{0, 5, 10, 20, 40} {
		f := computeFairness(impactsFor(net, 50, 50+net))
		assert.Greater(t, f.DeltaPercent, prev, "delta percent must grow with imbalance")
		prev = f.DeltaPercent
	}
}

func TestComputeFairness_AllZeroValuesIsEven(t *testing.T) {
	f := computeFairness(impactsFor(0, 0, 0))
	assert.Equal(t, 0.0, f.DeltaPercent)
	assert.Equal(t, 100.0, fairnessScore(f))
}
