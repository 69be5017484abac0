package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_SummaryStatistics(t *testing.T) {
	acc := NewAccumulator()
	acc.Observe("a", 100, true)
	acc.Observe("a", 110, true)
	acc.Observe("a", 90, false)
	acc.Observe("a", 100, true)

	summary := acc.Summary()
	require.Len(t, summary.Teams, 1)

	team := summary.Teams[0]
	assert.Equal(t, "a", team.TeamID)
	assert.InDelta(t, 100.0, team.MeanScore, 1e-9)
	assert.InDelta(t, 50.0, team.ScoreVariance, 1e-9) // population variance of {100,110,90,100}
	assert.InDelta(t, 0.75, team.PlayoffProbability, 1e-9)
}

func TestAccumulator_MergeOrderInsensitive(t *testing.T) {
	observations := []struct {
		team      string
		score     float64
		qualified bool
	}{
		{"a", 100, true}, {"a", 90, false}, {"b", 80, false},
		{"b", 120, true}, {"a", 105, true}, {"b", 95, true},
	}

	whole := NewAccumulator()
	for _, o := range observations {
		whole.Observe(o.team, o.score, o.qualified)
	}

	// Split into partials and merge in a different order.
	p1, p2, p3 := NewAccumulator(), NewAccumulator(), NewAccumulator()
	parts := []*Accumulator{p1, p2, p3}
	for i, o := range observations {
		parts[i%3].Observe(o.team, o.score, o.qualified)
	}

	merged := NewAccumulator()
	merged.Merge(p3)
	merged.Merge(p1)
	merged.Merge(p2)

	assert.Equal(t, whole.Summary(), merged.Summary())

	// Associativity: (p1+p2)+p3 == p1+(p2+p3).
	left := NewAccumulator()
	left.Merge(p1)
	left.Merge(p2)
	left.Merge(p3)

	rightInner := NewAccumulator()
	rightInner.Merge(p2)
	rightInner.Merge(p3)
	right := NewAccumulator()
	right.Merge(p1)
	right.Merge(rightInner)

	assert.Equal(t, left.Summary(), right.Summary())
}

func TestAccumulator_SummaryOrderedByTeamID(t *testing.T) {
	acc := NewAccumulator()
	acc.Observe("zeta", 1, false)
	acc.Observe("alpha", 2, true)
	acc.Observe("mid", 3, false)

	summary := acc.Summary()
	require.Len(t, summary.Teams, 3)
	assert.Equal(t, "alpha", summary.Teams[0].TeamID)
	assert.Equal(t, "mid", summary.Teams[1].TeamID)
	assert.Equal(t, "zeta", summary.Teams[2].TeamID)
}

func TestAccumulator_Empty(t *testing.T) {
	acc := NewAccumulator()
	assert.Equal(t, 0, acc.Iterations())
	assert.Equal(t, 0.0, acc.QualificationProbability("nobody"))
	assert.Empty(t, acc.Summary().Teams)
}
