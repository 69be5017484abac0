package sim

import (
	"sort"

	"github.com/gridironhq/tradegrader/internal/domain"
)

// teamStats accumulates one team's per-iteration observations. Counting
// sums and sums of squares keeps Merge associative and commutative, so
// per-worker partials can be combined in any order.
type teamStats struct {
	n         int64
	sum       float64
	sumSq     float64
	qualified int64
}

// Accumulator folds per-iteration (final score, qualified?) observations
// into per-team summary statistics. It is not safe for concurrent use;
// parallel runs keep one per worker and merge afterwards.
type Accumulator struct {
	teams map[string]*teamStats
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{teams: make(map[string]*teamStats)}
}

// Observe records one iteration's outcome for a team.
func (a *Accumulator) Observe(teamID string, finalScore float64, qualified bool) {
	st, ok := a.teams[teamID]
	if !ok {
		st = &teamStats{}
		a.teams[teamID] = st
	}
	st.n++
	st.sum += finalScore
	st.sumSq += finalScore * finalScore
	if qualified {
		st.qualified++
	}
}

// Merge folds another accumulator into this one.
func (a *Accumulator) Merge(other *Accumulator) {
	for id, st := range other.teams {
		mine, ok := a.teams[id]
		if !ok {
			mine = &teamStats{}
			a.teams[id] = mine
		}
		mine.n += st.n
		mine.sum += st.sum
		mine.sumSq += st.sumSq
		mine.qualified += st.qualified
	}
}

// Iterations reports the number of observations recorded for any team.
func (a *Accumulator) Iterations() int {
	for _, st := range a.teams {
		return int(st.n)
	}
	return 0
}

// QualificationProbability reports the observed playoff odds for a team.
func (a *Accumulator) QualificationProbability(teamID string) float64 {
	st, ok := a.teams[teamID]
	if !ok || st.n == 0 {
		return 0
	}
	return float64(st.qualified) / float64(st.n)
}

// Summary renders the accumulator as a scenario summary with teams ordered
// by id. Variance is the population variance of final scores.
func (a *Accumulator) Summary() domain.ScenarioSummary {
	ids := make([]string, 0, len(a.teams))
	for id := range a.teams {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	summary := domain.ScenarioSummary{Teams: make([]domain.TeamOutcome, 0, len(ids))}
	for _, id := range ids {
		st := a.teams[id]
		outcome := domain.TeamOutcome{TeamID: id}
		if st.n > 0 {
			n := float64(st.n)
			mean := st.sum / n
			outcome.MeanScore = mean
			outcome.ScoreVariance = st.sumSq/n - mean*mean
			if outcome.ScoreVariance < 0 {
				outcome.ScoreVariance = 0
			}
			outcome.PlayoffProbability = float64(st.qualified) / n
		}
		summary.Teams = append(summary.Teams, outcome)
	}
	return summary
}
