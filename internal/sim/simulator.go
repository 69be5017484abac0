// Package sim runs randomized remaining-season projections to estimate how
// a trade shifts playoff odds. Each iteration samples every rostered
// player's weekly score from a normal distribution centered on the
// rules-adjusted projection with sigma = variance_coefficient × projection,
// truncated at 0 (boom/bust spread grows with the projection). The same
// draw scores both the with-trade and without-trade rosters, so the
// measured delta is a paired comparison.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/gridironhq/tradegrader/internal/domain"
	"github.com/gridironhq/tradegrader/internal/telemetry"
	"github.com/gridironhq/tradegrader/internal/valuation"
)

// Config bounds and tunes simulation runs.
type Config struct {
	// MaxIterations is the hard ceiling; caller requests above it are
	// clamped, never rejected.
	MaxIterations int `yaml:"max_iterations"`

	// Workers is the fan-out width for large runs. Zero means NumCPU.
	Workers int `yaml:"workers"`

	// ParallelThreshold is the iteration count at or above which the run
	// fans out to workers instead of looping sequentially.
	ParallelThreshold int `yaml:"parallel_threshold"`

	// VarianceCoefficient scales sampling sigma relative to a player's
	// projection.
	VarianceCoefficient float64 `yaml:"variance_coefficient"`
}

// DefaultConfig returns the production simulation limits.
func DefaultConfig() *Config {
	return &Config{
		MaxIterations:       10000,
		Workers:             0,
		ParallelThreshold:   256,
		VarianceCoefficient: 0.35,
	}
}

// Validate checks the limits are usable.
func (c *Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations=%d, must be positive", c.MaxIterations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d, must be >= 0", c.Workers)
	}
	if c.ParallelThreshold <= 0 {
		return fmt.Errorf("parallel_threshold=%d, must be positive", c.ParallelThreshold)
	}
	if c.VarianceCoefficient <= 0 {
		return fmt.Errorf("variance_coefficient=%.3f, must be positive", c.VarianceCoefficient)
	}
	return nil
}

// Params are the caller-supplied knobs for one run.
type Params struct {
	WeeksRemaining int
	Iterations     int
	Seed           int64

	// Schedule optionally fixes the matchups per remaining week. When nil a
	// round-robin rotation is generated from the league's teams. A schedule
	// shorter than WeeksRemaining is recycled from the top, so a single
	// rotation can cover any horizon.
	Schedule [][]domain.Matchup
}

// Simulator runs seeded season projections. It holds no mutable state and
// is safe for concurrent use.
type Simulator struct {
	model   *valuation.Model
	config  *Config
	metrics *telemetry.Metrics
}

// New builds a simulator. Nil model or config selects defaults; nil metrics
// disables instrumentation.
func New(model *valuation.Model, config *Config, metrics *telemetry.Metrics) *Simulator {
	if model == nil {
		model = valuation.NewModel(nil)
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &Simulator{model: model, config: config, metrics: metrics}
}

// runPlan is the immutable per-run state shared by all iterations.
type runPlan struct {
	seed           int64
	weeks          int
	cv             float64
	playerIDs      []string
	projections    map[string]float64
	schedule       [][]domain.Matchup
	teamIDs        []string
	rostersWith    map[string][]string
	rostersWithout map[string][]string
	playoffSlots   int
}

// SimulateLeague estimates playoff-odds shifts for the trade. A context
// cancellation or deadline stops the run cooperatively and returns the
// partial result flagged Truncated; parameter and trade problems return
// typed errors instead.
func (s *Simulator) SimulateLeague(ctx context.Context, league *domain.League, trade domain.Trade, params Params) (*domain.SimulationResult, error) {
	start := time.Now()

	if err := league.ValidateLeague(); err != nil {
		return nil, err
	}
	if params.WeeksRemaining <= 0 {
		return nil, &domain.SimulationParameterError{Param: "weeks_remaining", Value: int64(params.WeeksRemaining), Reason: "must be positive"}
	}
	if params.Iterations <= 0 {
		return nil, &domain.SimulationParameterError{Param: "iterations", Value: int64(params.Iterations), Reason: "must be positive"}
	}

	traded, err := league.ApplyTrade(trade)
	if err != nil {
		return nil, err
	}

	iterations := params.Iterations
	if iterations > s.config.MaxIterations {
		iterations = s.config.MaxIterations
	}

	plan := s.buildPlan(league, traded, params)

	withAcc, withoutAcc, truncated := s.run(ctx, plan, iterations)
	used := withAcc.Iterations()

	result := &domain.SimulationResult{
		WithTrade:      withAcc.Summary(),
		WithoutTrade:   withoutAcc.Summary(),
		IterationsUsed: used,
		Truncated:      truncated,
		Delta: []domain.TeamProbabilityDelta{
			{TeamID: trade.TeamAID, Delta: withAcc.QualificationProbability(trade.TeamAID) - withoutAcc.QualificationProbability(trade.TeamAID)},
			{TeamID: trade.TeamBID, Delta: withAcc.QualificationProbability(trade.TeamBID) - withoutAcc.QualificationProbability(trade.TeamBID)},
		},
	}

	s.metrics.SimulationObserved(used, time.Since(start), truncated)
	return result, nil
}

func (s *Simulator) buildPlan(base, traded *domain.League, params Params) *runPlan {
	plan := &runPlan{
		seed:           params.Seed,
		weeks:          params.WeeksRemaining,
		cv:             s.config.VarianceCoefficient,
		projections:    make(map[string]float64),
		rostersWith:    make(map[string][]string),
		rostersWithout: make(map[string][]string),
	}

	for _, t := range base.Teams {
		plan.teamIDs = append(plan.teamIDs, t.ID)
		for _, p := range t.Roster {
			plan.playerIDs = append(plan.playerIDs, p.ID)
			plan.projections[p.ID] = s.model.AdjustedProjection(p, base.Rules)
		}
	}
	sort.Strings(plan.teamIDs)
	sort.Strings(plan.playerIDs)

	rosterIDs := func(l *domain.League, into map[string][]string) {
		for _, t := range l.Teams {
			ids := make([]string, 0, len(t.Roster))
			for _, p := range t.Roster {
				ids = append(ids, p.ID)
			}
			into[t.ID] = ids
		}
	}
	rosterIDs(traded, plan.rostersWith)
	rosterIDs(base, plan.rostersWithout)

	plan.schedule = params.Schedule
	if len(plan.schedule) == 0 {
		plan.schedule = roundRobin(plan.teamIDs, params.WeeksRemaining)
	}

	plan.playoffSlots = base.Settings.PlayoffTeams
	if plan.playoffSlots <= 0 {
		plan.playoffSlots = len(plan.teamIDs) / 2
	}
	if plan.playoffSlots > len(plan.teamIDs) {
		plan.playoffSlots = len(plan.teamIDs)
	}
	return plan
}

// run executes the iteration loop, fanning out to workers above the
// configured threshold. Per-iteration rng streams are derived from the base
// seed plus the iteration index, so the result set is identical regardless
// of execution order; the accumulator's commutative merge absorbs ordering.
func (s *Simulator) run(ctx context.Context, plan *runPlan, iterations int) (withAcc, withoutAcc *Accumulator, truncated bool) {
	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if iterations < s.config.ParallelThreshold || workers <= 1 {
		return s.runRange(ctx, plan, 0, iterations)
	}
	if workers > iterations {
		workers = iterations
	}

	type partial struct {
		with, without *Accumulator
		truncated     bool
	}
	partials := make([]partial, workers)
	chunk := (iterations + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > iterations {
			hi = iterations
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			with, without, trunc := s.runRange(ctx, plan, lo, hi)
			partials[idx] = partial{with: with, without: without, truncated: trunc}
		}(w, lo, hi)
	}
	wg.Wait()

	withAcc, withoutAcc = NewAccumulator(), NewAccumulator()
	for _, p := range partials {
		if p.with == nil {
			continue
		}
		withAcc.Merge(p.with)
		withoutAcc.Merge(p.without)
		truncated = truncated || p.truncated
	}
	return withAcc, withoutAcc, truncated
}

// runRange executes iterations [lo, hi), checking for cancellation between
// iterations.
func (s *Simulator) runRange(ctx context.Context, plan *runPlan, lo, hi int) (withAcc, withoutAcc *Accumulator, truncated bool) {
	withAcc, withoutAcc = NewAccumulator(), NewAccumulator()
	for i := lo; i < hi; i++ {
		select {
		case <-ctx.Done():
			return withAcc, withoutAcc, true
		default:
		}
		runIteration(plan, int64(i), withAcc, withoutAcc)
	}
	return withAcc, withoutAcc, false
}

// runIteration plays out the remaining season once. Player scores are drawn
// once per week in sorted-id order and reused for both scenarios, keeping
// the with/without comparison paired within the draw.
func runIteration(plan *runPlan, iter int64, withAcc, withoutAcc *Accumulator) {
	rng := rand.New(rand.NewSource(plan.seed + iter))

	samples := make([]map[string]float64, plan.weeks)
	for w := 0; w < plan.weeks; w++ {
		weekScores := make(map[string]float64, len(plan.playerIDs))
		for _, id := range plan.playerIDs {
			weekScores[id] = samplePlayerScore(rng, plan.projections[id], plan.cv)
		}
		samples[w] = weekScores
	}

	observeScenario(plan, samples, plan.rostersWith, withAcc)
	observeScenario(plan, samples, plan.rostersWithout, withoutAcc)
}

// samplePlayerScore draws from Normal(projection, cv×projection) truncated
// at zero.
func samplePlayerScore(rng *rand.Rand, projection, cv float64) float64 {
	if projection <= 0 {
		return 0
	}
	score := projection + rng.NormFloat64()*cv*projection
	if score < 0 {
		return 0
	}
	return score
}

// observeScenario resolves every scheduled week, accumulates standings, and
// records final standings into the accumulator.
func observeScenario(plan *runPlan, samples []map[string]float64, rosters map[string][]string, acc *Accumulator) {
	wins := make(map[string]int, len(plan.teamIDs))
	points := make(map[string]float64, len(plan.teamIDs))

	for w := 0; w < plan.weeks; w++ {
		weekScores := samples[w]
		teamScore := func(teamID string) float64 {
			var total float64
			for _, pid := range rosters[teamID] {
				total += weekScores[pid]
			}
			return total
		}

		matchups := plan.schedule[w%len(plan.schedule)]
		for _, m := range matchups {
			home := teamScore(m.HomeTeamID)
			away := teamScore(m.AwayTeamID)
			points[m.HomeTeamID] += home
			points[m.AwayTeamID] += away
			switch {
			case home > away:
				wins[m.HomeTeamID]++
			case away > home:
				wins[m.AwayTeamID]++
			}
		}
	}

	// Seed by win total, ties broken by cumulative points, then id for a
	// total order.
	standings := append([]string(nil), plan.teamIDs...)
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if wins[a] != wins[b] {
			return wins[a] > wins[b]
		}
		if points[a] != points[b] {
			return points[a] > points[b]
		}
		return a < b
	})

	for rank, teamID := range standings {
		acc.Observe(teamID, points[teamID], rank < plan.playoffSlots)
	}
}
