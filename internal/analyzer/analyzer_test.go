package analyzer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/tradegrader/internal/domain"
)

// referenceLeague is the two-team, four-player setup used across the
// grading tests: Sharks hold {QB 20, RB 15}, Bears hold {WR 12, TE 8}.
func referenceLeague() *domain.League {
	return &domain.League{
		ID:   "lg-ref",
		Name: "Reference League",
		Teams: []domain.Team{
			{
				ID: "sharks", Name: "Sharks", Owner: "ann",
				Roster: []domain.Player{
					{ID: "qb1", Name: "QB One", Position: domain.PositionQB, ProjectedPoints: 20},
					{ID: "rb1", Name: "RB One", Position: domain.PositionRB, ProjectedPoints: 15},
				},
			},
			{
				ID: "bears", Name: "Bears", Owner: "bob",
				Roster: []domain.Player{
					{ID: "wr1", Name: "WR One", Position: domain.PositionWR, ProjectedPoints: 12},
					{ID: "te1", Name: "TE One", Position: domain.PositionTE, ProjectedPoints: 8},
				},
			},
		},
		Rules: domain.ScoringRules{Weights: map[domain.StatCategory]float64{
			domain.StatPassingYards: 0.04,
		}},
		Settings: domain.LeagueSettings{
			TeamCount: 2,
			RosterSlots: map[domain.Position]int{
				domain.PositionQB: 1, domain.PositionRB: 1,
				domain.PositionWR: 1, domain.PositionTE: 1,
			},
			PlayoffTeams:       1,
			RegularSeasonWeeks: 14,
			CurrentWeek:        10,
		},
	}
}

func qbForWR() domain.Trade {
	return domain.Trade{
		TeamAID: "sharks", TeamBID: "bears",
		TeamAOut: []string{"qb1"}, TeamBOut: []string{"wr1"},
	}
}

func TestAnalyzeTrade_ReferenceScenario(t *testing.T) {
	a := New(nil, nil)
	result, err := a.AnalyzeTrade(referenceLeague(), qbForWR())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 100.0)
	assert.True(t, result.Letter.Valid(), "letter %q not in {A,B,C,D,F}", result.Letter)
	require.Len(t, result.TeamImpacts, 2)
	assert.NotEmpty(t, result.Rationale)

	// QB 20 out, WR 12 in: the Bears side gains value.
	assert.Equal(t, "bears", result.Fairness.TowardsTeamID)
	assert.Greater(t, result.Fairness.DeltaPercent, 0.0)

	// Impacts mirror each other.
	a0, a1 := result.TeamImpacts[0], result.TeamImpacts[1]
	assert.Equal(t, "sharks", a0.TeamID)
	assert.Equal(t, "bears", a1.TeamID)
	assert.InDelta(t, -a1.Net, a0.Net, 1e-9)
	assert.InDelta(t, a1.Incoming, a0.Outgoing, 1e-9)
}

func TestAnalyzeTrade_Deterministic(t *testing.T) {
	a := New(nil, nil)

	first, err := a.AnalyzeTrade(referenceLeague(), qbForWR())
	require.NoError(t, err)
	second, err := a.AnalyzeTrade(referenceLeague(), qbForWR())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "identical inputs must grade byte-identically")
}

func TestAnalyzeTrade_EmptySideRejected(t *testing.T) {
	a := New(nil, nil)
	_, err := a.AnalyzeTrade(referenceLeague(), domain.Trade{
		TeamAID: "sharks", TeamBID: "bears",
		TeamAOut: []string{}, TeamBOut: []string{"wr1"},
	})
	require.Error(t, err)
	var invalid *domain.InvalidTradeError
	assert.True(t, errors.As(err, &invalid))
}

func TestAnalyzeTrade_ShortCircuitsOnBadLeague(t *testing.T) {
	a := New(nil, nil)

	noRules := referenceLeague()
	noRules.Rules.Weights = nil
	result, err := a.AnalyzeTrade(noRules, qbForWR())
	assert.Nil(t, result, "no partial result on validation failure")
	var insufficient *domain.InsufficientLeagueDataError
	assert.True(t, errors.As(err, &insufficient))

	oneTeam := referenceLeague()
	oneTeam.Teams = oneTeam.Teams[:1]
	result, err = a.AnalyzeTrade(oneTeam, qbForWR())
	assert.Nil(t, result)
	assert.True(t, errors.As(err, &insufficient))
}

func TestAnalyzeTrade_EvenSwapGradesA(t *testing.T) {
	league := referenceLeague()
	// Give the Bears an identical QB so both sides move the same value.
	league.Teams[1].Roster = append(league.Teams[1].Roster,
		domain.Player{ID: "qb2", Name: "QB Two", Position: domain.PositionQB, ProjectedPoints: 20})

	a := New(nil, nil)
	result, err := a.AnalyzeTrade(league, domain.Trade{
		TeamAID: "sharks", TeamBID: "bears",
		TeamAOut: []string{"qb1"}, TeamBOut: []string{"qb2"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Fairness.DeltaPercent)
	assert.Empty(t, result.Fairness.TowardsTeamID)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, domain.LetterA, result.Letter)
}
