package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/gridironhq/tradegrader/internal/domain"
	"github.com/gridironhq/tradegrader/internal/valuation"
)

// Factor names are part of the public result contract.
const (
	FactorValueDifferential = "Value Differential"
	FactorPositionalValue   = "Positional Value"
	FactorRosterNeed        = "Roster Need"
)

// buildRationale produces the weighted explanation entries. The list is
// never empty and is ordered by descending absolute impact, ties broken by
// factor name, so identical inputs always render identically.
func buildRationale(rt *domain.ResolvedTrade, fairness domain.Fairness, model *valuation.Model, league *domain.League) []domain.RationaleEntry {
	entries := []domain.RationaleEntry{
		valueDifferentialEntry(fairness),
		positionalValueEntry(rt, model, league),
		rosterNeedEntry(rt, league.Settings),
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ai, aj := math.Abs(entries[i].Impact), math.Abs(entries[j].Impact)
		if ai != aj {
			return ai > aj
		}
		return entries[i].Factor < entries[j].Factor
	})
	return entries
}

// valueDifferentialEntry weighs raw value imbalance: the more lopsided the
// exchange, the harder this factor drags the grade down.
func valueDifferentialEntry(fairness domain.Fairness) domain.RationaleEntry {
	var impact float64
	if fairness.DeltaPercent > 0 {
		impact = clamp(-fairness.DeltaPercent/100, -1, 1)
	}
	text := "The sides exchange nearly equal total value."
	if fairness.TowardsTeamID != "" {
		text = fmt.Sprintf("Team %s comes out ahead on raw value by %.1f%% of the total exchanged.",
			fairness.TowardsTeamID, fairness.DeltaPercent)
	}
	return domain.RationaleEntry{Factor: FactorValueDifferential, Impact: impact, Text: text}
}

// positionalValueEntry weighs how much scarcity premium moves between the
// sides. A one-way flow of scarce-position value counts against the grade.
func positionalValueEntry(rt *domain.ResolvedTrade, model *valuation.Model, league *domain.League) domain.RationaleEntry {
	premium := func(players []domain.Player) float64 {
		var total float64
		for _, p := range players {
			total += model.Value(p, league.Rules, league.Settings) - model.AdjustedProjection(p, league.Rules)
		}
		return total
	}

	// Premium arriving at A is carried by B's outgoing players.
	premiumToA := premium(rt.TeamBOut)
	premiumToB := premium(rt.TeamAOut)

	var imbalance float64
	if denom := math.Abs(premiumToA) + math.Abs(premiumToB); denom > 0 {
		imbalance = (premiumToA - premiumToB) / denom
	}
	var impact float64
	if imbalance != 0 {
		impact = clamp(-math.Abs(imbalance), -1, 1)
	}

	text := "Positional scarcity value is balanced across both sides."
	switch {
	case imbalance > 0:
		text = fmt.Sprintf("Team %s receives the bulk of the positional scarcity premium.", rt.TeamA.ID)
	case imbalance < 0:
		text = fmt.Sprintf("Team %s receives the bulk of the positional scarcity premium.", rt.TeamB.ID)
	}
	return domain.RationaleEntry{Factor: FactorPositionalValue, Impact: impact, Text: text}
}

// rosterNeedEntry weighs the change in starting-slot coverage: a trade that
// fills open slots pushes the grade up, one that leaves holes pulls it down.
// Coverage is the number of starting slots a roster can actually fill.
func rosterNeedEntry(rt *domain.ResolvedTrade, settings domain.LeagueSettings) domain.RationaleEntry {
	coverage := func(counts map[domain.Position]int) int {
		total := 0
		for pos, slots := range settings.RosterSlots {
			c := counts[pos]
			if c > slots {
				c = slots
			}
			total += c
		}
		return total
	}
	coverageChange := func(team *domain.Team, incoming, outgoing []domain.Player) int {
		counts := make(map[domain.Position]int)
		for _, p := range team.Roster {
			counts[p.Position]++
		}
		before := coverage(counts)
		for _, p := range outgoing {
			counts[p.Position]--
		}
		for _, p := range incoming {
			counts[p.Position]++
		}
		return coverage(counts) - before
	}

	score := coverageChange(rt.TeamA, rt.TeamBOut, rt.TeamAOut) +
		coverageChange(rt.TeamB, rt.TeamAOut, rt.TeamBOut)
	total := len(rt.TeamAOut) + len(rt.TeamBOut)

	var impact float64
	if total > 0 {
		impact = clamp(float64(score)/float64(total), -1, 1)
	}

	text := "Neither roster's starting-slot coverage changes materially."
	switch {
	case score > 0:
		text = "The trade improves starting-slot coverage for the rosters involved."
	case score < 0:
		text = "The trade opens holes in starting-slot coverage."
	}
	return domain.RationaleEntry{Factor: FactorRosterNeed, Impact: impact, Text: text}
}
