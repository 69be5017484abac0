package domain

import "fmt"

// Trade proposes moving TeamAOut player ids off team A's roster in exchange
// for TeamBOut player ids off team B's roster.
type Trade struct {
	TeamAID  string   `json:"team_a" yaml:"team_a"`
	TeamBID  string   `json:"team_b" yaml:"team_b"`
	TeamAOut []string `json:"team_a_out" yaml:"team_a_out"`
	TeamBOut []string `json:"team_b_out" yaml:"team_b_out"`
}

// ResolvedTrade is a trade checked against league rosters, with every id
// replaced by its player snapshot.
type ResolvedTrade struct {
	TeamA    *Team
	TeamB    *Team
	TeamAOut []Player
	TeamBOut []Player
}

// ValidateLeague checks the league carries enough data to grade or simulate
// a trade at all.
func (l *League) ValidateLeague() error {
	if len(l.Teams) < 2 {
		return &InsufficientLeagueDataError{Reason: fmt.Sprintf("league has %d teams, need at least 2", len(l.Teams))}
	}
	if len(l.Rules.Weights) == 0 {
		return &InsufficientLeagueDataError{Reason: "scoring rules missing"}
	}
	return nil
}

// ResolveTrade validates the trade against current rosters. Every id must be
// found on the claimed side, each side must move at least one asset, and no
// id may appear on both sides.
func (l *League) ResolveTrade(trade Trade) (*ResolvedTrade, error) {
	if trade.TeamAID == trade.TeamBID {
		return nil, &InvalidTradeError{Reason: "trade must involve two distinct teams"}
	}
	teamA, ok := l.TeamByID(trade.TeamAID)
	if !ok {
		return nil, &InvalidTradeError{Reason: fmt.Sprintf("team %q not in league", trade.TeamAID)}
	}
	teamB, ok := l.TeamByID(trade.TeamBID)
	if !ok {
		return nil, &InvalidTradeError{Reason: fmt.Sprintf("team %q not in league", trade.TeamBID)}
	}
	if len(trade.TeamAOut) == 0 || len(trade.TeamBOut) == 0 {
		return nil, &InvalidTradeError{Reason: "each side must move at least one asset"}
	}

	seen := make(map[string]bool, len(trade.TeamAOut)+len(trade.TeamBOut))
	for _, id := range append(append([]string{}, trade.TeamAOut...), trade.TeamBOut...) {
		if seen[id] {
			return nil, &InvalidTradeError{Reason: fmt.Sprintf("player %q appears on both sides", id)}
		}
		seen[id] = true
	}

	resolved := &ResolvedTrade{TeamA: teamA, TeamB: teamB}
	for _, id := range trade.TeamAOut {
		p, ok := teamA.PlayerByID(id)
		if !ok {
			return nil, &InvalidTradeError{Reason: fmt.Sprintf("player %q not on roster of team %q", id, teamA.ID)}
		}
		resolved.TeamAOut = append(resolved.TeamAOut, p)
	}
	for _, id := range trade.TeamBOut {
		p, ok := teamB.PlayerByID(id)
		if !ok {
			return nil, &InvalidTradeError{Reason: fmt.Sprintf("player %q not on roster of team %q", id, teamB.ID)}
		}
		resolved.TeamBOut = append(resolved.TeamBOut, p)
	}
	return resolved, nil
}

// ApplyTrade returns a deep copy of the league with the trade executed.
// The input league is never mutated.
func (l *League) ApplyTrade(trade Trade) (*League, error) {
	if _, err := l.ResolveTrade(trade); err != nil {
		return nil, err
	}

	out := &League{ID: l.ID, Name: l.Name, Rules: l.Rules, Settings: l.Settings}
	out.Teams = make([]Team, len(l.Teams))
	for i, t := range l.Teams {
		copied := t
		copied.Roster = append([]Player(nil), t.Roster...)
		out.Teams[i] = copied
	}

	leavingA := make(map[string]bool, len(trade.TeamAOut))
	for _, id := range trade.TeamAOut {
		leavingA[id] = true
	}
	leavingB := make(map[string]bool, len(trade.TeamBOut))
	for _, id := range trade.TeamBOut {
		leavingB[id] = true
	}

	teamA, _ := out.TeamByID(trade.TeamAID)
	teamB, _ := out.TeamByID(trade.TeamBID)

	var keptA, movedA []Player
	for _, p := range teamA.Roster {
		if leavingA[p.ID] {
			movedA = append(movedA, p)
		} else {
			keptA = append(keptA, p)
		}
	}
	var keptB, movedB []Player
	for _, p := range teamB.Roster {
		if leavingB[p.ID] {
			movedB = append(movedB, p)
		} else {
			keptB = append(keptB, p)
		}
	}

	teamA.Roster = append(keptA, movedB...)
	teamB.Roster = append(keptB, movedA...)
	return out, nil
}
