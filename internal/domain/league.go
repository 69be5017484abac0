package domain

// Position is the closed set of lineup positions the engine understands.
type Position string

const (
	PositionQB   Position = "QB"
	PositionRB   Position = "RB"
	PositionWR   Position = "WR"
	PositionTE   Position = "TE"
	PositionK    Position = "K"
	PositionDEF  Position = "DEF"
	PositionFlex Position = "FLEX"
)

// AllPositions lists every valid position in a fixed order.
var AllPositions = []Position{
	PositionQB, PositionRB, PositionWR, PositionTE,
	PositionK, PositionDEF, PositionFlex,
}

func (p Position) Valid() bool {
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDEF, PositionFlex:
		return true
	default:
		return false
	}
}

// StatCategory identifies one scored statistical category.
type StatCategory string

const (
	StatPassingYards   StatCategory = "passing_yards"
	StatPassingTDs     StatCategory = "passing_tds"
	StatInterceptions  StatCategory = "interceptions"
	StatRushingYards   StatCategory = "rushing_yards"
	StatRushingTDs     StatCategory = "rushing_tds"
	StatReceivingYards StatCategory = "receiving_yards"
	StatReceivingTDs   StatCategory = "receiving_tds"
	StatReceptions     StatCategory = "receptions"
	StatFumbles        StatCategory = "fumbles"
)

// ScoringRules maps stat categories to per-unit point weights.
type ScoringRules struct {
	Weights map[StatCategory]float64 `json:"weights" yaml:"weights"`
}

// Player is an immutable roster snapshot supplied by the league data source.
// ProjectedPoints is the rules-adjusted weekly projection; Stats carries the
// raw weekly stat line when the source exposes one, in which case the
// scoring weights apply directly instead.
type Player struct {
	ID              string                   `json:"id" yaml:"id"`
	Name            string                   `json:"name" yaml:"name"`
	Position        Position                 `json:"position" yaml:"position"`
	ProTeam         string                   `json:"pro_team" yaml:"pro_team"`
	ProjectedPoints float64                  `json:"projected_points" yaml:"projected_points"`
	Stats           map[StatCategory]float64 `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Team holds a roster. Roster order matters only for display.
type Team struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Owner  string   `json:"owner" yaml:"owner"`
	Roster []Player `json:"roster" yaml:"roster"`
}

// PlayerByID finds a rostered player.
func (t *Team) PlayerByID(id string) (Player, bool) {
	for _, p := range t.Roster {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// LeagueSettings carries the league-shape inputs the engine needs: slot
// counts drive positional scarcity, week counts drive remaining-season math.
type LeagueSettings struct {
	TeamCount          int              `json:"team_count" yaml:"team_count"`
	RosterSlots        map[Position]int `json:"roster_slots" yaml:"roster_slots"`
	PlayoffTeams       int              `json:"playoff_teams" yaml:"playoff_teams"`
	RegularSeasonWeeks int              `json:"regular_season_weeks" yaml:"regular_season_weeks"`
	CurrentWeek        int              `json:"current_week" yaml:"current_week"`
}

// WeeksRemaining reports regular-season weeks left including the current one.
func (s LeagueSettings) WeeksRemaining() int {
	remaining := s.RegularSeasonWeeks - s.CurrentWeek + 1
	if remaining < 0 {
		return 0
	}
	return remaining
}

// League is the read-only input constructed per request by the caller.
type League struct {
	ID       string         `json:"id" yaml:"id"`
	Name     string         `json:"name" yaml:"name"`
	Teams    []Team         `json:"teams" yaml:"teams"`
	Rules    ScoringRules   `json:"scoring_rules" yaml:"scoring_rules"`
	Settings LeagueSettings `json:"settings" yaml:"settings"`
}

// TeamByID finds a league team by id.
func (l *League) TeamByID(id string) (*Team, bool) {
	for i := range l.Teams {
		if l.Teams[i].ID == id {
			return &l.Teams[i], true
		}
	}
	return nil, false
}
