package domain

// Letter is the closed set of trade grades.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterF Letter = "F"
)

func (l Letter) Valid() bool {
	switch l {
	case LetterA, LetterB, LetterC, LetterD, LetterF:
		return true
	default:
		return false
	}
}

// RiskTag flags a data-quality or fairness concern on a graded trade.
type RiskTag string

const (
	RiskLopsidedValue       RiskTag = "lopsided-value"
	RiskLowSampleProjection RiskTag = "low-sample-projection"
)

// TeamImpact is the per-team value movement of a trade.
type TeamImpact struct {
	TeamID   string  `json:"team_id"`
	Incoming float64 `json:"incoming"`
	Outgoing float64 `json:"outgoing"`
	Net      float64 `json:"net"`
}

// Fairness names the side a trade favors and by how much. TowardsTeamID is
// empty when both sides gain exactly the same value.
type Fairness struct {
	TowardsTeamID string  `json:"towards_team_id,omitempty"`
	DeltaPercent  float64 `json:"delta_percent"`
	Explanation   string  `json:"explanation"`
}

// RationaleEntry explains one factor's pull on the grade. Impact is in
// [-1, 1]: positive pushed the grade up, negative down.
type RationaleEntry struct {
	Factor string  `json:"factor"`
	Impact float64 `json:"impact"`
	Text   string  `json:"text"`
}

// GradeResult is the complete grading output, owned by the caller and never
// mutated after construction.
type GradeResult struct {
	Score       float64          `json:"score"`
	Letter      Letter           `json:"letter"`
	TeamImpacts []TeamImpact     `json:"team_impacts"`
	Fairness    Fairness         `json:"fairness"`
	Rationale   []RationaleEntry `json:"rationale"`
	RiskTags    []RiskTag        `json:"risk_tags"`
}

// Matchup pairs two teams for one scheduled week.
type Matchup struct {
	HomeTeamID string `json:"home_team_id" yaml:"home"`
	AwayTeamID string `json:"away_team_id" yaml:"away"`
}

// TeamOutcome is one team's aggregated simulation outcome for a scenario.
type TeamOutcome struct {
	TeamID             string  `json:"team_id"`
	MeanScore          float64 `json:"mean_score"`
	ScoreVariance      float64 `json:"score_variance"`
	PlayoffProbability float64 `json:"playoff_probability"`
}

// ScenarioSummary aggregates one scenario (with or without the trade)
// across all iterations. Teams are ordered by team id.
type ScenarioSummary struct {
	Teams []TeamOutcome `json:"teams"`
}

// TeamProbabilityDelta is the trade-attributable playoff-odds shift for one
// of the trading teams.
type TeamProbabilityDelta struct {
	TeamID string  `json:"team_id"`
	Delta  float64 `json:"delta"`
}

// SimulationResult summarizes the paired with/without-trade projections.
type SimulationResult struct {
	WithTrade      ScenarioSummary        `json:"with_trade"`
	WithoutTrade   ScenarioSummary        `json:"without_trade"`
	Delta          []TeamProbabilityDelta `json:"delta"`
	IterationsUsed int                    `json:"iterations_used"`
	Truncated      bool                   `json:"truncated"`
}
