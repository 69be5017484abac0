package domain

import "fmt"

// InvalidTradeError reports a trade that cannot be resolved against the
// league: an unknown player id, an id on the wrong side or on both sides,
// or a side that moves no assets.
type InvalidTradeError struct {
	Reason string
}

func (e *InvalidTradeError) Error() string {
	return fmt.Sprintf("invalid trade: %s", e.Reason)
}

// InsufficientLeagueDataError reports a league object missing the inputs the
// engine needs (scoring rules, #teams >= 2).
type InsufficientLeagueDataError struct {
	Reason string
}

func (e *InsufficientLeagueDataError) Error() string {
	return fmt.Sprintf("insufficient league data: %s", e.Reason)
}

// SimulationParameterError reports an out-of-range simulation parameter.
type SimulationParameterError struct {
	Param  string
	Value  int64
	Reason string
}

func (e *SimulationParameterError) Error() string {
	return fmt.Sprintf("simulation parameter %s=%d: %s", e.Param, e.Value, e.Reason)
}
