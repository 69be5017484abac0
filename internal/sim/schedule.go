package sim

import (
	"sort"

	"github.com/gridironhq/tradegrader/internal/domain"
)

// roundRobin builds a schedule for the requested number of weeks using the
// circle method: one team stays fixed while the rest rotate, so every team
// plays every week and opponents cycle evenly. An odd team count gets a
// phantom slot whose opponent sits the week out. Team ids are sorted first
// so the schedule is a pure function of the league's membership.
func roundRobin(teamIDs []string, weeks int) [][]domain.Matchup {
	if len(teamIDs) < 2 || weeks <= 0 {
		return nil
	}
	ids := append([]string(nil), teamIDs...)
	sort.Strings(ids)

	const bye = ""
	if len(ids)%2 == 1 {
		ids = append(ids, bye)
	}
	n := len(ids)

	schedule := make([][]domain.Matchup, 0, weeks)
	rotation := append([]string(nil), ids...)
	for week := 0; week < weeks; week++ {
		var matchups []domain.Matchup
		for i := 0; i < n/2; i++ {
			home, away := rotation[i], rotation[n-1-i]
			if home == bye || away == bye {
				continue
			}
			matchups = append(matchups, domain.Matchup{HomeTeamID: home, AwayTeamID: away})
		}
		schedule = append(schedule, matchups)

		// Rotate everything but the first slot.
		last := rotation[n-1]
		copy(rotation[2:], rotation[1:n-1])
		rotation[1] = last
	}
	return schedule
}
