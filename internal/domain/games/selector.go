package games

import "github.com/preston-bernstein/nhl-results-service/internal/timeutil"

// Flatten concatenates the games of every day, preserving order.
func Flatten(days []Day) []Game {
	total := 0
	for _, d := range days {
		total += len(d.Games)
	}
	out := make([]Game, 0, total)
	for _, d := range days {
		out = append(out, d.Games...)
	}
	return out
}

// ForTeam keeps the games where the team is home or away.
func ForTeam(games []Game, abbr string) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if g.Involves(abbr) {
			out = append(out, g)
		}
	}
	return out
}

// PickForDate returns the first game whose Eastern calendar date equals target.
// There is no fallback to other days in the window.
func PickForDate(games []Game, target string) (Game, bool) {
	for _, g := range games {
		if g.StartTime.IsZero() {
			continue
		}
		if timeutil.CanonicalDate(g.StartTime) == target {
			return g, true
		}
	}
	return Game{}, false
}
