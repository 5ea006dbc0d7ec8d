package nhlscores

import (
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-results-service/internal/domain/teams"
)

const (
	scoresOvertimeKey = "overtime"
	scoresShootoutKey = "shootout"
)

func mapDays(payload []dayResponse) []games.Day {
	days := make([]games.Day, 0, len(payload))
	for _, d := range payload {
		day := games.Day{Date: d.Date.Raw, Games: make([]games.Game, 0, len(d.Games))}
		for _, g := range d.Games {
			day.Games = append(day.Games, mapGame(g))
		}
		days = append(days, day)
	}
	return days
}

func mapGame(g gameResponse) games.Game {
	return games.Game{
		Home:      mapTeam(g.Teams.Home),
		Away:      mapTeam(g.Teams.Away),
		StartTime: parseStartTime(g.StartTime),
		Status:    mapStatus(g.Status),
		Scores:    mapScores(g.Scores),
		Goals:     mapGoals(g.Goals),
		Stats:     mapStats(g.GameStats),
		Links: games.Links{
			GameCenter: g.Links.GameCenter,
			VideoRecap: g.Links.VideoRecap,
		},
	}
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		Abbreviation: t.Abbreviation,
		TeamName:     t.TeamName,
		LocationName: t.LocationName,
	}
}

func mapStatus(s statusResponse) games.Status {
	status := games.Status{State: games.GameState(s.State)}
	if s.Progress != nil {
		status.Progress = &games.Progress{
			CurrentPeriod:        s.Progress.CurrentPeriod,
			CurrentPeriodOrdinal: s.Progress.CurrentPeriodOrdinal,
			TimeRemaining:        s.Progress.CurrentPeriodTimeRemaining.Pretty,
		}
	}
	return status
}

// mapScores splits the upstream score object, which mixes per-team goal
// counts with boolean overtime/shootout flags under the same keys.
func mapScores(raw map[string]any) games.Scores {
	scores := games.Scores{Goals: make(map[string]int, len(raw))}
	for key, val := range raw {
		switch v := val.(type) {
		case float64:
			scores.Goals[key] = int(v)
		case int64:
			scores.Goals[key] = int(v)
		case int:
			scores.Goals[key] = v
		case bool:
			switch key {
			case scoresOvertimeKey:
				scores.Overtime = v
			case scoresShootoutKey:
				scores.Shootout = v
			}
		}
	}
	return scores
}

func mapGoals(raw []goalResponse) []games.Goal {
	if len(raw) == 0 {
		return nil
	}
	out := make([]games.Goal, 0, len(raw))
	for _, g := range raw {
		goal := games.Goal{
			Period:   string(g.Period),
			Min:      g.Min,
			Sec:      g.Sec,
			Scorer:   g.Scorer.Player,
			Team:     g.Team,
			Strength: g.Strength,
			EmptyNet: g.EmptyNet,
		}
		for _, a := range g.Assists {
			goal.Assists = append(goal.Assists, a.Player)
		}
		out = append(out, goal)
	}
	return out
}

func mapStats(s *gameStatsResponse) *games.GameStats {
	if s == nil {
		return nil
	}
	stats := &games.GameStats{
		Blocked:   s.Blocked,
		Giveaways: s.Giveaways,
		Hits:      s.Hits,
		PIM:       s.PIM,
		Shots:     s.Shots,
		Takeaways: s.Takeaways,
	}
	if len(s.PowerPlay) > 0 {
		stats.PowerPlay = make(map[string]games.PowerPlay, len(s.PowerPlay))
		for abbr, pp := range s.PowerPlay {
			stats.PowerPlay[abbr] = games.PowerPlay{Goals: pp.Goals, Opportunities: pp.Opportunities}
		}
	}
	return stats
}

// parseStartTime returns the zero time when the upstream value is missing or malformed;
// such games never match a date.
func parseStartTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
