package testutil

import (
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-results-service/internal/domain/teams"
)

var sampleTeams = map[string]teams.Team{
	"TOR": {Abbreviation: "TOR", TeamName: "Maple Leafs", LocationName: "Toronto"},
	"MTL": {Abbreviation: "MTL", TeamName: "Canadiens", LocationName: "Montréal"},
	"BOS": {Abbreviation: "BOS", TeamName: "Bruins", LocationName: "Boston"},
	"OTT": {Abbreviation: "OTT", TeamName: "Senators", LocationName: "Ottawa"},
}

// SampleTeam returns a provider-shaped team for a code; unknown codes get the code as name.
func SampleTeam(code string) teams.Team {
	if t, ok := sampleTeams[code]; ok {
		return t
	}
	return teams.Team{Abbreviation: code, TeamName: code}
}

// SampleGame builds a game between two teams with the given state and score (away, home).
func SampleGame(away, home string, start time.Time, state games.GameState, awayGoals, homeGoals int) games.Game {
	return games.Game{
		Home:      SampleTeam(home),
		Away:      SampleTeam(away),
		StartTime: start,
		Status:    games.Status{State: state},
		Scores: games.Scores{Goals: map[string]int{
			away: awayGoals,
			home: homeGoals,
		}},
	}
}

// SampleDay wraps games into a single provider day.
func SampleDay(date string, g ...games.Game) games.Day {
	return games.Day{Date: date, Games: g}
}
