package games

import (
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/teams"
)

var (
	leafs     = teams.Team{Abbreviation: "TOR", TeamName: "Maple Leafs", LocationName: "Toronto"}
	canadiens = teams.Team{Abbreviation: "MTL", TeamName: "Canadiens", LocationName: "Montréal"}
	bruins    = teams.Team{Abbreviation: "BOS", TeamName: "Bruins", LocationName: "Boston"}
)

func gameAt(home, away teams.Team, start time.Time, state GameState) Game {
	return Game{
		Home:      home,
		Away:      away,
		StartTime: start,
		Status:    Status{State: state},
		Scores:    Scores{Goals: map[string]int{}},
	}
}
