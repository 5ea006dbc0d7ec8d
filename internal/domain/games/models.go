package games

import (
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/teams"
)

// GameState mirrors the provider's lifecycle states.
type GameState string

const (
	StatePreview GameState = "PREVIEW"
	StateLive    GameState = "LIVE"
	StateFinal   GameState = "FINAL"
)

// Progress describes the clock of a LIVE game.
type Progress struct {
	CurrentPeriod        int    `json:"currentPeriod"`
	CurrentPeriodOrdinal string `json:"currentPeriodOrdinal"`
	TimeRemaining        string `json:"timeRemaining"`
}

// Status carries the state and, for LIVE games, the progress.
type Status struct {
	State    GameState `json:"state"`
	Progress *Progress `json:"progress,omitempty"`
}

// Scores maps team abbreviation to goals. Absent until scoring starts.
type Scores struct {
	Goals    map[string]int `json:"goals"`
	Overtime bool           `json:"overtime,omitempty"`
	Shootout bool           `json:"shootout,omitempty"`
}

// For returns the goal count for a team, zero when unknown.
func (s Scores) For(abbr string) int {
	return s.Goals[abbr]
}

// Goal is a single scoring play.
type Goal struct {
	Period   string   `json:"period"`
	Min      int      `json:"min"`
	Sec      int      `json:"sec"`
	Scorer   string   `json:"scorer"`
	Assists  []string `json:"assists,omitempty"`
	Team     string   `json:"team"`
	Strength string   `json:"strength,omitempty"`
	EmptyNet bool     `json:"emptyNet,omitempty"`
}

// PowerPlay holds power play totals for one team.
type PowerPlay struct {
	Goals         int `json:"goals"`
	Opportunities int `json:"opportunities"`
}

// GameStats holds the secondary team stats keyed by team abbreviation.
type GameStats struct {
	Blocked   map[string]int       `json:"blocked,omitempty"`
	Giveaways map[string]int       `json:"giveaways,omitempty"`
	Hits      map[string]int       `json:"hits,omitempty"`
	PIM       map[string]int       `json:"pim,omitempty"`
	PowerPlay map[string]PowerPlay `json:"powerPlay,omitempty"`
	Shots     map[string]int       `json:"shots,omitempty"`
	Takeaways map[string]int       `json:"takeaways,omitempty"`
}

// Links holds optional external links for a game.
type Links struct {
	GameCenter string `json:"gameCenter,omitempty"`
	VideoRecap string `json:"videoRecap,omitempty"`
}

// Game is the canonical game shape used by the service.
type Game struct {
	Home      teams.Team `json:"home"`
	Away      teams.Team `json:"away"`
	StartTime time.Time  `json:"startTime"`
	Status    Status     `json:"status"`
	Scores    Scores     `json:"scores"`
	Goals     []Goal     `json:"goals,omitempty"`
	Stats     *GameStats `json:"gameStats,omitempty"`
	Links     Links      `json:"links"`
}

// Involves reports whether the team plays in the game.
func (g Game) Involves(abbr string) bool {
	return g.Home.Abbreviation == abbr || g.Away.Abbreviation == abbr
}

// Opponent returns the abbreviation of the other team.
func (g Game) Opponent(abbr string) string {
	if g.Away.Abbreviation == abbr {
		return g.Home.Abbreviation
	}
	return g.Away.Abbreviation
}

// Day groups the games the provider reports for one calendar date.
type Day struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}
