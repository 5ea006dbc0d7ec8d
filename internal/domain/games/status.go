package games

import (
	"fmt"

	"github.com/preston-bernstein/nhl-results-service/internal/timeutil"
)

const (
	StatusWon  = "Yes"
	StatusLost = "No"

	previewDateLayout = "1/2/2006"
	previewTimeLayout = "3:04 PM"
)

// Outcome is the human readable status of a selected game.
type Outcome struct {
	Text        string
	ShowSummary bool
	State       GameState
}

// Classify maps the game's state to a status for the given team.
// It reports false for states it does not know how to describe.
func Classify(game Game, abbr string) (Outcome, bool) {
	switch game.Status.State {
	case StateFinal:
		text := StatusLost
		if game.Scores.For(abbr) > game.Scores.For(game.Opponent(abbr)) {
			text = StatusWon
		}
		return Outcome{Text: text, ShowSummary: true, State: StateFinal}, true
	case StatePreview:
		start := game.StartTime.In(timeutil.Eastern())
		text := fmt.Sprintf("%s vs %s\n%s\n%s",
			game.Away.TeamName,
			game.Home.TeamName,
			start.Format(previewDateLayout),
			start.Format(previewTimeLayout),
		)
		return Outcome{Text: text, State: StatePreview}, true
	case StateLive:
		var ordinal, remaining string
		if p := game.Status.Progress; p != nil {
			ordinal = p.CurrentPeriodOrdinal
			remaining = p.TimeRemaining
		}
		return Outcome{Text: fmt.Sprintf("Live - %s Period: %s", ordinal, remaining), State: StateLive}, true
	default:
		return Outcome{}, false
	}
}
