package fixture

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-results-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-results-service/internal/timeutil"
)

const (
	providerName = "fixture"
	// Every fixture game starts at 7 PM Eastern and is decided three hours later.
	puckDropHour = 19
	gameLength   = 3 * time.Hour
	// Windows longer than this are clipped; the service only asks for three days.
	maxDays = 14
)

// Provider returns a deterministic league schedule useful for local development.
// Each team plays every other day; games before puck drop are PREVIEW, during the
// game LIVE and afterwards FINAL with a full box score.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// FetchScores returns a generated schedule for every date between startDate and endDate inclusive.
func (p *Provider) FetchScores(ctx context.Context, startDate, endDate string) ([]games.Day, error) {
	_ = ctx

	start, err := timeutil.ParseEasternDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("fixture: invalid start date %q: %w", startDate, err)
	}
	end, err := timeutil.ParseEasternDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("fixture: invalid end date %q: %w", endDate, err)
	}

	now := p.now()
	days := make([]games.Day, 0)
	for d := start; !d.After(end) && len(days) < maxDays; d = timeutil.AddDays(d, 1) {
		days = append(days, games.Day{Date: timeutil.FormatDate(d), Games: p.gamesOn(d, now)})
	}
	return days, nil
}

func (p *Provider) gamesOn(day time.Time, now time.Time) []games.Game {
	entries := teams.All()
	// Alternate which half of the league plays so that every team gets rest days.
	parity := (day.YearDay() + day.Year()) % 2

	var playing []teams.Entry
	for i, e := range entries {
		if i%2 == parity {
			playing = append(playing, e)
		}
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), puckDropHour, 0, 0, 0, timeutil.Eastern())
	out := make([]games.Game, 0, len(playing)/2)
	for i := 0; i+1 < len(playing); i += 2 {
		away, home := playing[i], playing[i+1]
		if day.YearDay()%4 < 2 {
			away, home = home, away
		}
		out = append(out, buildGame(toTeam(away), toTeam(home), start, now))
	}
	return out
}

func toTeam(e teams.Entry) teams.Team {
	return teams.Team{Abbreviation: e.Code, TeamName: e.Name}
}

func buildGame(away, home teams.Team, start, now time.Time) games.Game {
	game := games.Game{
		Home:      home,
		Away:      away,
		StartTime: start.UTC(),
		Status:    games.Status{State: games.StatePreview},
		Links: games.Links{
			GameCenter: fmt.Sprintf("https://www.nhl.com/gamecenter/%s-vs-%s/%s", away.Abbreviation, home.Abbreviation, timeutil.FormatDate(start)),
		},
	}

	if now.Before(start) {
		return game
	}

	seed := seedFor(start, away.Abbreviation, home.Abbreviation)
	awayGoals := int(seed % 5)
	homeGoals := int((seed / 5) % 5)
	if awayGoals == homeGoals {
		// Decide ties in overtime.
		if seed%2 == 0 {
			homeGoals++
		} else {
			awayGoals++
		}
		game.Scores.Overtime = true
	}
	game.Scores.Goals = map[string]int{
		away.Abbreviation: awayGoals,
		home.Abbreviation: homeGoals,
	}
	game.Goals = buildGoals(away.Abbreviation, awayGoals, home.Abbreviation, homeGoals, game.Scores.Overtime, seed)

	if now.Before(start.Add(gameLength)) {
		game.Status = games.Status{
			State: games.StateLive,
			Progress: &games.Progress{
				CurrentPeriod:        2,
				CurrentPeriodOrdinal: "2nd",
				TimeRemaining:        "10:00",
			},
		}
		return game
	}

	game.Status = games.Status{State: games.StateFinal}
	game.Stats = buildStats(away.Abbreviation, home.Abbreviation, seed)
	game.Links.VideoRecap = game.Links.GameCenter + "/recap"
	return game
}

func buildGoals(away string, awayGoals int, home string, homeGoals int, overtime bool, seed uint64) []games.Goal {
	winner := home
	if awayGoals > homeGoals {
		winner = away
	}
	awayLeft, homeLeft := awayGoals, homeGoals
	if overtime {
		if winner == away {
			awayLeft--
		} else {
			homeLeft--
		}
	}

	regulation := awayLeft + homeLeft
	scorers := make([]string, 0, regulation+1)
	for awayLeft > 0 || homeLeft > 0 {
		if awayLeft > 0 {
			scorers = append(scorers, away)
			awayLeft--
		}
		if homeLeft > 0 {
			scorers = append(scorers, home)
			homeLeft--
		}
	}
	if overtime {
		scorers = append(scorers, winner)
	}

	out := make([]games.Goal, 0, len(scorers))
	for i, team := range scorers {
		period := "OT"
		if i < regulation {
			period = strconv.Itoa(i*3/regulation + 1)
		}
		out = append(out, games.Goal{
			Period:  period,
			Min:     int((seed + uint64(i)*7) % 20),
			Sec:     int((seed + uint64(i)*13) % 60),
			Scorer:  fmt.Sprintf("%s Skater %d", team, i%4+1),
			Assists: []string{fmt.Sprintf("%s Skater %d", team, (i+1)%4+5)},
			Team:    team,
		})
	}
	return out
}

func buildStats(away, home string, seed uint64) *games.GameStats {
	stat := func(offset uint64, base int, spread uint64) map[string]int {
		return map[string]int{
			away: base + int((seed+offset)%spread),
			home: base + int((seed/3+offset)%spread),
		}
	}
	return &games.GameStats{
		Blocked:   stat(1, 8, 10),
		Giveaways: stat(2, 4, 8),
		Hits:      stat(3, 15, 15),
		PIM:       stat(4, 2, 10),
		PowerPlay: map[string]games.PowerPlay{
			away: {Goals: int(seed % 2), Opportunities: 2 + int(seed%3)},
			home: {Goals: int((seed / 2) % 2), Opportunities: 2 + int((seed/2)%3)},
		},
		Shots:     stat(5, 24, 12),
		Takeaways: stat(6, 3, 8),
	}
}

func seedFor(start time.Time, away, home string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(timeutil.FormatDate(start) + away + home))
	return h.Sum64()
}
