package games

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Side is one team's header in a box score.
type Side struct {
	Name         string
	Abbreviation string
	Score        int
	Selected     bool
}

// GoalLine is a rendered scoring play.
type GoalLine struct {
	Scorer   string
	Time     string
	Assists  string
	Selected bool
}

// PeriodGoals groups the goals of one period.
type PeriodGoals struct {
	Period string
	Goals  []GoalLine
}

// StatRow is one line of the team comparison table.
type StatRow struct {
	Label string
	Home  int
	Away  int
}

// BoxScore is the structured game summary rendered on the score page.
type BoxScore struct {
	Home       Side
	Away       Side
	Periods    []PeriodGoals
	Stats      []StatRow
	VideoRecap string
}

type statColumn struct {
	label string
	value func(s *GameStats, abbr string) int
}

var statColumns = []statColumn{
	{"Blocked Shots", func(s *GameStats, abbr string) int { return s.Blocked[abbr] }},
	{"Giveaways", func(s *GameStats, abbr string) int { return s.Giveaways[abbr] }},
	{"Hits", func(s *GameStats, abbr string) int { return s.Hits[abbr] }},
	{"Penalty Minutes", func(s *GameStats, abbr string) int { return s.PIM[abbr] }},
	{"Power Play Goals", func(s *GameStats, abbr string) int { return s.PowerPlay[abbr].Goals }},
	{"Power Play Opportunities", func(s *GameStats, abbr string) int { return s.PowerPlay[abbr].Opportunities }},
	{"Shots", func(s *GameStats, abbr string) int { return s.Shots[abbr] }},
	{"Takeaways", func(s *GameStats, abbr string) int { return s.Takeaways[abbr] }},
}

// BuildBoxScore summarizes a game from the point of view of the active team.
func BuildBoxScore(game Game, abbr string) BoxScore {
	home, away := game.Home.Abbreviation, game.Away.Abbreviation
	return BoxScore{
		Home: Side{
			Name:         game.Home.TeamName,
			Abbreviation: home,
			Score:        game.Scores.For(home),
			Selected:     home == abbr,
		},
		Away: Side{
			Name:         game.Away.TeamName,
			Abbreviation: away,
			Score:        game.Scores.For(away),
			Selected:     away == abbr,
		},
		Periods:    groupGoals(game.Goals, abbr),
		Stats:      statRows(game.Stats, home, away),
		VideoRecap: game.Links.VideoRecap,
	}
}

// groupGoals orders integer periods numerically, then OT/SO style keys by first appearance.
func groupGoals(goals []Goal, abbr string) []PeriodGoals {
	if len(goals) == 0 {
		return nil
	}
	byPeriod := make(map[string][]GoalLine)
	var numeric, named []string
	for _, g := range goals {
		if _, seen := byPeriod[g.Period]; !seen {
			if isPeriodIndex(g.Period) {
				numeric = append(numeric, g.Period)
			} else {
				named = append(named, g.Period)
			}
		}
		byPeriod[g.Period] = append(byPeriod[g.Period], GoalLine{
			Scorer:   g.Scorer,
			Time:     FormatClock(g.Min, g.Sec),
			Assists:  strings.Join(g.Assists, ", "),
			Selected: g.Team == abbr,
		})
	}
	sort.SliceStable(numeric, func(i, j int) bool {
		a, _ := strconv.Atoi(numeric[i])
		b, _ := strconv.Atoi(numeric[j])
		return a < b
	})

	out := make([]PeriodGoals, 0, len(byPeriod))
	for _, p := range append(numeric, named...) {
		out = append(out, PeriodGoals{Period: p, Goals: byPeriod[p]})
	}
	return out
}

func isPeriodIndex(p string) bool {
	if p == "" || (len(p) > 1 && p[0] == '0') {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func statRows(stats *GameStats, home, away string) []StatRow {
	if stats == nil {
		stats = &GameStats{}
	}
	rows := make([]StatRow, 0, len(statColumns))
	for _, col := range statColumns {
		rows = append(rows, StatRow{
			Label: col.label,
			Home:  col.value(stats, home),
			Away:  col.value(stats, away),
		})
	}
	return rows
}

// FormatClock renders minutes and seconds as zero-padded MM:SS.
func FormatClock(min, sec int) string {
	return fmt.Sprintf("%02d:%02d", min, sec)
}
