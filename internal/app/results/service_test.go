package results

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-results-service/internal/metrics"
	"github.com/preston-bernstein/nhl-results-service/internal/providers"
	"github.com/preston-bernstein/nhl-results-service/internal/testutil"
)

// 7 PM Eastern on the pinned test day; already the 24th in UTC.
var puckDrop = testutil.EasternAt("2025-02-23", 19, 0)

func testDates() *ReferenceDates {
	return NewReferenceDates(ReferenceOptions{TestMode: true})
}

func newTestService(p providers.ScoresProvider) (*Service, *metrics.Recorder) {
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	return NewService(p, testDates(), rec, logger), rec
}

func daysWith(g ...games.Game) []games.Day {
	return []games.Day{testutil.SampleDay("2025-02-23", g...)}
}

func TestTodayFinalWin(t *testing.T) {
	game := testutil.SampleGame("MTL", "TOR", puckDrop, games.StateFinal, 2, 4)
	svc, rec := newTestService(testutil.StaticProvider{Days: daysWith(game)})

	page := svc.Today(context.Background(), "TOR")

	require.Equal(t, "Yes", page.Status)
	require.True(t, page.ShowSummary)
	require.False(t, page.Failed)
	require.Equal(t, "2025-02-23", page.Date)
	require.Equal(t, "Toronto Maple Leafs", page.TeamName)
	require.Equal(t, 1, rec.Outcomes(RouteToday, OutcomeWon))
}

func TestTodayFinalLossAndTie(t *testing.T) {
	lost := testutil.SampleGame("MTL", "TOR", puckDrop, games.StateFinal, 4, 2)
	svc, _ := newTestService(testutil.StaticProvider{Days: daysWith(lost)})
	page := svc.Today(context.Background(), "TOR")
	require.Equal(t, "No", page.Status)
	require.True(t, page.ShowSummary)

	tied := testutil.SampleGame("MTL", "TOR", puckDrop, games.StateFinal, 3, 3)
	svc, _ = newTestService(testutil.StaticProvider{Days: daysWith(tied)})
	require.Equal(t, "No", svc.Today(context.Background(), "MTL").Status)
}

func TestTodayRequestsWindowAroundTarget(t *testing.T) {
	p := &testutil.RecordingProvider{}
	svc, _ := newTestService(p)

	svc.Today(context.Background(), "TOR")
	svc.Yesterday(context.Background(), "TOR")
	svc.Summary(context.Background(), "TOR", "2025-03-09")

	require.Equal(t, []testutil.Window{
		{Start: "2025-02-22", End: "2025-02-24"},
		{Start: "2025-02-21", End: "2025-02-23"},
		{Start: "2025-03-08", End: "2025-03-10"},
	}, p.Calls())
}

func TestTodayRestDay(t *testing.T) {
	other := testutil.SampleGame("BOS", "OTT", puckDrop, games.StateFinal, 1, 0)
	for name, days := range map[string][]games.Day{
		"empty":       nil,
		"team absent": daysWith(other),
	} {
		t.Run(name, func(t *testing.T) {
			svc, rec := newTestService(testutil.StaticProvider{Days: days})
			page := svc.Today(context.Background(), "TOR")
			require.Equal(t, RestDay, page.Status)
			require.False(t, page.ShowSummary)
			require.Equal(t, 1, rec.Outcomes(RouteToday, OutcomeNoGame))
		})
	}
}

func TestTodayIgnoresGamesOnNeighbouringDays(t *testing.T) {
	tomorrow := testutil.SampleGame("MTL", "TOR", puckDrop.Add(24*time.Hour), games.StatePreview, 0, 0)
	svc, _ := newTestService(testutil.StaticProvider{Days: daysWith(tomorrow)})

	require.Equal(t, RestDay, svc.Today(context.Background(), "TOR").Status)
}

func TestTodayPreviewAndLive(t *testing.T) {
	preview := testutil.SampleGame("MTL", "TOR", puckDrop, games.StatePreview, 0, 0)
	svc, rec := newTestService(testutil.StaticProvider{Days: daysWith(preview)})
	page := svc.Today(context.Background(), "TOR")
	require.Equal(t, "Canadiens vs Maple Leafs\n2/23/2025\n7:00 PM", page.Status)
	require.False(t, page.ShowSummary)
	require.Equal(t, 1, rec.Outcomes(RouteToday, OutcomePreview))

	live := testutil.SampleGame("MTL", "TOR", puckDrop, games.StateLive, 1, 1)
	live.Status.Progress = &games.Progress{CurrentPeriodOrdinal: "3rd", TimeRemaining: "04:20"}
	svc, _ = newTestService(testutil.StaticProvider{Days: daysWith(live)})
	page = svc.Today(context.Background(), "TOR")
	require.Equal(t, "Live - 3rd Period: 04:20", page.Status)
	require.False(t, page.ShowSummary)
}

func TestTodayUnknownStateKeepsPlaceholder(t *testing.T) {
	postponed := testutil.SampleGame("MTL", "TOR", puckDrop, games.GameState("POSTPONED"), 0, 0)
	svc, rec := newTestService(testutil.StaticProvider{Days: daysWith(postponed)})

	page := svc.Today(context.Background(), "TOR")
	require.Equal(t, RestDay, page.Status)
	require.False(t, page.ShowSummary)
	require.Equal(t, 1, rec.Outcomes(RouteToday, OutcomeUnknown))
}

func TestTodayFetchError(t *testing.T) {
	svc, rec := newTestService(testutil.ErrProvider{Err: &providers.FetchError{Provider: "stub", StatusCode: 500}})

	page := svc.Today(context.Background(), "TOR")
	require.Equal(t, TodayFetchError, page.Status)
	require.True(t, page.Failed)
	require.False(t, page.ShowSummary)
	require.Equal(t, 1, rec.Outcomes(RouteToday, OutcomeError))
}

func TestEveryRouteNormalizesTeam(t *testing.T) {
	yesterday := testutil.SampleGame("TOR", "BOS", testutil.EasternAt("2025-02-22", 19, 0), games.StateFinal, 3, 1)
	today := testutil.SampleGame("MTL", "TOR", puckDrop, games.StateFinal, 2, 4)
	svc, _ := newTestService(testutil.StaticProvider{Days: []games.Day{
		testutil.SampleDay("2025-02-22", yesterday),
		testutil.SampleDay("2025-02-23", today),
	}})
	ctx := context.Background()

	routes := []struct {
		name string
		run  func(team string) (code, name string)
	}{
		{"today", func(team string) (string, string) {
			p := svc.Today(ctx, team)
			return p.Team, p.TeamName
		}},
		{"yesterday", func(team string) (string, string) {
			p := svc.Yesterday(ctx, team)
			return p.Team, p.TeamName
		}},
		{"summary", func(team string) (string, string) {
			p := svc.Summary(ctx, team, "2025-02-23")
			return p.Team, p.TeamName
		}},
	}
	inputs := []struct {
		in   string
		want string
	}{
		{"", "TOR"},
		{"XYZ", "TOR"},
		{"tor", "TOR"},
		{"mtl", "MTL"},
		{" bos ", "BOS"},
	}

	for _, route := range routes {
		for _, tc := range inputs {
			code, name := route.run(tc.in)
			require.Equal(t, tc.want, code, "%s(%q)", route.name, tc.in)
			require.NotEmpty(t, name, "%s(%q)", route.name, tc.in)
		}
	}

	require.Equal(t, "No", svc.Today(ctx, "mtl").Status)
	require.Equal(t, "Yes", svc.Yesterday(ctx, "tor").Status)
	summary := svc.Summary(ctx, "xyz", "2025-02-23")
	require.NotNil(t, summary.BoxScore)
	require.True(t, summary.BoxScore.Home.Selected)
}

func TestYesterdayRoute(t *testing.T) {
	yesterday := testutil.EasternAt("2025-02-22", 19, 0)
	win := testutil.SampleGame("TOR", "BOS", yesterday, games.StateFinal, 5, 1)
	svc, rec := newTestService(testutil.StaticProvider{Days: []games.Day{testutil.SampleDay("2025-02-22", win)}})

	page := svc.Yesterday(context.Background(), "TOR")
	require.Equal(t, "Yes", page.Status)
	require.True(t, page.ShowSummary)
	require.True(t, page.IsYesterday)
	require.Equal(t, "2025-02-22", page.Date)
	require.Equal(t, 1, rec.Outcomes(RouteYesterday, OutcomeWon))
}

func TestYesterdayPlaceholderAndErrors(t *testing.T) {
	svc, _ := newTestService(testutil.StaticProvider{})
	page := svc.Yesterday(context.Background(), "TOR")
	require.Equal(t, NoGameYesterday, page.Status)
	require.False(t, page.ShowSummary)

	svc, _ = newTestService(testutil.ErrProvider{Err: errors.New("boom")})
	page = svc.Yesterday(context.Background(), "TOR")
	require.Equal(t, YesterdayFetchError, page.Status)
	require.True(t, page.Failed)
}

func TestYesterdayUnfinishedGame(t *testing.T) {
	yesterday := testutil.EasternAt("2025-02-22", 19, 0)
	live := testutil.SampleGame("TOR", "BOS", yesterday, games.StateLive, 1, 1)
	svc, _ := newTestService(testutil.StaticProvider{Days: []games.Day{testutil.SampleDay("2025-02-22", live)}})

	page := svc.Yesterday(context.Background(), "TOR")
	require.Equal(t, NoFinalResults, page.Status)
	require.False(t, page.ShowSummary)
}

func TestSummaryBuildsBoxScore(t *testing.T) {
	game := testutil.SampleGame("MTL", "TOR", puckDrop, games.StateFinal, 2, 4)
	game.Links.VideoRecap = "https://example.com/recap"
	game.Goals = []games.Goal{{Period: "1", Min: 3, Sec: 7, Scorer: "Matthews", Team: "TOR"}}
	svc, rec := newTestService(testutil.StaticProvider{Days: daysWith(game)})

	page := svc.Summary(context.Background(), "TOR", "2025-02-23")
	require.NotNil(t, page.BoxScore)
	require.Empty(t, page.Message)
	require.Equal(t, 4, page.BoxScore.Home.Score)
	require.True(t, page.BoxScore.Home.Selected)
	require.Equal(t, "https://example.com/recap", page.VideoRecap)
	require.False(t, page.IsYesterday)
	require.Equal(t, 1, rec.Outcomes(RouteSummary, OutcomeSummary))
}

func TestSummaryMessages(t *testing.T) {
	svc, _ := newTestService(testutil.StaticProvider{})
	page := svc.Summary(context.Background(), "TOR", "2025-02-23")
	require.Nil(t, page.BoxScore)
	require.Equal(t, "No recent games found for Toronto Maple Leafs", page.Message)

	svc, _ = newTestService(testutil.ErrProvider{Err: errors.New("boom")})
	page = svc.Summary(context.Background(), "TOR", "2025-02-23")
	require.Equal(t, "Unable to fetch game data for Toronto Maple Leafs. Please try again later.", page.Message)
}

func TestSummaryDateDefaultsAndYesterdayFlag(t *testing.T) {
	svc, _ := newTestService(&testutil.RecordingProvider{})

	require.Equal(t, "2025-02-23", svc.Summary(context.Background(), "TOR", "").Date)
	require.Equal(t, "2025-02-23", svc.Summary(context.Background(), "TOR", "garbage").Date)

	page := svc.Summary(context.Background(), "TOR", "2025-02-22")
	require.True(t, page.IsYesterday)
}

func TestServiceWithoutProvider(t *testing.T) {
	svc := NewService(nil, nil, nil, nil)
	page := svc.Today(context.Background(), "TOR")
	require.Equal(t, TodayFetchError, page.Status)
	require.NotNil(t, svc.Dates())
}
