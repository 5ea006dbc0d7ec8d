package results

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-results-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-results-service/internal/logging"
	"github.com/preston-bernstein/nhl-results-service/internal/metrics"
	"github.com/preston-bernstein/nhl-results-service/internal/providers"
	"github.com/preston-bernstein/nhl-results-service/internal/timeutil"
)

// Route names used for logs and outcome metrics.
const (
	RouteToday     = "home"
	RouteYesterday = "yesterday"
	RouteSummary   = "score"
)

// Outcome labels recorded per route.
const (
	OutcomeWon     = "won"
	OutcomeLost    = "lost"
	OutcomePreview = "preview"
	OutcomeLive    = "live"
	OutcomeNoGame  = "no_game"
	OutcomeUnknown = "unknown"
	OutcomeError   = "error"
	OutcomeSummary = "summary"
)

const (
	RestDay         = "- REST DAY -"
	NoGameYesterday = "- NO GAME YESTERDAY -"
	NoFinalResults  = "No final results for yesterday."

	TodayFetchError     = "Error loading game data"
	YesterdayFetchError = "Error loading yesterday's data"
)

// Days on either side of the target date requested from the provider.
const (
	windowBefore = 1
	windowAfter  = 1
)

// StatusPage is the model for the today and yesterday pages.
type StatusPage struct {
	Team        string
	TeamName    string
	Status      string
	ShowSummary bool
	Date        string
	IsYesterday bool
	Failed      bool
}

// SummaryPage is the model for the box-score page. Exactly one of BoxScore or
// Message is set.
type SummaryPage struct {
	Team        string
	TeamName    string
	Date        string
	IsYesterday bool
	BoxScore    *games.BoxScore
	Message     string
	VideoRecap  string
}

// Service resolves the results pages for a team.
type Service struct {
	provider providers.ScoresProvider
	dates    *ReferenceDates
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(provider providers.ScoresProvider, dates *ReferenceDates, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if dates == nil {
		dates = NewReferenceDates(ReferenceOptions{Logger: logger})
	}
	return &Service{
		provider: provider,
		dates:    dates,
		recorder: recorder,
		logger:   logger,
	}
}

// Dates exposes the reference dates the service resolves against.
func (s *Service) Dates() *ReferenceDates {
	return s.dates
}

// Today answers "did the team win today?".
func (s *Service) Today(ctx context.Context, team string) StatusPage {
	team = teams.Normalize(team)
	target := s.dates.Today()
	page := StatusPage{
		Team:     team,
		TeamName: teams.Name(team),
		Status:   RestDay,
		Date:     timeutil.CanonicalDate(target),
	}

	game, found, err := s.selectGame(ctx, RouteToday, team, target)
	switch {
	case err != nil:
		page.Status = TodayFetchError
		page.Failed = true
		s.record(RouteToday, OutcomeError)
	case !found:
		s.record(RouteToday, OutcomeNoGame)
	default:
		outcome, ok := games.Classify(game, team)
		if !ok {
			s.unclassified(ctx, RouteToday, team, game)
			break
		}
		page.Status = outcome.Text
		page.ShowSummary = outcome.ShowSummary
		s.record(RouteToday, outcomeLabel(outcome))
	}
	return page
}

// Yesterday answers "did the team win yesterday?". Only FINAL games produce a result.
func (s *Service) Yesterday(ctx context.Context, team string) StatusPage {
	team = teams.Normalize(team)
	target := s.dates.Yesterday()
	page := StatusPage{
		Team:        team,
		TeamName:    teams.Name(team),
		Status:      NoGameYesterday,
		Date:        timeutil.CanonicalDate(target),
		IsYesterday: true,
	}

	game, found, err := s.selectGame(ctx, RouteYesterday, team, target)
	switch {
	case err != nil:
		page.Status = YesterdayFetchError
		page.Failed = true
		s.record(RouteYesterday, OutcomeError)
	case !found:
		s.record(RouteYesterday, OutcomeNoGame)
	default:
		outcome, ok := games.Classify(game, team)
		if !ok {
			s.unclassified(ctx, RouteYesterday, team, game)
			break
		}
		if outcome.State != games.StateFinal {
			page.Status = NoFinalResults
			s.record(RouteYesterday, outcomeLabel(outcome))
			break
		}
		page.Status = outcome.Text
		page.ShowSummary = outcome.ShowSummary
		s.record(RouteYesterday, outcomeLabel(outcome))
	}
	return page
}

// Summary builds the box score of the team's game on date. An empty or
// malformed date means the current reference day.
func (s *Service) Summary(ctx context.Context, team, date string) SummaryPage {
	team = teams.Normalize(team)
	target, err := timeutil.ParseEasternDate(date)
	if err != nil {
		target = s.dates.Today()
	}
	canonical := timeutil.CanonicalDate(target)
	page := SummaryPage{
		Team:        team,
		TeamName:    teams.Name(team),
		Date:        canonical,
		IsYesterday: canonical == timeutil.CanonicalDate(s.dates.Yesterday()),
	}

	game, found, err := s.selectGame(ctx, RouteSummary, team, target)
	switch {
	case err != nil:
		page.Message = UnableToFetchMessage(page.TeamName)
		s.record(RouteSummary, OutcomeError)
	case !found:
		page.Message = NoRecentGamesMessage(page.TeamName)
		s.record(RouteSummary, OutcomeNoGame)
	default:
		box := games.BuildBoxScore(game, team)
		page.BoxScore = &box
		page.VideoRecap = box.VideoRecap
		s.record(RouteSummary, OutcomeSummary)
	}
	return page
}

// NoRecentGamesMessage is shown on the summary page when the team did not play.
func NoRecentGamesMessage(teamName string) string {
	return "No recent games found for " + teamName
}

// UnableToFetchMessage is shown on the summary page when the provider failed.
func UnableToFetchMessage(teamName string) string {
	return "Unable to fetch game data for " + teamName + ". Please try again later."
}

// selectGame fetches the window around target and picks the team's game on that exact day.
func (s *Service) selectGame(ctx context.Context, route, team string, target time.Time) (games.Game, bool, error) {
	logger := logging.FromContext(ctx, s.logger)
	startDate, endDate := timeutil.DateWindow(target, windowBefore, windowAfter)
	targetDate := timeutil.CanonicalDate(target)

	if s.provider == nil {
		logging.Error(logger, "scores provider not configured", providers.ErrProviderUnavailable)
		return games.Game{}, false, providers.ErrProviderUnavailable
	}

	days, err := s.provider.FetchScores(ctx, startDate, endDate)
	if err != nil {
		logging.Error(logger, "failed to fetch scores", err,
			slog.String("route", route),
			slog.String(logging.FieldTeam, team),
			slog.String(logging.FieldStartDate, startDate),
			slog.String(logging.FieldEndDate, endDate),
		)
		return games.Game{}, false, err
	}

	teamGames := games.ForTeam(games.Flatten(days), team)
	game, found := games.PickForDate(teamGames, targetDate)
	logging.Debug(logger, "game selection",
		slog.String("route", route),
		slog.String(logging.FieldTeam, team),
		slog.String(logging.FieldDate, targetDate),
		slog.String(logging.FieldStartDate, startDate),
		slog.String(logging.FieldEndDate, endDate),
		slog.Int(logging.FieldCount, len(teamGames)),
		slog.Bool("selected", found),
	)
	return game, found, nil
}

func (s *Service) unclassified(ctx context.Context, route, team string, game games.Game) {
	logging.Warn(logging.FromContext(ctx, s.logger), "unrecognized game state",
		slog.String("route", route),
		slog.String(logging.FieldTeam, team),
		slog.String("state", string(game.Status.State)),
	)
	s.record(route, OutcomeUnknown)
}

func (s *Service) record(route, outcome string) {
	s.recorder.RecordOutcome(route, outcome)
}

func outcomeLabel(o games.Outcome) string {
	switch o.State {
	case games.StateFinal:
		if o.Text == games.StatusWon {
			return OutcomeWon
		}
		return OutcomeLost
	case games.StatePreview:
		return OutcomePreview
	case games.StateLive:
		return OutcomeLive
	default:
		return OutcomeUnknown
	}
}
