package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nhl-results-service/internal/app/results"
	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-results-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-results-service/internal/http/views"
	"github.com/preston-bernstein/nhl-results-service/internal/providers"
	"github.com/preston-bernstein/nhl-results-service/internal/testutil"
)

var (
	todayPuckDrop     = testutil.EasternAt("2025-02-23", 19, 0)
	yesterdayPuckDrop = testutil.EasternAt("2025-02-22", 19, 0)
)

func newHandler(t *testing.T, p providers.ScoresProvider) *Handler {
	t.Helper()
	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	logger, _ := testutil.NewBufferLogger()
	dates := results.NewReferenceDates(results.ReferenceOptions{TestMode: true})
	svc := results.NewService(p, dates, nil, logger)
	return NewHandler(svc, renderer, logger)
}

func sampleDays() []games.Day {
	return []games.Day{
		testutil.SampleDay("2025-02-22", testutil.SampleGame("TOR", "BOS", yesterdayPuckDrop, games.StateFinal, 1, 3)),
		testutil.SampleDay("2025-02-23", testutil.SampleGame("MTL", "TOR", todayPuckDrop, games.StateFinal, 2, 4)),
	}
}

func TestHealth(t *testing.T) {
	h := newHandler(t, testutil.StaticProvider{})
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newHandler(t, testutil.StaticProvider{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestIndexRendersTeams(t *testing.T) {
	h := newHandler(t, testutil.StaticProvider{})
	rr := testutil.Serve(http.HandlerFunc(h.Index), http.MethodGet, "/", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr.Body.String(), "Boston Bruins")
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %s", ct)
	}
}

func TestHomeRendersTodayResult(t *testing.T) {
	h := newHandler(t, testutil.StaticProvider{Days: sampleDays()})
	rr := testutil.Serve(http.HandlerFunc(h.Home), http.MethodGet, "/home?team=TOR", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	body := rr.Body.String()
	testutil.AssertContains(t, body, `<div class="status">Yes</div>`)
	testutil.AssertContains(t, body, "View summary")
	testutil.AssertContains(t, body, "Toronto Maple Leafs")
}

func TestEveryPageNormalizesTeam(t *testing.T) {
	h := newHandler(t, testutil.StaticProvider{Days: sampleDays()})

	tests := []struct {
		name    string
		handler http.HandlerFunc
		path    string
		want    string
	}{
		{"home unknown", h.Home, "/home?team=ZZZ", "Toronto Maple Leafs"},
		{"home missing", h.Home, "/home", "Toronto Maple Leafs"},
		{"home lower-case", h.Home, "/home?team=mtl", "Montreal Canadiens"},
		{"yesterday unknown", h.Yesterday, "/yesterday?team=ZZZ", "Toronto Maple Leafs"},
		{"yesterday lower-case", h.Yesterday, "/yesterday?team=tor", "Toronto Maple Leafs"},
		{"score unknown", h.Score, "/score?team=ZZZ&date=2025-02-23", "Toronto Maple Leafs"},
		{"score lower-case", h.Score, "/score?team=tor&date=2025-02-23", "Toronto Maple Leafs"},
	}

	for _, tt := range tests {
		rr := testutil.Serve(tt.handler, http.MethodGet, tt.path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		body := rr.Body.String()
		testutil.AssertContains(t, body, tt.want)
		testutil.AssertNotContains(t, body, "ZZZ")
	}

	rr := testutil.Serve(http.HandlerFunc(h.Yesterday), http.MethodGet, "/yesterday?team=tor", nil)
	testutil.AssertContains(t, rr.Body.String(), `<div class="status">No</div>`)
}

func TestYesterdayRendersResult(t *testing.T) {
	h := newHandler(t, testutil.StaticProvider{Days: sampleDays()})
	rr := testutil.Serve(http.HandlerFunc(h.Yesterday), http.MethodGet, "/yesterday?team=TOR", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr.Body.String(), `<div class="status">No</div>`)
	testutil.AssertContains(t, rr.Body.String(), "2025-02-22")
}

func TestFetchFailuresStillRenderOK(t *testing.T) {
	h := newHandler(t, testutil.ErrProvider{Err: errors.New("boom")})

	rr := testutil.Serve(http.HandlerFunc(h.Home), http.MethodGet, "/home?team=TOR", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr.Body.String(), results.TodayFetchError)

	rr = testutil.Serve(http.HandlerFunc(h.Yesterday), http.MethodGet, "/yesterday?team=TOR", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr.Body.String(), "Error loading yesterday&#39;s data")

	rr = testutil.Serve(http.HandlerFunc(h.Score), http.MethodGet, "/score?team=TOR&date=2025-02-23", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr.Body.String(), "Unable to fetch game data for Toronto Maple Leafs")
}

func TestScoreRendersBoxScore(t *testing.T) {
	p := &testutil.RecordingProvider{Days: sampleDays()}
	h := newHandler(t, p)
	rr := testutil.Serve(http.HandlerFunc(h.Score), http.MethodGet, "/score?team=TOR&date=2025-02-22", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	body := rr.Body.String()
	testutil.AssertContains(t, body, "Bruins</span> 3 -")
	testutil.AssertContains(t, body, "Blocked Shots")
	if calls := p.Calls(); len(calls) != 1 || calls[0].Start != "2025-02-21" || calls[0].End != "2025-02-23" {
		t.Fatalf("unexpected provider calls %+v", calls)
	}
}

func TestScoreInvalidDateFallsBackToToday(t *testing.T) {
	for _, date := range []string{"02/23/2025", "2025-02-30", "yesterday"} {
		p := &testutil.RecordingProvider{}
		logger, buf := testutil.NewBufferLogger()
		h := newHandler(t, p)
		h.logger = logger

		rr := testutil.Serve(http.HandlerFunc(h.Score), http.MethodGet, "/score?team=TOR&date="+date, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertContains(t, buf.String(), "invalid date parameter")
		if calls := p.Calls(); len(calls) != 1 || calls[0].Start != "2025-02-22" {
			t.Fatalf("expected today's window for %q, got %+v", date, calls)
		}
	}
}

func TestScoreMissingDateUsesToday(t *testing.T) {
	p := &testutil.RecordingProvider{}
	logger, buf := testutil.NewBufferLogger()
	h := newHandler(t, p)
	h.logger = logger

	rr := testutil.Serve(http.HandlerFunc(h.Score), http.MethodGet, "/score?team=TOR", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr.Body.String(), "No recent games found for Toronto Maple Leafs")
	testutil.AssertNotContains(t, buf.String(), "invalid date parameter")
	if calls := p.Calls(); len(calls) != 1 || calls[0].End != "2025-02-24" {
		t.Fatalf("unexpected provider calls %+v", calls)
	}
}

func TestNotFoundIncludesRequestID(t *testing.T) {
	h := newHandler(t, testutil.StaticProvider{})
	logger, _ := testutil.NewBufferLogger()
	handler := middleware.LoggingMiddleware(logger, nil, http.HandlerFunc(h.NotFound))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "not found" || body["requestId"] != "req-1" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestRenderWithoutRendererReturns500(t *testing.T) {
	h := newHandler(t, testutil.StaticProvider{})
	h.views = nil

	rr := testutil.Serve(http.HandlerFunc(h.Index), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}
