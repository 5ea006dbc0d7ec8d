package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/nhl-results-service/internal/app/results"
	"github.com/preston-bernstein/nhl-results-service/internal/http/views"
	"github.com/preston-bernstein/nhl-results-service/internal/logging"
)

// scoreQuery holds the /score query parameters.
type scoreQuery struct {
	Team string
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

// Handler wires HTTP routes to the results service.
type Handler struct {
	svc      *results.Service
	views    *views.Renderer
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *results.Service, renderer *views.Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		views:    renderer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Index renders the team picker.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.render(w, r, views.PageIndex, views.NewIndexView())
}

// Home renders today's result for the requested team.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	page := h.svc.Today(r.Context(), teamParam(r))
	h.render(w, r, views.PageHome, views.NewStatusView(page))
}

// Yesterday renders yesterday's result for the requested team.
func (h *Handler) Yesterday(w nethttp.ResponseWriter, r *nethttp.Request) {
	page := h.svc.Yesterday(r.Context(), teamParam(r))
	h.render(w, r, views.PageHome, views.NewStatusView(page))
}

// Score renders the box score of the team's game on the requested date.
// A missing or malformed date falls back to the current day.
func (h *Handler) Score(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := scoreQuery{
		Team: teamParam(r),
		Date: strings.TrimSpace(r.URL.Query().Get("date")),
	}
	if err := h.validate.Struct(q); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "invalid date parameter, using today",
			slog.String(logging.FieldDate, q.Date),
			"error", err,
		)
		q.Date = ""
	}

	page := h.svc.Summary(r.Context(), q.Team, q.Date)
	h.render(w, r, views.PageScore, views.NewScoreView(page))
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

func teamParam(r *nethttp.Request) string {
	return r.URL.Query().Get("team")
}
