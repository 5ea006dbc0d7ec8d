package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/nhl-results-service/internal/http/handlers"
	"github.com/preston-bernstein/nhl-results-service/internal/http/views"
)

// NewRouter registers the page, asset and health routes.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/", handler.Index)
	r.Get("/home", handler.Home)
	r.Get("/yesterday", handler.Yesterday)
	r.Get("/score", handler.Score)
	r.Get("/health", handler.Health)

	static := views.Static()
	r.Handle("/css/*", static)
	r.Handle("/js/*", static)

	r.NotFound(handler.NotFound)
	return r
}
