package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/preston-bernstein/nhl-results-service/internal/app/results"
	"github.com/preston-bernstein/nhl-results-service/internal/domain/teams"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed public
var publicFS embed.FS

// Page names accepted by Render.
const (
	PageIndex = "index"
	PageHome  = "home"
	PageScore = "score"
)

var pages = []string{PageIndex, PageHome, PageScore}

// IndexView is the landing page model.
type IndexView struct {
	Teams []teams.Entry
	Team  string
	Route string
}

// StatusView is the today/yesterday page model.
type StatusView struct {
	Page  results.StatusPage
	Teams []teams.Entry
	Team  string
	Route string
}

// ScoreView is the box-score page model.
type ScoreView struct {
	Page  results.SummaryPage
	Teams []teams.Entry
	Team  string
	Route string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page against the shared layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.templates[page] = tmpl
	}
	return r, nil
}

// Render writes the page to w. Output is buffered so a failed execution writes nothing.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// NewIndexView builds the landing page model.
func NewIndexView() IndexView {
	return IndexView{Teams: teams.All(), Route: "/home"}
}

// NewStatusView builds the today/yesterday page model.
func NewStatusView(page results.StatusPage) StatusView {
	route := "/home"
	if page.IsYesterday {
		route = "/yesterday"
	}
	return StatusView{Page: page, Teams: teams.All(), Team: page.Team, Route: route}
}

// NewScoreView builds the box-score page model.
func NewScoreView(page results.SummaryPage) ScoreView {
	return ScoreView{Page: page, Teams: teams.All(), Team: page.Team, Route: "/home"}
}

// Static serves the embedded stylesheets and scripts.
func Static() http.Handler {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		// public is embedded at build time; Sub only fails on an invalid path.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
