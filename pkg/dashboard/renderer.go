package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/porter-dev/ams-assistant/api/server/types"
)

//go:embed templates
var templateFS embed.FS

const timestampLayout = "2006-01-02 15:04:05 MST"

// NoticeTicketNotFound is shown when a lookup has no match.
const NoticeTicketNotFound = "Ticket not found. Please try a different ID or description."

// Page is everything a single render of the dashboard shows.
type Page struct {
	SessionID string
	Query     string
	Notice    string

	Analysis     *types.TicketAnalysis
	HealthReport *types.HealthReport
	Alerts       []*types.LogAlert
	Reminders    []*types.Reminder
}

type pageData struct {
	*Page
	Recommendation template.HTML
}

type RendererOptions struct {
	// Now is used for relative timestamps.
	Now func() time.Time
}

type Renderer struct {
	tmpl     *template.Template
	markdown *Markdown
	now      func() time.Time
}

func NewRenderer(opts RendererOptions) (*Renderer, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r := &Renderer{
		markdown: NewMarkdown(),
		now:      opts.Now,
	}

	tmpl, err := template.New("dashboard.html").Funcs(template.FuncMap{
		"absolute": func(t time.Time) string {
			return t.Format(timestampLayout)
		},
		"relative": func(t time.Time) string {
			return humanize.RelTime(t, r.now(), "ago", "from now")
		},
		"joinActions": func(inc *types.PastIncident) string {
			return inc.JoinedActions()
		},
	}).ParseFS(templateFS, "templates/dashboard.html")

	if err != nil {
		return nil, fmt.Errorf("could not parse dashboard template: %w", err)
	}

	r.tmpl = tmpl

	return r, nil
}

// Render writes the full dashboard page for p to w.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	data := &pageData{Page: p}

	if p.Analysis != nil && p.Analysis.Recommendation != "" {
		rec, err := r.markdown.Render(p.Analysis.Recommendation)

		if err != nil {
			return fmt.Errorf("could not render recommendation: %w", err)
		}

		data.Recommendation = rec
	}

	return r.tmpl.Execute(w, data)
}
