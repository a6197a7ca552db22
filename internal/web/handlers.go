package web

import (
	"net/http"
	"sort"
	"strings"

	"github.com/rvasay/atelier/internal/collect"
	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/errors"
	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/session"
	"github.com/rvasay/atelier/internal/snapshot"
	"github.com/rvasay/atelier/internal/workspace"
)

// Handlers contains HTTP route handlers for the workspace viewer.
type Handlers struct {
	root     workspace.Root
	cfg      *config.Config
	runner   run.Runner
	logs     *session.Store
	renderer *Renderer
}

// HandleSessions handles GET /sessions — list session logs, newest first.
func (h *Handlers) HandleSessions(w http.ResponseWriter, r *http.Request) {
	names := h.logs.List()
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	sessions := make([]SessionSummary, 0, len(names))
	for _, name := range names {
		summary := SessionSummary{Name: name, Day: session.Day(name)}
		if log, err := h.logs.Read(name); err == nil {
			summary.Turns = len(session.ParseTurns(log))
		}
		sessions = append(sessions, summary)
	}

	h.renderer.renderPage(w, "sessions", SessionsPageData{
		PageData: PageData{
			Title:   "Sessions",
			Version: h.renderer.version,
			Nav:     "sessions",
		},
		Sessions: sessions,
	})
}

// HandleSession handles GET /sessions/{name} — one transcript, turn by turn.
func (h *Handlers) HandleSession(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	log, err := h.logs.Read(name)
	if err != nil {
		h.renderer.renderError(w, r, errors.NewNotFound(name))
		return
	}

	turns := session.ParseTurns(log)
	views := make([]TurnView, 0, len(turns))
	for _, t := range turns {
		views = append(views, TurnView{
			Role:         strings.ToUpper(string(t.Role)),
			Time:         t.Time,
			RenderedHTML: renderMarkdown(t.Content),
		})
	}

	h.renderer.renderPage(w, "session", SessionPageData{
		PageData: PageData{
			Title:   session.Day(name),
			Version: h.renderer.version,
			Nav:     "sessions",
		},
		Name:  name,
		Day:   session.Day(name),
		Turns: views,
	})
}

// HandlePlanning handles GET /planning — list planning documents.
func (h *Handlers) HandlePlanning(w http.ResponseWriter, r *http.Request) {
	docs := collect.PlanningDocs(h.root)

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]DocSummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, DocSummary{Name: name, Chars: len(docs[name])})
	}

	h.renderer.renderPage(w, "planning", PlanningPageData{
		PageData: PageData{
			Title:   "Planning",
			Version: h.renderer.version,
			Nav:     "planning",
		},
		Docs: summaries,
	})
}

// HandlePlanningDoc handles GET /planning/{name} — one rendered document.
func (h *Handlers) HandlePlanningDoc(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	docs := collect.PlanningDocs(h.root)
	body, ok := docs[name]
	if !ok {
		h.renderer.renderError(w, r, errors.NewNotFound(name))
		return
	}

	h.renderer.renderPage(w, "doc", DocPageData{
		PageData: PageData{
			Title:   name,
			Version: h.renderer.version,
			Nav:     "planning",
		},
		Name:         name,
		RenderedHTML: renderMarkdown(body),
	})
}

// HandleContext handles GET /context — the snapshot as JSON, exactly what
// the agent would receive.
func (h *Handlers) HandleContext(w http.ResponseWriter, r *http.Request) {
	snap := snapshot.Assemble(r.Context(), h.runner, h.root, h.cfg, h.logs)
	renderJSON(w, http.StatusOK, snap)
}
