package web

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/session"
	"github.com/rvasay/atelier/internal/workspace"
)

func setupTest(t *testing.T) *Handlers {
	t.Helper()
	root := workspace.New(t.TempDir())

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}

	return &Handlers{
		root:     root,
		cfg:      config.DefaultConfig(),
		runner:   run.NewMockRunner(),
		logs:     session.NewStore(root),
		renderer: NewRenderer(templateSub, "test"),
	}
}

// seedSession appends one user/assistant exchange to today's log.
func seedSession(t *testing.T, h *Handlers) string {
	t.Helper()
	if err := h.logs.AppendTurn(session.RoleUser, "add a login page"); err != nil {
		t.Fatalf("append user turn: %v", err)
	}
	if err := h.logs.AppendTurn(session.RoleAssistant, "Added `Login.tsx` with a form."); err != nil {
		t.Fatalf("append assistant turn: %v", err)
	}
	return session.FileName(time.Now())
}

func seedPlanningDoc(t *testing.T, h *Handlers, name, body string) {
	t.Helper()
	if err := os.MkdirAll(h.root.PlanningDir(), 0755); err != nil {
		t.Fatalf("mkdir planning: %v", err)
	}
	if err := os.WriteFile(filepath.Join(h.root.PlanningDir(), name), []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestHandleSessions_Empty(t *testing.T) {
	h := setupTest(t)

	rec := httptest.NewRecorder()
	h.HandleSessions(rec, httptest.NewRequest("GET", "/sessions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No chat sessions yet") {
		t.Errorf("empty state message missing")
	}
}

func TestHandleSessions_ListsLogs(t *testing.T) {
	h := setupTest(t)
	name := seedSession(t, h)

	rec := httptest.NewRecorder()
	h.HandleSessions(rec, httptest.NewRequest("GET", "/sessions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, name) {
		t.Errorf("session %q not listed", name)
	}
	if !strings.Contains(body, "<td>2</td>") {
		t.Errorf("turn count missing from listing:\n%s", body)
	}
}

func TestHandleSession_RendersTurns(t *testing.T) {
	h := setupTest(t)
	name := seedSession(t, h)

	req := httptest.NewRequest("GET", "/sessions/"+name, nil)
	req.SetPathValue("name", name)
	rec := httptest.NewRecorder()
	h.HandleSession(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "USER") || !strings.Contains(body, "ASSISTANT") {
		t.Errorf("turn roles missing")
	}
	// Markdown code span is rendered to HTML.
	if !strings.Contains(body, "<code>Login.tsx</code>") {
		t.Errorf("markdown not rendered:\n%s", body)
	}
}

func TestHandleSession_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/sessions/session-2099-01-01.md", nil)
	req.SetPathValue("name", "session-2099-01-01.md")
	rec := httptest.NewRecorder()
	h.HandleSession(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleSession_NotFound_JSON(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/sessions/nope.md", nil)
	req.SetPathValue("name", "nope.md")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleSession(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var payload map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload["error"]["code"] != "NOT_FOUND" {
		t.Errorf("error code = %v, want NOT_FOUND", payload["error"]["code"])
	}
}

func TestHandlePlanning_ListsDocs(t *testing.T) {
	h := setupTest(t)
	seedPlanningDoc(t, h, "roadmap.md", "# Roadmap\n\n- ship it\n")

	rec := httptest.NewRecorder()
	h.HandlePlanning(rec, httptest.NewRequest("GET", "/planning", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "roadmap.md") {
		t.Errorf("planning doc not listed")
	}
}

func TestHandlePlanningDoc_Rendered(t *testing.T) {
	h := setupTest(t)
	seedPlanningDoc(t, h, "roadmap.md", "# Roadmap\n\n- ship it\n")

	req := httptest.NewRequest("GET", "/planning/roadmap.md", nil)
	req.SetPathValue("name", "roadmap.md")
	rec := httptest.NewRecorder()
	h.HandlePlanningDoc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Roadmap</h1>") {
		t.Errorf("markdown heading not rendered:\n%s", rec.Body.String())
	}
}

func TestHandlePlanningDoc_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/planning/missing.md", nil)
	req.SetPathValue("name", "missing.md")
	rec := httptest.NewRecorder()
	h.HandlePlanningDoc(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleContext_JSON(t *testing.T) {
	h := setupTest(t)

	rec := httptest.NewRecorder()
	h.HandleContext(rec, httptest.NewRequest("GET", "/context", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var snap map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	for _, key := range []string{"workspace_structure", "project_files", "planning_docs", "recent_chat"} {
		if _, ok := snap[key]; !ok {
			t.Errorf("snapshot missing key %q", key)
		}
	}
}

func TestServerRoutes(t *testing.T) {
	root := workspace.New(t.TempDir())
	srv := NewServer(root, config.DefaultConfig(), "test", "127.0.0.1", 0)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusFound {
		t.Errorf("GET / status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/sessions" {
		t.Errorf("redirect = %q, want /sessions", loc)
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /sessions status = %d, want 200", rec.Code)
	}
	if csp := rec.Header().Get("Content-Security-Policy"); csp == "" {
		t.Errorf("security headers not set")
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/static/style.css", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /static/style.css status = %d, want 200", rec.Code)
	}
}

func TestRoleClass(t *testing.T) {
	if got := roleClass("ASSISTANT"); got != "turn-assistant" {
		t.Errorf("roleClass(ASSISTANT) = %q", got)
	}
	if got := roleClass("USER"); got != "turn-user" {
		t.Errorf("roleClass(USER) = %q", got)
	}
}
