package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupWorkspace creates a temp workspace whose config points the agent
// at /bin/echo, so chat turns complete without a real agent installed.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	stateDir := filepath.Join(dir, ".atelier")
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		t.Fatalf("mkdir state dir: %v", err)
	}
	cfgJSON := `{"agent_command": "echo", "agent_timeout_secs": 5}`
	if err := os.WriteFile(filepath.Join(stateDir, "config.json"), []byte(cfgJSON), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

// captureStdout runs fn while capturing everything written to stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	return buf.String(), runErr
}

func TestCLIChatRequiresMessage(t *testing.T) {
	dir := setupWorkspace(t)
	app := newCLIApp()

	err := app.Run([]string{"atelier", "chat", "--root", dir})
	if err == nil {
		t.Fatal("expected error for chat without message")
	}
	if !strings.Contains(err.Error(), "usage") {
		t.Errorf("error = %q, want usage message", err)
	}
}

func TestCLIChat(t *testing.T) {
	dir := setupWorkspace(t)
	app := newCLIApp()

	out, err := captureStdout(t, func() error {
		return app.Run([]string{"atelier", "chat", "--root", dir, "hello", "there"})
	})
	if err != nil {
		t.Fatalf("chat command failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if result["success"] != true {
		t.Errorf("success = %v, want true", result["success"])
	}
	// The echo agent prints back the whole prompt, joined args included.
	if resp, _ := result["response"].(string); !strings.Contains(resp, "hello there") {
		t.Errorf("response missing message: %q", resp)
	}
	if result["context_used"] != true {
		t.Errorf("context_used = %v, want true", result["context_used"])
	}

	// The exchange landed in today's session log.
	entries, err := os.ReadDir(filepath.Join(dir, "chat-history"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("chat-history entries = %v, err = %v", entries, err)
	}
}

func TestCLIInit(t *testing.T) {
	dir := setupWorkspace(t)
	app := newCLIApp()

	out, err := captureStdout(t, func() error {
		return app.Run([]string{"atelier", "init", "--root", dir, "--description", "A todo tracker.", "Todo", "App"})
	})
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if result["initialized"] != true {
		t.Errorf("initialized = %v, want true", result["initialized"])
	}

	arch, err := os.ReadFile(filepath.Join(dir, "project", "ARCHITECTURE.md"))
	if err != nil {
		t.Fatalf("ARCHITECTURE.md not written: %v", err)
	}
	if !strings.Contains(string(arch), "Todo App") || !strings.Contains(string(arch), "A todo tracker.") {
		t.Errorf("ARCHITECTURE.md missing name or description:\n%s", arch)
	}
}

func TestCLIInitRefusesReinit(t *testing.T) {
	dir := setupWorkspace(t)
	app := newCLIApp()

	_, err := captureStdout(t, func() error {
		return app.Run([]string{"atelier", "init", "--root", dir, "First"})
	})
	if err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	_, err = captureStdout(t, func() error {
		return app.Run([]string{"atelier", "init", "--root", dir, "Second"})
	})
	if err == nil {
		t.Fatal("expected error on re-init without --force")
	}

	_, err = captureStdout(t, func() error {
		return app.Run([]string{"atelier", "init", "--root", dir, "--force", "Second", "Try"})
	})
	if err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
	arch, _ := os.ReadFile(filepath.Join(dir, "project", "ARCHITECTURE.md"))
	if !strings.Contains(string(arch), "Second Try") {
		t.Errorf("forced init did not regenerate ARCHITECTURE.md")
	}
}

func TestCLIContext(t *testing.T) {
	dir := setupWorkspace(t)
	app := newCLIApp()

	out, err := captureStdout(t, func() error {
		return app.Run([]string{"atelier", "context", "--root", dir})
	})
	if err != nil {
		t.Fatalf("context command failed: %v", err)
	}

	var snap map[string]any
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	for _, key := range []string{"workspace_structure", "project_files", "planning_docs", "recent_chat"} {
		if _, ok := snap[key]; !ok {
			t.Errorf("snapshot missing key %q", key)
		}
	}
	if snap["recent_chat"] != "No chat history yet" {
		t.Errorf("recent_chat = %v, want empty-history sentinel", snap["recent_chat"])
	}
}

func TestCLIHistory(t *testing.T) {
	dir := setupWorkspace(t)
	app := newCLIApp()

	_, err := captureStdout(t, func() error {
		return app.Run([]string{"atelier", "chat", "--root", dir, "hello"})
	})
	if err != nil {
		t.Fatalf("chat command failed: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return app.Run([]string{"atelier", "history", "--root", dir, "--limit", "5"})
	})
	if err != nil {
		t.Fatalf("history command failed: %v", err)
	}

	var payload struct {
		Turns []struct {
			Role string `json:"role"`
		} `json:"turns"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if len(payload.Turns) != 2 {
		t.Fatalf("history has %d turns, want 2", len(payload.Turns))
	}
	roles := map[string]bool{}
	for _, turn := range payload.Turns {
		roles[turn.Role] = true
	}
	if !roles["user"] || !roles["assistant"] {
		t.Errorf("history roles = %v, want user and assistant", roles)
	}
}

func TestIsCLIMode(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"atelier"}, false},
		{[]string{"atelier", "chat", "hi"}, true},
		{[]string{"atelier", "init"}, true},
		{[]string{"atelier", "--help"}, true},
		{[]string{"atelier", "--version"}, true},
		{[]string{"atelier", "bogus"}, false},
	}
	for _, tt := range tests {
		os.Args = tt.args
		if got := isCLIMode(); got != tt.want {
			t.Errorf("isCLIMode(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
