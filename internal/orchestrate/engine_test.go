package orchestrate

import (
	"context"
	"database/sql"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rvasay/atelier/internal/agent"
	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/index"
	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/scaffold"
	"github.com/rvasay/atelier/internal/session"
	"github.com/rvasay/atelier/internal/workspace"
)

// testEngine builds an Engine over a temp workspace with a mock runner.
func testEngine(t *testing.T, runner *run.MockRunner, ledger *sql.DB) (*Engine, workspace.Root) {
	t.Helper()
	root := workspace.New(t.TempDir())
	cfg := config.DefaultConfig()
	cfg.AgentCommand = "mock-agent"

	ag := &agent.Agent{Command: "mock-agent", Timeout: 100 * time.Millisecond, Runner: runner}
	logs := session.NewStore(root)
	return New(root, cfg, ag, logs, runner, ledger), root
}

func TestRun_ScaffoldGate(t *testing.T) {
	runner := run.NewMockRunner()
	runner.AddResponse("mock-agent", run.MockResponse{Stdout: []byte("scaffolded and ready")})
	engine, root := testEngine(t, runner, nil)

	result, err := engine.Run(context.Background(), "build a todo app")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "scaffolded and ready", result.Response)
	require.True(t, result.ContextUsed)
	require.True(t, result.WorkspaceUpdated)
	require.NotEmpty(t, result.RunID)

	// The gate scaffolded with the extracted name.
	archPath := filepath.Join(root.ProjectDir(), "ARCHITECTURE.md")
	data, err := os.ReadFile(archPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Todo App Architecture")
	require.True(t, scaffold.IsInitialized(root))

	// A follow-up on the initialized project must not re-scaffold.
	require.NoError(t, os.WriteFile(archPath, []byte("# my custom notes\n"), 0644))

	result, err = engine.Run(context.Background(), "fix the login bug")
	require.NoError(t, err)
	require.True(t, result.Success)

	data, err = os.ReadFile(archPath)
	require.NoError(t, err)
	require.Equal(t, "# my custom notes\n", string(data))
}

func TestRun_LogsBothTurns(t *testing.T) {
	runner := run.NewMockRunner()
	runner.AddResponse("mock-agent", run.MockResponse{Stdout: []byte("here is the plan")})
	engine, root := testEngine(t, runner, nil)

	_, err := engine.Run(context.Background(), "fix the header")
	require.NoError(t, err)

	log := session.NewStore(root).MostRecent()
	turns := session.ParseTurns(log)
	require.Len(t, turns, 2)
	require.Equal(t, session.RoleUser, turns[0].Role)
	require.Equal(t, "fix the header", turns[0].Content)
	require.Equal(t, session.RoleAssistant, turns[1].Role)
	require.Equal(t, "here is the plan", turns[1].Content)
}

func TestRun_PromptEmbedsContextAndMessage(t *testing.T) {
	runner := run.NewMockRunner()
	runner.AddResponse("mock-agent", run.MockResponse{Stdout: []byte("ok")})
	engine, _ := testEngine(t, runner, nil)

	_, err := engine.Run(context.Background(), "fix the footer")
	require.NoError(t, err)

	// Find the agent call (the tree collaborator is also invoked).
	var prompt string
	for _, call := range runner.Calls {
		if call.Name == "mock-agent" {
			require.Len(t, call.Args, 1)
			prompt = call.Args[0]
		}
	}
	require.Contains(t, prompt, "WORKSPACE CONTEXT:")
	require.Contains(t, prompt, `"recent_chat"`)
	require.Contains(t, prompt, "USER MESSAGE:\nfix the footer")
}

func TestRun_TimeoutShortCircuits(t *testing.T) {
	runner := run.NewMockRunner()
	runner.AddResponse("mock-agent", run.MockResponse{Block: true})
	engine, root := testEngine(t, runner, nil)

	result, err := engine.Run(context.Background(), "fix the sidebar")
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "timeout", result.Error)
	require.Contains(t, result.Response, "timed out")

	// The user turn is logged; no assistant turn follows a failed call.
	turns := session.ParseTurns(session.NewStore(root).MostRecent())
	require.Len(t, turns, 1)
	require.Equal(t, session.RoleUser, turns[0].Role)
}

func TestRun_SpawnFailureShortCircuits(t *testing.T) {
	// No mock-agent response registered: invocation cannot start.
	runner := run.NewMockRunner()
	engine, root := testEngine(t, runner, nil)

	result, err := engine.Run(context.Background(), "fix the sidebar")
	require.NoError(t, err)
	require.False(t, result.Success)
	require.NotEmpty(t, result.Error)
	require.NotEqual(t, "timeout", result.Error)
	require.Contains(t, result.Response, "Error executing agent")

	turns := session.ParseTurns(session.NewStore(root).MostRecent())
	require.Len(t, turns, 1)
}

func TestRun_NonZeroExitStillLogsAssistantTurn(t *testing.T) {
	exitErr := osexec.Command("sh", "-c", "exit 1").Run()
	if _, ok := exitErr.(*osexec.ExitError); !ok {
		t.Skipf("could not produce ExitError: %v", exitErr)
	}

	runner := run.NewMockRunner()
	runner.AddResponse("mock-agent", run.MockResponse{Stderr: []byte("lint failed"), Err: exitErr})
	engine, root := testEngine(t, runner, nil)

	result, err := engine.Run(context.Background(), "fix the build")
	require.NoError(t, err)
	// An agent that ran but exited non-zero is a completed turn, not an
	// invocation failure.
	require.True(t, result.Success)
	require.Equal(t, "Error: lint failed", result.Response)

	turns := session.ParseTurns(session.NewStore(root).MostRecent())
	require.Len(t, turns, 2)
	require.Equal(t, "Error: lint failed", turns[1].Content)
}

func TestRun_EmptyMessage(t *testing.T) {
	engine, _ := testEngine(t, run.NewMockRunner(), nil)
	_, err := engine.Run(context.Background(), "")
	require.Error(t, err)
}

func TestRun_LedgerRecordsTurns(t *testing.T) {
	ledger, err := index.Init(t.TempDir())
	require.NoError(t, err)
	defer ledger.Close()

	runner := run.NewMockRunner()
	runner.AddResponse("mock-agent", run.MockResponse{Stdout: []byte("done")})
	engine, _ := testEngine(t, runner, ledger)

	result, err := engine.Run(context.Background(), "fix the modal")
	require.NoError(t, err)

	turns, err := index.RunTurns(ledger, result.RunID)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	require.Equal(t, "user", turns[0].Role)
	require.Equal(t, len("fix the modal"), turns[0].Chars)
	require.Equal(t, "assistant", turns[1].Role)
}

func TestRun_TreeUnavailableDoesNotFailTurn(t *testing.T) {
	// Only the agent responds; the tree collaborator is missing.
	runner := run.NewMockRunner()
	runner.AddResponse("mock-agent", run.MockResponse{Stdout: []byte("ok")})
	engine, _ := testEngine(t, runner, nil)

	result, err := engine.Run(context.Background(), "fix the nav")
	require.NoError(t, err)
	require.True(t, result.Success)

	var prompt string
	for _, call := range runner.Calls {
		if call.Name == "mock-agent" {
			prompt = call.Args[0]
		}
	}
	require.True(t, strings.Contains(prompt, "No file tree available"))
}
