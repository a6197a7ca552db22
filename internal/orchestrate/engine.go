// Package orchestrate drives one chat turn end to end: gate on
// initialization, scaffold if the message asks for a new project, log the
// user turn, assemble context, invoke the agent, log the reply.
//
// Orchestration is single-threaded and synchronous. The agent invocation
// is the only blocking point; while it runs, this process performs no
// other workspace mutation. Context is best effort, read right before
// use — no snapshot isolation is attempted against an agent that writes
// files mid-call.
package orchestrate

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rvasay/atelier/internal/agent"
	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/errors"
	"github.com/rvasay/atelier/internal/index"
	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/scaffold"
	"github.com/rvasay/atelier/internal/session"
	"github.com/rvasay/atelier/internal/snapshot"
	"github.com/rvasay/atelier/internal/workspace"
)

// Result is the outcome of one orchestrated turn.
type Result struct {
	Success          bool   `json:"success"`
	Response         string `json:"response"`
	ContextUsed      bool   `json:"context_used,omitempty"`
	WorkspaceUpdated bool   `json:"workspace_updated,omitempty"`
	Error            string `json:"error,omitempty"`
	RunID            string `json:"run_id,omitempty"`
}

// Engine wires the components for one workspace. One Engine drives one
// workspace at a time.
type Engine struct {
	root   workspace.Root
	cfg    *config.Config
	agent  *agent.Agent
	logs   *session.Store
	runner run.Runner
	ledger *sql.DB // optional turn index, may be nil
	now    func() time.Time
}

// New creates an Engine. ledger may be nil to skip turn indexing.
func New(root workspace.Root, cfg *config.Config, ag *agent.Agent, logs *session.Store, runner run.Runner, ledger *sql.DB) *Engine {
	return &Engine{
		root:   root,
		cfg:    cfg,
		agent:  ag,
		logs:   logs,
		runner: runner,
		ledger: ledger,
		now:    time.Now,
	}
}

// newRunID generates a ULID identifying one orchestrated turn.
func (e *Engine) newRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(e.now()), entropy).String()
}

// Run executes one chat turn. Scaffold and transcript write failures
// propagate as errors; agent timeouts and invocation failures come back
// as a structured failure Result instead, with no assistant turn logged.
func (e *Engine) Run(ctx context.Context, message string) (*Result, error) {
	if message == "" {
		return nil, errors.NewInvalidRequest("message is required")
	}

	runID := e.newRunID()

	// Gate: scaffold a fresh workspace when the message signals a new
	// project. The generator itself never gates — the detector here is
	// the only guard against clobbering an existing project.
	if !scaffold.IsInitialized(e.root) && ShouldScaffold(message) {
		name, description := ExtractProjectInfo(message)
		if err := scaffold.Generate(e.root, name, description); err != nil {
			return nil, err
		}
	}

	if err := e.logs.AppendTurn(session.RoleUser, message); err != nil {
		return nil, err
	}
	e.recordTurn(runID, session.RoleUser, message)

	snap := snapshot.Assemble(ctx, e.runner, e.root, e.cfg, e.logs)
	prompt := BuildPrompt(snap, message)

	response, err := e.agent.Invoke(ctx, e.root, prompt)
	if err != nil {
		// Failed invocations short-circuit: no assistant turn is logged.
		if errors.Is(err, errors.ErrAgentTimeout) {
			return &Result{
				Success:  false,
				Response: "Request timed out. Please try with a simpler request.",
				Error:    "timeout",
				RunID:    runID,
			}, nil
		}
		return &Result{
			Success:  false,
			Response: fmt.Sprintf("Error executing agent: %v", err),
			Error:    err.Error(),
			RunID:    runID,
		}, nil
	}

	if err := e.logs.AppendTurn(session.RoleAssistant, response); err != nil {
		return nil, err
	}
	e.recordTurn(runID, session.RoleAssistant, response)

	return &Result{
		Success:          true,
		Response:         response,
		ContextUsed:      true,
		WorkspaceUpdated: true,
		RunID:            runID,
	}, nil
}

// recordTurn indexes a turn in the ledger, best effort. The transcript is
// the source of truth; an index failure must not fail the turn.
func (e *Engine) recordTurn(runID string, role session.Role, content string) {
	if e.ledger == nil {
		return
	}
	if err := index.RecordTurn(e.ledger, runID, e.now(), string(role), len(content)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: turn index write failed: %v\n", err)
	}
}
