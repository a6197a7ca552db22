package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rvasay/atelier/internal/agent"
	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/errors"
	"github.com/rvasay/atelier/internal/index"
	"github.com/rvasay/atelier/internal/orchestrate"
	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/scaffold"
	"github.com/rvasay/atelier/internal/session"
	"github.com/rvasay/atelier/internal/snapshot"
	"github.com/rvasay/atelier/internal/workspace"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	root   workspace.Root
	cfg    *config.Config
	runner run.Runner
	ledger *sql.DB // may be nil; chat degrades, history errors
}

// NewHandlers creates a new Handlers instance. The turn ledger is opened
// best effort; a broken ledger must not keep the server from starting.
func NewHandlers(root workspace.Root, cfg *config.Config) *Handlers {
	ledger, err := index.Init(root.StateDir())
	if err != nil {
		ledger = nil
	}
	return &Handlers{
		root:   root,
		cfg:    cfg,
		runner: run.NewOSRunner(),
		ledger: ledger,
	}
}

// Request types for each tool

// ChatRequest represents the arguments for chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ScaffoldRequest represents the arguments for scaffold.
type ScaffoldRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Force       bool   `json:"force,omitempty"`
}

// HistoryRequest represents the arguments for history.
type HistoryRequest struct {
	Limit int `json:"limit,omitempty"`
}

// Handler implementations

// HandleChat handles the workspace_chat tool call.
func (h *Handlers) HandleChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ChatRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	ag := agent.New(h.cfg.AgentCommand, time.Duration(h.cfg.AgentTimeoutSecs)*time.Second)
	ag.Runner = h.runner
	engine := orchestrate.New(h.root, h.cfg, ag, session.NewStore(h.root), h.runner, h.ledger)

	result, err := engine.Run(ctx, input.Message)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContext handles the workspace_context tool call.
func (h *Handlers) HandleContext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := snapshot.Assemble(ctx, h.runner, h.root, h.cfg, session.NewStore(h.root))
	return successResult(snap)
}

// HandleScaffold handles the workspace_scaffold tool call.
func (h *Handlers) HandleScaffold(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ScaffoldRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	if scaffold.IsInitialized(h.root) && !input.Force {
		return errorResult(errors.NewAlreadyInitialized(h.root.Base())), nil
	}

	name := input.Name
	if name == "" {
		name = orchestrate.DefaultProjectName
	}

	if err := scaffold.Generate(h.root, name, input.Description); err != nil {
		return errorResult(err), nil
	}

	return successResult(map[string]any{
		"initialized": true,
		"project":     name,
	})
}

// HandleHistory handles the workspace_history tool call.
func (h *Handlers) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HistoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	if h.ledger == nil {
		return errorResult(errors.NewNotFound("turn ledger")), nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	turns, err := index.RecentTurns(h.ledger, limit)
	if err != nil {
		return errorResult(errors.NewInternal(err)), nil
	}

	return successResult(map[string]any{"turns": turns})
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if aerr, ok := err.(*errors.AtelierError); ok {
		errorObj := map[string]any{
			"code":    aerr.Code,
			"message": aerr.Message,
			"status":  aerr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or subprocess errors
		if aerr.Code != errors.ErrInternal && aerr.Details != nil {
			errorObj["details"] = aerr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
