// Package mcp exposes the workspace orchestrator over the Model Context
// Protocol. Each tool maps to one workspace operation; the server runs
// over stdio and serves exactly one workspace, fixed at startup.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/workspace"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"workspace_chat": {
		def:     chatToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChat },
	},
	"workspace_context": {
		def:     contextToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleContext },
	},
	"workspace_scaffold": {
		def:     scaffoldToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleScaffold },
	},
	"workspace_history": {
		def:     historyToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHistory },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func chatToolDef() mcp.Tool {
	return mcp.NewTool("workspace_chat",
		mcp.WithDescription(
			"Send a message to the coding agent with full workspace context. "+
				"Scaffolds a new project first when the message asks to build one "+
				"and the workspace is empty. The exchange is appended to the "+
				"daily session log.",
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The user message to relay to the agent"),
		),
	)
}

func contextToolDef() mcp.Tool {
	return mcp.NewTool("workspace_context",
		mcp.WithDescription(
			"Assemble and return the workspace context snapshot: file tree, "+
				"key project files, planning documents, and the most recent "+
				"chat session.",
		),
	)
}

func scaffoldToolDef() mcp.Tool {
	return mcp.NewTool("workspace_scaffold",
		mcp.WithDescription(
			"Generate the React/TypeScript project skeleton in the workspace: "+
				"directory layout, planning documents, and starter components. "+
				"Fails if the project is already initialized unless force is set.",
		),
		mcp.WithString("name",
			mcp.Description("Project name used in planning documents"),
		),
		mcp.WithString("description",
			mcp.Description("Short project description for ARCHITECTURE.md"),
		),
		mcp.WithBoolean("force",
			mcp.Description("Overwrite an already-initialized project"),
		),
	)
}

func historyToolDef() mcp.Tool {
	return mcp.NewTool("workspace_history",
		mcp.WithDescription(
			"List recent turns from the turn ledger, newest first.",
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum turns to return (default 20)"),
		),
	)
}

// NewServer creates a new MCP server with workspace tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(root workspace.Root, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"atelier",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(root, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(root workspace.Root, cfg *config.Config, version string) error {
	s := NewServer(root, cfg, version)
	return server.ServeStdio(s)
}
