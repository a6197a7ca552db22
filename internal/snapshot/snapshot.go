// Package snapshot assembles the context payload handed to the external
// agent on each turn. Assembly is pure composition of the collector and
// the session store: it performs no I/O of its own, never fails, and
// carries its collaborators' sentinels through instead of errors.
//
// A Snapshot is built fresh right before use and never persisted; if the
// agent mutates the workspace concurrently, the next assembly simply
// observes whatever state exists at read time.
package snapshot

import (
	"context"
	"encoding/json"

	"github.com/rvasay/atelier/internal/collect"
	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/session"
	"github.com/rvasay/atelier/internal/workspace"
)

// Snapshot is the aggregated view of workspace state.
type Snapshot struct {
	WorkspaceStructure string            `json:"workspace_structure"`
	ProjectFiles       map[string]string `json:"project_files"`
	PlanningDocs       map[string]string `json:"planning_docs"`
	RecentChat         string            `json:"recent_chat"`
}

// Assemble builds a Snapshot from the current workspace state.
func Assemble(ctx context.Context, runner run.Runner, root workspace.Root, cfg *config.Config, logs *session.Store) *Snapshot {
	return &Snapshot{
		WorkspaceStructure: collect.Tree(ctx, runner, root, cfg.TreeExcludes),
		ProjectFiles:       collect.ProjectFiles(root, cfg.ProjectKeyFiles),
		PlanningDocs:       collect.PlanningDocs(root),
		RecentChat:         logs.MostRecent(),
	}
}

// JSON renders the snapshot as indented JSON for embedding in prompts.
func (s *Snapshot) JSON() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// Maps of strings cannot fail to marshal; keep the signature clean.
		return "{}"
	}
	return string(data)
}
