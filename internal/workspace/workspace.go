// Package workspace defines the root directory handle shared by every
// component. The three sub-trees are fixed for the lifetime of a Root;
// nothing outside this package hard-codes their names.
package workspace

import "path/filepath"

// Sub-tree names relative to the workspace root.
const (
	ProjectDirName  = "project"
	PlanningDirName = "planning"
	ChatDirName     = "chat-history"

	// StateDirName holds atelier's own files (config, turn ledger).
	StateDirName = ".atelier"
)

// Root is a handle to a workspace directory. Components receive a Root
// explicitly; there is no ambient global path.
type Root struct {
	base string
}

// New returns a Root for the given base directory. The path is cleaned
// but not required to exist.
func New(base string) Root {
	return Root{base: filepath.Clean(base)}
}

// Base returns the workspace base directory.
func (r Root) Base() string {
	return r.base
}

// ProjectDir returns the application source sub-tree.
func (r Root) ProjectDir() string {
	return filepath.Join(r.base, ProjectDirName)
}

// PlanningDir returns the planning documents sub-tree.
func (r Root) PlanningDir() string {
	return filepath.Join(r.base, PlanningDirName)
}

// ChatDir returns the session transcript sub-tree.
func (r Root) ChatDir() string {
	return filepath.Join(r.base, ChatDirName)
}

// StateDir returns atelier's own state directory.
func (r Root) StateDir() string {
	return filepath.Join(r.base, StateDirName)
}
