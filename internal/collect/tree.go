package collect

import (
	"context"
	"strings"

	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/workspace"
)

// SentinelNoTree is returned when the directory-listing collaborator is
// unavailable or fails.
const SentinelNoTree = "No file tree available"

// treeCommand is the external directory-listing collaborator.
const treeCommand = "tree"

// Tree renders the workspace file structure by invoking the external tree
// command, excluding the named directories. Any failure — missing binary,
// non-zero exit, cancelled context — degrades to SentinelNoTree rather
// than an error.
func Tree(ctx context.Context, runner run.Runner, root workspace.Root, excludes []string) string {
	args := []string{}
	if len(excludes) > 0 {
		args = append(args, "-I", strings.Join(excludes, "|"))
	}
	args = append(args, root.Base())

	stdout, _, err := runner.RunInDir(ctx, root.Base(), treeCommand, args...)
	if err != nil || len(stdout) == 0 {
		return SentinelNoTree
	}
	return string(stdout)
}
