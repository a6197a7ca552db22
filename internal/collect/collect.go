// Package collect reads bounded sets of workspace files into context
// snapshots. Every read path is tolerant: a missing file is simply absent
// from the result and an undecodable one is replaced with a sentinel
// string. Errors never escape this package.
package collect

import (
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/rvasay/atelier/internal/workspace"
)

// Sentinel values substituted for content that could not be obtained.
const (
	SentinelBinaryFile = "[Binary or unreadable file]"
	SentinelUnreadable = "[Unreadable file]"
)

// planningExt is the fixed extension filter for planning documents.
const planningExt = ".md"

// ProjectFiles reads the allow-listed key files from the project sub-tree.
// Paths that do not exist are omitted; paths that exist but are not valid
// UTF-8 map to SentinelBinaryFile.
func ProjectFiles(root workspace.Root, allowList []string) map[string]string {
	files := make(map[string]string)
	for _, rel := range allowList {
		data, err := os.ReadFile(filepath.Join(root.ProjectDir(), rel))
		if err != nil {
			continue
		}
		if !utf8.Valid(data) {
			files[rel] = SentinelBinaryFile
			continue
		}
		files[rel] = string(data)
	}
	return files
}

// PlanningDocs enumerates every markdown file directly inside the planning
// sub-tree (non-recursive) and reads it with the same tolerant policy.
// A missing planning directory yields an empty map.
func PlanningDocs(root workspace.Root) map[string]string {
	docs := make(map[string]string)

	entries, err := os.ReadDir(root.PlanningDir())
	if err != nil {
		return docs
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != planningExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(root.PlanningDir(), name))
		if err != nil || !utf8.Valid(data) {
			docs[name] = SentinelUnreadable
			continue
		}
		docs[name] = string(data)
	}
	return docs
}
