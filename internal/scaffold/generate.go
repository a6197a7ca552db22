// Package scaffold materializes the initial file tree for a new project
// and decides whether a workspace has already been initialized. Generation
// is a pure stamp of the catalog: same (name, description) in, byte-identical
// tree out.
package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rvasay/atelier/internal/errors"
	"github.com/rvasay/atelier/internal/workspace"
)

// Marker artifacts checked by IsInitialized. Owned by the generator;
// the detector only reads them.
const (
	markerArchitectureDoc = "ARCHITECTURE.md"
	markerComponentsDoc   = "COMPONENTS.md"
	markerSourceDir       = "src"
)

// IsInitialized reports whether the project sub-tree has already been
// scaffolded: both marker documents and the source directory must exist.
// It is a presence check, not a content validation — a project whose files
// were later hand-edited still counts as initialized.
func IsInitialized(root workspace.Root) bool {
	project := root.ProjectDir()
	return exists(filepath.Join(project, markerArchitectureDoc)) &&
		exists(filepath.Join(project, markerComponentsDoc)) &&
		exists(filepath.Join(project, markerSourceDir))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Generate stamps the full catalog into the project sub-tree. It does not
// gate on IsInitialized: calling it on an initialized workspace overwrites
// every catalog entry unconditionally, and safety is the caller's
// responsibility. The first failed write aborts the remaining entries and
// leaves a partially written tree.
//
// Write order is fixed: directories, documentation, components (each with
// its paired style module), utilities, contexts, types, styles, then the
// component README.
func Generate(root workspace.Root, projectName, description string) error {
	project := root.ProjectDir()

	for _, dir := range catalogDirs {
		if err := os.MkdirAll(filepath.Join(project, dir), 0755); err != nil {
			return errors.NewScaffoldWrite(dir, err)
		}
	}

	archDoc, err := renderArchitectureDoc(projectName, description)
	if err != nil {
		return errors.NewInternal(err)
	}
	docs := []FileEntry{
		{Path: markerArchitectureDoc, Body: archDoc},
		{Path: markerComponentsDoc, Body: componentsDoc},
		{Path: "STYLING.md", Body: stylingDoc},
		{Path: "STATE.md", Body: stateDoc},
	}
	if err := writeEntries(project, docs); err != nil {
		return err
	}

	for _, c := range catalogComponents {
		if err := writeEntry(project, c); err != nil {
			return err
		}
		if err := writeEntry(project, styleModuleFor(c)); err != nil {
			return err
		}
	}

	for _, group := range [][]FileEntry{catalogUtils, catalogContexts, catalogTypes, catalogStyles} {
		if err := writeEntries(project, group); err != nil {
			return err
		}
	}

	return writeEntry(project, FileEntry{
		Path: "src/components/README.md",
		Body: componentsReadme,
	})
}

// styleModuleFor derives the paired style-module placeholder for a
// component entry by swapping its extension for ".module.css".
func styleModuleFor(c FileEntry) FileEntry {
	ext := filepath.Ext(c.Path)
	stem := strings.TrimSuffix(filepath.Base(c.Path), ext)
	return FileEntry{
		Path: strings.TrimSuffix(c.Path, ext) + ".module.css",
		Body: cssModulePlaceholder(stem),
	}
}

func writeEntries(project string, entries []FileEntry) error {
	for _, e := range entries {
		if err := writeEntry(project, e); err != nil {
			return err
		}
	}
	return nil
}

// writeEntry writes a single catalog entry, truncating any existing file.
func writeEntry(project string, e FileEntry) error {
	path := filepath.Join(project, e.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewScaffoldWrite(e.Path, err)
	}
	if err := os.WriteFile(path, []byte(e.Body), 0644); err != nil {
		return errors.NewScaffoldWrite(e.Path, err)
	}
	return nil
}
