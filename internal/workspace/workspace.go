// Package workspace enumerates and renders the files the planner is allowed
// to see. It is the only component that walks the tree; everything else
// consumes its listing.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nishant/yojana/pkg/config"
)

// skippedDirs are housekeeping directories never shown to the model:
// dependency caches, build output, version-control metadata.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"target":       true,
	"coverage":     true,
	"__pycache__":  true,
	".git":         true,
}

// sourceExtensions is the built-in allowlist of file kinds worth planning
// over. Project settings can extend it.
var sourceExtensions = map[string]bool{
	".go": true, ".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".py": true, ".rb": true, ".java": true, ".kt": true, ".scala": true,
	".c": true, ".h": true, ".cpp": true, ".hpp": true, ".cs": true,
	".rs": true, ".php": true, ".swift": true, ".sh": true,
	".html": true, ".css": true, ".scss": true, ".vue": true, ".svelte": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true,
	".sql": true, ".proto": true, ".md": true, ".txt": true,
}

// Workspace provides file listing and tree rendering over a root directory.
type Workspace struct {
	Root     string
	settings *config.Settings
}

// New resolves the root and loads its optional project settings.
func New(root string) (*Workspace, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve workspace root: %w", err)
	}
	settings, err := config.LoadSettings(absRoot)
	if err != nil {
		return nil, err
	}
	return &Workspace{Root: absRoot, settings: settings}, nil
}

// Settings exposes the loaded project settings.
func (w *Workspace) Settings() *config.Settings {
	return w.settings
}

// ListFiles returns the relative slash-separated paths of every source-like
// file under the root, sorted. Dot-prefixed entries, housekeeping
// directories, and project-settings excludes are skipped.
func (w *Workspace) ListFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(w.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == w.Root {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") || skippedDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !w.isSourceFile(name) {
			return nil
		}
		rel, err := filepath.Rel(w.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if w.isExcluded(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk workspace: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// RenderTree returns an indented textual tree of the workspace, directories
// first at each level, using the same skip rules as ListFiles.
func (w *Workspace) RenderTree() (string, error) {
	var sb strings.Builder
	sb.WriteString(filepath.Base(w.Root) + "/\n")
	if err := w.renderDir(&sb, w.Root, "", 1); err != nil {
		return "", fmt.Errorf("failed to render tree: %w", err)
	}
	return sb.String(), nil
}

func (w *Workspace) renderDir(sb *strings.Builder, dir, relBase string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	indent := strings.Repeat("  ", depth)

	// Directories first, each group alphabetical. ReadDir already sorts by
	// name, so one pass per kind keeps the order stable.
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || skippedDirs[name] {
			continue
		}
		rel := joinRel(relBase, name)
		if w.isExcluded(rel) {
			continue
		}
		fmt.Fprintf(sb, "%s[dir] %s/\n", indent, name)
		if err := w.renderDir(sb, filepath.Join(dir, name), rel, depth+1); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !w.isSourceFile(name) {
			continue
		}
		rel := joinRel(relBase, name)
		if w.isExcluded(rel) {
			continue
		}
		fmt.Fprintf(sb, "%s[file] %s\n", indent, name)
	}

	return nil
}

func (w *Workspace) isSourceFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if sourceExtensions[ext] {
		return true
	}
	for _, extra := range w.settings.Extensions {
		if !strings.HasPrefix(extra, ".") {
			extra = "." + extra
		}
		if strings.EqualFold(ext, extra) {
			return true
		}
	}
	return false
}

func (w *Workspace) isExcluded(rel string) bool {
	for _, pattern := range w.settings.Exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func joinRel(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}
