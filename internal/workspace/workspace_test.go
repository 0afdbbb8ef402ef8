package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishant/yojana/pkg/config"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0644))
	}
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"main.go",
		"src/app.js",
		"src/logo.png",
		"node_modules/pkg/index.js",
		".git/config.yaml",
		".env",
		"docs/readme.md",
	)

	ws, err := New(root)
	require.NoError(t, err)

	files, err := ws.ListFiles()
	require.NoError(t, err)

	// Sorted relative paths; binaries, dotfiles and housekeeping dirs are out.
	assert.Equal(t, []string{"docs/readme.md", "main.go", "src/app.js"}, files)
}

func TestListFiles_SettingsExcludes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "src/app.go", "generated/schema.go", "src/api.pb.go")
	require.NoError(t, os.WriteFile(filepath.Join(root, config.SettingsFileName),
		[]byte("exclude:\n  - \"generated/**\"\n  - \"**/*.pb.go\"\n"), 0644))

	ws, err := New(root)
	require.NoError(t, err)

	files, err := ws.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.go"}, files)
}

func TestListFiles_ExtraExtensions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "module.tf", "main.go")
	require.NoError(t, os.WriteFile(filepath.Join(root, config.SettingsFileName),
		[]byte("extensions:\n  - tf\n"), 0644))

	ws, err := New(root)
	require.NoError(t, err)

	files, err := ws.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go", "module.tf"}, files)
}

func TestRenderTree(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "zz.go", "src/app.js", "src/deep/util.js")

	ws, err := New(root)
	require.NoError(t, err)

	tree, err := ws.RenderTree()
	require.NoError(t, err)

	want := filepath.Base(root) + "/\n" +
		"  [dir] src/\n" +
		"    [dir] deep/\n" +
		"      [file] util.js\n" +
		"    [file] app.js\n" +
		"  [file] zz.go\n"
	assert.Equal(t, want, tree)
}

func TestNew_MalformedSettings(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.SettingsFileName),
		[]byte("exclude: [unclosed"), 0644))

	_, err := New(root)
	assert.Error(t, err)
}
