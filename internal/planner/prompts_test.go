package planner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishant/yojana/internal/workspace"
)

func TestBuildPlanPrompts(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "login.js"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("x"), 0644))

	ws, err := workspace.New(root)
	require.NoError(t, err)

	prompts, err := BuildPlanPrompts("improve the login flow", []string{"readme.md"}, ws)
	require.NoError(t, err)

	assert.Contains(t, prompts.System, "pure JSON only")
	assert.Contains(t, prompts.System, `"estimatedComplexity": "low" | "medium" | "high"`)

	assert.Contains(t, prompts.User, "## Change request\n\nimprove the login flow")
	assert.Contains(t, prompts.User, "## Intent\n\n"+IntentRefactor)
	assert.Contains(t, prompts.User, "[dir] src/")
	assert.Contains(t, prompts.User, "[file] login.js")

	// Referenced file leads the relevant list, keyword match follows.
	relevantIdx := strings.Index(prompts.User, "## Likely relevant files")
	require.GreaterOrEqual(t, relevantIdx, 0)
	section := prompts.User[relevantIdx:]
	assert.Less(t, strings.Index(section, "- readme.md"), strings.Index(section, "- src/login.js"))

	assert.True(t, strings.HasSuffix(prompts.User, "Respond with the JSON plan only."))
}

func TestBuildPlanPrompts_NoRelevantFiles(t *testing.T) {
	ws, err := workspace.New(t.TempDir())
	require.NoError(t, err)

	prompts, err := BuildPlanPrompts("polish animation timing", nil, ws)
	require.NoError(t, err)

	assert.NotContains(t, prompts.User, "## Likely relevant files")
}

func TestBuildCreatePrompts(t *testing.T) {
	step := PlanStep{
		Step:        2,
		Action:      "Create login page",
		Description: "new login page component",
		Reasoning:   "entry point for users",
	}

	prompts := buildCreatePrompts(step, "src/login.js", "app/\n  [dir] src/\n")

	assert.Contains(t, prompts.System, "Emit only the raw file content")
	assert.Contains(t, prompts.User, "Create the file src/login.js")
	assert.Contains(t, prompts.User, "Action: Create login page")
	assert.Contains(t, prompts.User, "Description: new login page component")
	assert.Contains(t, prompts.User, "Reasoning: entry point for users")
	assert.Contains(t, prompts.User, "[dir] src/")
}

func TestBuildModifyPrompts(t *testing.T) {
	step := PlanStep{Step: 1, Action: "Rename constant", Description: "rename FOO to BAR"}

	prompts := buildModifyPrompts(step, "src/app.js", "const FOO = 1;")

	assert.Contains(t, prompts.System, "Emit only the raw file content")
	assert.Contains(t, prompts.User, "Modify the file src/app.js")
	assert.Contains(t, prompts.User, "## Current content of src/app.js\n\nconst FOO = 1;")
	assert.Contains(t, prompts.User, "Not a diff, not a fragment")
}
