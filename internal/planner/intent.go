package planner

import "strings"

// Intent labels summarizing the nature of a requested change.
const (
	IntentCreate   = "Create/Add new functionality"
	IntentModify   = "Modify existing functionality"
	IntentFix      = "Fix bugs or errors"
	IntentRemove   = "Remove/Delete functionality"
	IntentRefactor = "Refactor/Improve code"
	IntentTest     = "Add or modify tests"
	IntentDocs     = "Add or update documentation"
	IntentGeneral  = "General code changes"
)

// intentRules are checked in order and the first group with a hit wins.
// The order is a contract: "add a fix for X" classifies as create because
// the create group is checked before the fix group. Reordering silently
// changes classification for overlapping inputs.
var intentRules = []struct {
	label    string
	triggers []string
}{
	{IntentCreate, []string{"create", "add", "new", "implement", "build", "make"}},
	{IntentModify, []string{"update", "change", "modify", "edit", "adjust", "rename"}},
	{IntentFix, []string{"fix", "bug", "error", "issue", "problem", "broken", "crash"}},
	{IntentRemove, []string{"remove", "delete", "drop", "eliminate"}},
	{IntentRefactor, []string{"refactor", "improve", "optimize", "clean", "restructure", "simplify"}},
	{IntentTest, []string{"test", "spec", "coverage"}},
	{IntentDocs, []string{"document", "doc", "readme", "comment"}},
}

// ClassifyIntent assigns a coarse category to a change request via
// case-insensitive substring matching against the ordered trigger groups.
func ClassifyIntent(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.label
			}
		}
	}
	return IntentGeneral
}
