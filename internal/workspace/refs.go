package workspace

import (
	"regexp"
	"strings"
)

var refPattern = regexp.MustCompile(`@([\w\-./\\]+)`)

// ParseFileRefs extracts "@path" annotations from a change request, in
// order of appearance, de-duplicated. Trailing punctuation is trimmed so
// "update @src/app.js." references src/app.js.
func ParseFileRefs(input string) []string {
	matches := refPattern.FindAllStringSubmatch(input, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var refs []string
	for _, m := range matches {
		ref := strings.Trim(m[1], "./\\")
		ref = strings.ReplaceAll(ref, "\\", "/")
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs
}
