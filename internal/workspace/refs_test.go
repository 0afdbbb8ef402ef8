package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileRefs(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"single ref",
			"update @src/app.js to use hooks",
			[]string{"src/app.js"},
		},
		{
			"trailing punctuation trimmed",
			"look at @docs/readme.md.",
			[]string{"docs/readme.md"},
		},
		{
			"order preserved, duplicates dropped",
			"merge @b.go into @a.go then clean up @b.go",
			[]string{"b.go", "a.go"},
		},
		{
			"leading dot-slash stripped",
			"check @./src/main.go",
			[]string{"src/main.go"},
		},
		{
			"backslashes normalized",
			`open @src\win\path.go`,
			[]string{"src/win/path.go"},
		},
		{
			"no refs",
			"just make it faster",
			nil,
		},
		{
			"bare at sign",
			"email me @ noon",
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseFileRefs(tc.input))
		})
	}
}
