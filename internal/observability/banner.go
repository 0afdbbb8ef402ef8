package observability

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	colorReset = "\033[0m"
	colorCyan  = "\033[96m"
)

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return w
}

// PrintBanner centers the startup banner to the terminal width.
func PrintBanner() {
	banner := `
   __  ______  _______ _____  _____
  / / / / __ \/ / __  / __  \/ __  \
 / /_/ / /_/ / / /_/ / / / / / /_/ /
 \__, /\____/ /_____/_/ /_/\____/\_\
/____/    |___/ plan-driven code changes
`

	width := termWidth()
	for _, line := range strings.Split(banner, "\n") {
		padding := (width - len(line)) / 2
		if padding < 0 {
			padding = 0
		}
		fmt.Printf("%s%s%s%s\n", strings.Repeat(" ", padding), colorCyan, line, colorReset)
	}
}
