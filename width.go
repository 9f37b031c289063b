package tablefmt

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// tabWidth is the number of display columns a tab stop occupies.
const tabWidth = 4

// displayWidth returns the number of terminal columns s occupies. ANSI color
// escape sequences contribute nothing, tabs advance to the next tab stop, and
// East-Asian wide runes count as 2. Malformed escape sequences are stripped
// of whatever parses and the remainder is measured as literal text.
func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(ansi.Strip(s)))
}

// expandTabs replaces each tab with enough spaces to reach the next tab stop.
// The input must already be free of escape sequences.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
