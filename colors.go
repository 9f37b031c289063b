package tablefmt

import "github.com/fatih/color"

// Ready-made colors for row taggers and grid configuration. Any *color.Color
// works; these cover the common cases.
var (
	ColorWhite  = color.New(color.FgWhite)
	ColorYellow = color.New(color.FgHiYellow)
	ColorRed    = color.New(color.FgHiRed)
	ColorGreen  = color.New(color.FgHiGreen)
	ColorBlue   = color.New(color.FgHiBlue)

	// ColorRowBackground is the default alternate-row background.
	ColorRowBackground = color.New(color.BgHiBlack)

	boldHeader = color.New(color.Bold)
)

// RowTagger assigns a text color to a row based on the source entry. A nil
// result leaves the row uncolored. Called once per row, synchronously; a
// panic inside the tagger propagates to the render caller.
type RowTagger func(entry any) *color.Color

func colorize(c *color.Color, s string) string {
	if c == nil || s == "" {
		return s
	}
	return c.Sprint(s)
}
