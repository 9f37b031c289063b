package tablefmt

import "github.com/fatih/color"

// Grid describes the border glyphs, separator policy, and row coloring used
// to draw a table. The built-in styles are [FancyGrid], [SparseGrid], and
// [AlternatingRowGrid]; a custom Grid may set any combination of fields.
// Glyph fields are single-column strings. The renderer never writes to a
// Grid, so one value can back any number of formatters.
type Grid struct {
	// ShowHeader enables the header block for this style. The formatter's
	// own header flag must also be set.
	ShowHeader bool

	// CellPadChar fills alignment space inside cells.
	CellPadChar string

	BorderTop           bool
	TopLeft             string
	TopSpan             string
	TopRight            string
	TopColDivider       string
	TopHeaderColDivider string

	HeaderDivider                 bool
	HeaderDividerLeft             string
	HeaderDividerSpan             string
	HeaderDividerRight            string
	HeaderDividerColDivider       string
	HeaderDividerHeaderColDivider string

	BorderLeft  bool
	BorderRight bool
	LeftSpan    string
	RightSpan   string

	ColDivider           bool
	ColDividerSpan       string
	HeaderColDividerSpan string

	RowDivider                 bool
	RowDividerLeft             string
	RowDividerSpan             string
	RowDividerRight            string
	RowDividerColDivider       string
	RowDividerHeaderColDivider string

	BorderBottom           bool
	BottomLeft             string
	BottomSpan             string
	BottomRight            string
	BottomColDivider       string
	BottomHeaderColDivider string

	// HeaderColor decorates header cell text.
	HeaderColor *color.Color

	// RowColor assigns a color to a body row by index; the whole interior
	// of the row's rendered lines is wrapped in it. Nil (function or
	// result) leaves the row unstyled. Width computation always excludes
	// the escape sequences this introduces.
	RowColor func(row int) *color.Color
}

// FancyGrid draws a full grid: borders on all sides, a rule between header
// and body, and a rule between every pair of rows.
//
//	╔══════╤═════╗
//	║ Name │ Age ║
//	╠══════╪═════╣
//	║ Mike │ 31  ║
//	╟──────┼─────╢
//	║ Sue  │ 22  ║
//	╚══════╧═════╝
func FancyGrid() *Grid {
	return &Grid{
		ShowHeader:  true,
		CellPadChar: " ",

		BorderTop:           true,
		TopLeft:             "╔",
		TopSpan:             "═",
		TopRight:            "╗",
		TopColDivider:       "╤",
		TopHeaderColDivider: "╦",

		HeaderDivider:                 true,
		HeaderDividerLeft:             "╠",
		HeaderDividerSpan:             "═",
		HeaderDividerRight:            "╣",
		HeaderDividerColDivider:       "╪",
		HeaderDividerHeaderColDivider: "╬",

		BorderLeft:  true,
		BorderRight: true,
		LeftSpan:    "║",
		RightSpan:   "║",

		ColDivider:           true,
		ColDividerSpan:       "│",
		HeaderColDividerSpan: "║",

		RowDivider:                 true,
		RowDividerLeft:             "╟",
		RowDividerSpan:             "─",
		RowDividerRight:            "╢",
		RowDividerColDivider:       "┼",
		RowDividerHeaderColDivider: "╫",

		BorderBottom:           true,
		BottomLeft:             "╚",
		BottomSpan:             "═",
		BottomRight:            "╝",
		BottomColDivider:       "╧",
		BottomHeaderColDivider: "╩",

		HeaderColor: boldHeader,
	}
}

// SparseGrid draws no borders or rules at all; columns are separated only by
// cell padding. Headers are suppressed. Conserves space, looks plain.
func SparseGrid() *Grid {
	return &Grid{
		CellPadChar: " ",
		HeaderColor: boldHeader,
	}
}

// AlternatingRowGrid is a FancyGrid without row dividers; instead rows are
// tinted with two alternating background colors. With no arguments the first
// row is untinted and the second uses [ColorRowBackground]; pass one or two
// colors to override. A nil color leaves its rows untinted.
func AlternatingRowGrid(backgrounds ...*color.Color) *Grid {
	primary := (*color.Color)(nil)
	alternate := ColorRowBackground
	if len(backgrounds) > 0 {
		primary = backgrounds[0]
	}
	if len(backgrounds) > 1 {
		alternate = backgrounds[1]
	}

	g := FancyGrid()
	g.RowDivider = false
	g.RowDividerLeft = ""
	g.RowDividerSpan = ""
	g.RowDividerRight = ""
	g.RowDividerColDivider = ""
	g.RowDividerHeaderColDivider = ""
	g.RowColor = func(row int) *color.Color {
		if row%2 == 0 {
			return primary
		}
		return alternate
	}
	return g
}
