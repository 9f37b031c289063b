package tablefmt

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// layout is the intermediate form of one render: per display column the
// heading lines and settings, per row the cell line-lists and resolved
// color. Transposition rewrites the layout before widths are resolved.
type layout struct {
	headings  [][]string   // column -> heading lines
	rows      [][][]string // row -> column -> cell lines
	rowColors []*color.Color
	cols      []colSettings
	exact     []int // column -> exact width, 0 = auto
	globalMax int   // cap for auto columns, 0 = none
	widths    []int // resolved by resolveWidths

	showHeader bool
	rowHeader  bool // first column is a header column (transposed labels)
}

// colSettings is a column's configuration with table defaults applied.
type colSettings struct {
	headerHAlign Alignment
	cellHAlign   Alignment
	headerVAlign VerticalAlignment
	cellVAlign   VerticalAlignment
	padding      int
	wrapMode     WrapMode
	wrapPrefix   string
}

func (f *Formatter) defaultSettings() colSettings {
	return colSettings{
		headerHAlign: f.headerHAlign,
		cellHAlign:   f.cellHAlign,
		headerVAlign: f.headerVAlign,
		cellVAlign:   f.cellVAlign,
		padding:      f.cellPadding,
		wrapMode:     WrapModeWrap,
	}
}

func (f *Formatter) settingsFor(c *Column) colSettings {
	cs := f.defaultSettings()
	if c.HeaderHAlign != AlignDefault {
		cs.headerHAlign = c.HeaderHAlign
	}
	if c.CellHAlign != AlignDefault {
		cs.cellHAlign = c.CellHAlign
	}
	if c.HeaderVAlign != VAlignDefault {
		cs.headerVAlign = c.HeaderVAlign
	}
	if c.CellVAlign != VAlignDefault {
		cs.cellVAlign = c.CellVAlign
	}
	if c.CellPadding != nil {
		cs.padding = *c.CellPadding
	}
	if c.WrapMode != WrapModeDefault {
		cs.wrapMode = c.WrapMode
	}
	cs.wrapPrefix = c.WrapPrefix
	return cs
}

func (f *Formatter) buildLayout(rows []normalizedRow) *layout {
	n := len(f.columns)
	l := &layout{
		headings:   make([][]string, n),
		rows:       make([][][]string, len(rows)),
		rowColors:  make([]*color.Color, len(rows)),
		cols:       make([]colSettings, n),
		exact:      make([]int, n),
		globalMax:  f.maxColumnWidth,
		showHeader: f.showHeader && (f.grid.ShowHeader || f.transpose),
		rowHeader:  f.rowHeader,
	}
	for i := range f.columns {
		c := &f.columns[i]
		l.cols[i] = f.settingsFor(c)
		l.exact[i] = c.Width
		l.headings[i] = splitLines(c.Name)
	}
	for r, row := range rows {
		l.rows[r] = make([][]string, n)
		for i, cell := range row.cells {
			l.rows[r][i] = splitLines(cell)
		}
		l.rowColors[r] = row.color
	}
	return l
}

// transposeLayout swaps the row and column axes: former columns become rows
// labeled by their headings in a leading right-aligned column, former rows
// become data columns. Explicit widths and the global width cap do not carry
// over, and per-row colors are dropped along with the row axis they
// described.
func (f *Formatter) transposeLayout(l *layout) *layout {
	labels := f.showHeader
	numCols := len(l.rows)
	if labels {
		numCols++
	}

	t := &layout{
		headings:   make([][]string, numCols),
		rowColors:  make([]*color.Color, 0, len(l.headings)),
		cols:       make([]colSettings, numCols),
		exact:      make([]int, numCols),
		showHeader: f.rowHeader,
		rowHeader:  labels,
	}
	for i := range t.cols {
		t.cols[i] = f.defaultSettings()
		t.headings[i] = []string{""}
	}
	if labels {
		t.cols[0].cellHAlign = AlignRight
	}
	if labels && !f.rowHeader {
		for i := range t.headings {
			t.headings[i] = []string{strconv.Itoa(i)}
		}
	}

	for c := range l.headings {
		row := make([][]string, 0, numCols)
		if labels {
			row = append(row, l.headings[c])
		}
		for r := range l.rows {
			row = append(row, l.rows[r][c])
		}
		if c == 0 && f.rowHeader {
			for i := range row {
				if i < len(t.headings) {
					t.headings[i] = row[i]
				}
			}
			continue
		}
		t.rows = append(t.rows, row)
		t.rowColors = append(t.rowColors, nil)
	}
	return t
}

// resolveWidths computes each column's final display width: the exact width
// when configured, otherwise the widest heading (when shown) or cell line,
// capped by the global maximum, with a floor of one column.
func (l *layout) resolveWidths() {
	l.widths = make([]int, len(l.cols))
	for i := range l.cols {
		if l.exact[i] > 0 {
			l.widths[i] = l.exact[i]
			continue
		}
		w := 0
		if l.showHeader {
			w = linesWidth(l.headings[i])
		}
		for r := range l.rows {
			if cw := linesWidth(l.rows[r][i]); cw > w {
				w = cw
			}
		}
		if l.globalMax > 0 && w > l.globalMax {
			w = l.globalMax
		}
		if w < 1 {
			w = 1
		}
		l.widths[i] = w
	}
}

func linesWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := displayWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// wrapAll re-wraps headings and cells that exceed their resolved column
// width and returns the header block height and per-row heights. Headings
// always word-wrap; cells follow their column's wrap mode.
func (l *layout) wrapAll() (headerHeight int, rowHeights []int) {
	headerHeight = 1
	if l.showHeader {
		for i := range l.headings {
			l.headings[i] = wrapLines(l.headings[i], l.widths[i], WrapModeWrap, "")
			if len(l.headings[i]) > headerHeight {
				headerHeight = len(l.headings[i])
			}
		}
	}
	rowHeights = make([]int, len(l.rows))
	for r := range l.rows {
		height := 1
		for i := range l.rows[r] {
			cs := &l.cols[i]
			l.rows[r][i] = wrapLines(l.rows[r][i], l.widths[i], cs.wrapMode, cs.wrapPrefix)
			if len(l.rows[r][i]) > height {
				height = len(l.rows[r][i])
			}
		}
		rowHeights[r] = height
	}
	return headerHeight, rowHeights
}

func (f *Formatter) render(l *layout) string {
	g := f.grid
	l.resolveWidths()
	headerHeight, rowHeights := l.wrapAll()

	var sb strings.Builder
	if g.BorderTop {
		writeRule(&sb, g, l, g.TopLeft, g.TopSpan, g.TopColDivider, g.TopHeaderColDivider, g.TopRight)
	}
	if l.showHeader {
		writeHeaderBlock(&sb, g, l, headerHeight)
		if g.HeaderDivider {
			writeRule(&sb, g, l, g.HeaderDividerLeft, g.HeaderDividerSpan,
				g.HeaderDividerColDivider, g.HeaderDividerHeaderColDivider, g.HeaderDividerRight)
		}
	}
	for r := range l.rows {
		if r > 0 && g.RowDivider {
			writeRule(&sb, g, l, g.RowDividerLeft, g.RowDividerSpan,
				g.RowDividerColDivider, g.RowDividerHeaderColDivider, g.RowDividerRight)
		}
		writeRowBlock(&sb, g, l, r, rowHeights[r])
	}
	if g.BorderBottom {
		writeRule(&sb, g, l, g.BottomLeft, g.BottomSpan, g.BottomColDivider, g.BottomHeaderColDivider, g.BottomRight)
	}
	return sb.String()
}

// writeRule draws one horizontal rule: left corner, spans sized to each
// column plus its padding, dividers between columns, right corner.
func writeRule(sb *strings.Builder, g *Grid, l *layout, left, span, mid, headerMid, right string) {
	if g.BorderLeft {
		sb.WriteString(left)
	}
	for i, w := range l.widths {
		if i > 0 && g.ColDivider {
			if i == 1 && l.rowHeader {
				sb.WriteString(headerMid)
			} else {
				sb.WriteString(mid)
			}
		}
		sb.WriteString(strings.Repeat(span, w+2*l.cols[i].padding))
	}
	if g.BorderRight {
		sb.WriteString(right)
	}
	sb.WriteByte('\n')
}

func writeHeaderBlock(sb *strings.Builder, g *Grid, l *layout, height int) {
	for line := 0; line < height; line++ {
		var inner strings.Builder
		for i := range l.widths {
			if i > 0 && g.ColDivider {
				if i == 1 && l.rowHeader {
					inner.WriteString(g.HeaderColDividerSpan)
				} else {
					inner.WriteString(g.ColDividerSpan)
				}
			}
			cs := &l.cols[i]
			pad := strings.Repeat(" ", cs.padding)
			text := mappedLine(l.headings[i], line, height, cs.headerVAlign)
			aligned := alignCell(text, l.widths[i], cs.headerHAlign, g.CellPadChar)
			if text != "" {
				aligned = colorize(g.HeaderColor, aligned)
			}
			inner.WriteString(pad)
			inner.WriteString(aligned)
			inner.WriteString(pad)
		}
		writeSpanLine(sb, g, inner.String())
	}
}

func writeRowBlock(sb *strings.Builder, g *Grid, l *layout, row, height int) {
	fg := l.rowColors[row]
	var bg *color.Color
	if g.RowColor != nil {
		bg = g.RowColor(row)
	}
	for line := 0; line < height; line++ {
		var inner strings.Builder
		for i := range l.widths {
			if i > 0 && g.ColDivider {
				if i == 1 && l.rowHeader {
					inner.WriteString(g.HeaderColDividerSpan)
				} else {
					inner.WriteString(g.ColDividerSpan)
				}
			}
			cs := &l.cols[i]
			pad := strings.Repeat(" ", cs.padding)
			text := mappedLine(l.rows[row][i], line, height, cs.cellVAlign)
			aligned := alignCell(text, l.widths[i], cs.cellHAlign, g.CellPadChar)
			if fg != nil && strings.TrimSpace(text) != "" {
				aligned = fg.Sprint(aligned)
			}
			inner.WriteString(pad)
			inner.WriteString(aligned)
			inner.WriteString(pad)
		}
		writeSpanLine(sb, g, colorize(bg, inner.String()))
	}
}

func writeSpanLine(sb *strings.Builder, g *Grid, inner string) {
	if g.BorderLeft {
		sb.WriteString(g.LeftSpan)
	}
	sb.WriteString(inner)
	if g.BorderRight {
		sb.WriteString(g.RightSpan)
	}
	sb.WriteByte('\n')
}

// mappedLine picks the cell sub-line for a physical output line, padding
// short cells per their vertical alignment: AlignTop pads below, AlignBottom
// pads above.
func mappedLine(lines []string, line, total int, valign VerticalAlignment) string {
	idx := line
	if len(lines) != total && valign == AlignBottom {
		idx = line - (total - len(lines))
	}
	if idx >= 0 && idx < len(lines) {
		return lines[idx]
	}
	return ""
}

// alignCell pads s to width display columns. Centering biases the extra
// column to the right on odd remainders.
func alignCell(s string, width int, align Alignment, padChar string) string {
	if padChar == "" {
		padChar = " "
	}
	pad := width - displayWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(padChar, pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(padChar, left) + s + strings.Repeat(padChar, pad-left)
	default:
		return s + strings.Repeat(padChar, pad)
	}
}
