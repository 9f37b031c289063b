package tablefmt

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"reflect"
	"strconv"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidConfig reports a bad table or column configuration:
	// negative widths or padding, unknown alignment or wrap-mode values,
	// or a wrap prefix that leaves no room for content.
	ErrInvalidConfig = errors.New("invalid table configuration")
	// ErrColumnMismatch reports a row whose cell count differs from the
	// configured column count.
	ErrColumnMismatch = errors.New("row does not match column count")
	// ErrUnsupportedInput reports an entry collection whose shape cannot
	// be normalized into rows.
	ErrUnsupportedInput = errors.New("unsupported input shape")
)

// Formatter renders tabular data as an aligned text grid. Construct with
// [New]; a Formatter is immutable afterwards and safe to reuse across
// renders.
type Formatter struct {
	columns        []Column
	grid           *Grid
	cellPadding    int
	maxColumnWidth int
	headerHAlign   Alignment
	cellHAlign     Alignment
	headerVAlign   VerticalAlignment
	cellVAlign     VerticalAlignment
	showHeader     bool
	rowHeader      bool
	transpose      bool
	rowTagger      RowTagger
	useAttribs     bool
	autoColumns    bool
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithGrid selects the grid style. Default: [AlternatingRowGrid].
func WithGrid(g *Grid) Option {
	return func(f *Formatter) { f.grid = g }
}

// WithCellPadding sets the number of spaces inserted on each side of every
// cell. Default: 1. Columns may override it individually.
func WithCellPadding(n int) Option {
	return func(f *Formatter) { f.cellPadding = n }
}

// WithMaxColumnWidth caps auto-sized columns at n display columns; wider
// content wraps or truncates per the column's wrap mode. Zero means no cap.
func WithMaxColumnWidth(n int) Option {
	return func(f *Formatter) { f.maxColumnWidth = n }
}

// WithHeaderAlignment sets the default header alignment for all columns.
// Defaults: left, bottom. AlignDefault/VAlignDefault leave the current
// value.
func WithHeaderAlignment(h Alignment, v VerticalAlignment) Option {
	return func(f *Formatter) {
		if h != AlignDefault {
			f.headerHAlign = h
		}
		if v != VAlignDefault {
			f.headerVAlign = v
		}
	}
}

// WithCellAlignment sets the default cell alignment for all columns.
// Defaults: left, top.
func WithCellAlignment(h Alignment, v VerticalAlignment) Option {
	return func(f *Formatter) {
		if h != AlignDefault {
			f.cellHAlign = h
		}
		if v != VAlignDefault {
			f.cellVAlign = v
		}
	}
}

// WithTranspose swaps the row and column axes before layout: columns become
// rows labeled by their headings.
func WithTranspose() Option {
	return func(f *Formatter) { f.transpose = true }
}

// WithRowHeader marks the first column as a row-header column, drawn with
// header dividers. When transposing, the first column's cells become the
// column headings.
func WithRowHeader() Option {
	return func(f *Formatter) { f.rowHeader = true }
}

// WithoutHeader suppresses the header block even for grid styles that show
// one.
func WithoutHeader() Option {
	return func(f *Formatter) { f.showHeader = false }
}

// WithRowTagger installs a per-row color hook.
func WithRowTagger(t RowTagger) Option {
	return func(f *Formatter) { f.rowTagger = t }
}

func withAutoColumns() Option {
	return func(f *Formatter) {
		f.autoColumns = true
		f.showHeader = false
	}
}

// New builds a Formatter for the given columns. Configuration problems are
// reported here, before any rendering.
func New(columns []Column, opts ...Option) (*Formatter, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: at least one column required", ErrInvalidConfig)
	}
	f := &Formatter{
		columns:      append([]Column(nil), columns...),
		cellPadding:  1,
		headerHAlign: AlignLeft,
		headerVAlign: AlignBottom,
		cellHAlign:   AlignLeft,
		cellVAlign:   AlignTop,
		showHeader:   true,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.grid == nil {
		f.grid = AlternatingRowGrid()
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Formatter) validate() error {
	if f.cellPadding < 0 {
		return fmt.Errorf("%w: cell padding %d", ErrInvalidConfig, f.cellPadding)
	}
	if f.maxColumnWidth < 0 {
		return fmt.Errorf("%w: max column width %d", ErrInvalidConfig, f.maxColumnWidth)
	}
	if !f.headerHAlign.valid() || !f.cellHAlign.valid() || !f.headerVAlign.valid() || !f.cellVAlign.valid() {
		return fmt.Errorf("%w: default alignment", ErrInvalidConfig)
	}

	attribs := 0
	for i := range f.columns {
		c := &f.columns[i]
		if err := c.validate(i); err != nil {
			return err
		}
		wrapWidth := c.Width
		if wrapWidth == 0 {
			wrapWidth = f.maxColumnWidth
		}
		mode := c.WrapMode
		if mode == WrapModeDefault {
			mode = WrapModeWrap
		}
		if mode == WrapModeWrap && wrapWidth > 0 && displayWidth(c.WrapPrefix) >= wrapWidth {
			return fmt.Errorf("%w: column %d wrap prefix %q leaves no room within width %d",
				ErrInvalidConfig, i, c.WrapPrefix, wrapWidth)
		}
		if c.Attrib != "" || c.ObjFormatter != nil {
			attribs++
		}
	}
	f.useAttribs = attribs == len(f.columns)
	return nil
}

// Generate renders entries as a table and returns the result. The string is
// built in full before being returned: configuration and input errors
// surface with no partial output.
func (f *Formatter) Generate(entries any) (string, error) {
	rows, err := f.normalize(entries)
	if err != nil {
		return "", err
	}
	l := f.buildLayout(rows)
	if f.transpose {
		l = f.transposeLayout(l)
	}
	return f.render(l), nil
}

// Write renders entries and writes the table to w.
func (f *Formatter) Write(w io.Writer, entries any) error {
	s, err := f.Generate(entries)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// WriteSeq renders entries from an iterator. Layout needs the whole data
// set, so the sequence is collected before rendering.
func (f *Formatter) WriteSeq(w io.Writer, seq iter.Seq[any]) error {
	entries := make([]any, 0)
	for entry := range seq {
		entries = append(entries, entry)
	}
	return f.Write(w, entries)
}

// GenerateTable renders entries with minimal ceremony. Map-shaped entries
// (column name to values) become positional rows; with nil columns,
// sequence entries get content-sized columns with numeric names and no
// header block, and map entries take their sorted keys as headings.
func GenerateTable(entries any, columns []Column, opts ...Option) (string, error) {
	if entries == nil {
		return "", fmt.Errorf("%w: nil entries", ErrUnsupportedInput)
	}
	if rv := reflect.ValueOf(entries); rv.Kind() == reflect.Map {
		rows, cols, err := adaptMap(rv, columns)
		if err != nil {
			return "", err
		}
		entries, columns = rows, cols
	} else if columns == nil {
		n, err := autoColumnCount(entries)
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", nil
		}
		names := make([]string, n)
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
		columns = Columns(names...)
		opts = append(opts, withAutoColumns())
	}
	f, err := New(columns, opts...)
	if err != nil {
		return "", err
	}
	return f.Generate(entries)
}
