// Package tablefmt renders tabular data as an aligned text grid for
// terminal display, with Unicode-aware width measurement, multi-line cell
// wrapping, per-column alignment, transposition, and optional color
// decoration.
//
// The central entry points are [GenerateTable] for one-off tables and [New]
// plus [Formatter.Generate] or [Formatter.Write] when the same layout is
// reused:
//
//	s, err := tablefmt.GenerateTable(rows, tablefmt.Columns("Name", "Age"))
//
// # Input Shapes
//
// Entries are normalized by capability, not by concrete type. Sequences of
// sequences ([][]string, [][]any, []Row) index cells positionally and must
// match the column count. When every column names an Attrib (or has an
// ObjFormatter), entries are treated as objects and cells are extracted by
// map key, struct field, or zero-argument method. A map from column name to
// values becomes one column per key. Unsupported shapes fail with
// [ErrUnsupportedInput] rather than producing an empty table.
//
// With nil columns, GenerateTable sizes numeric columns to the widest row
// and hides the header block.
//
// # Columns
//
// [Column] controls heading text, exact width, wrap behavior, alignment,
// padding, and formatting per column. An explicit Width is exact: narrower
// content pads, wider content wraps or truncates per the column's
// [WrapMode]. Without one, the column sizes to its content, optionally
// capped by [WithMaxColumnWidth]. Formatter callables chain: ObjFormatter
// derives a value from the row object, Formatter renders it to text.
//
// Column definitions can also be declared in YAML via [ColumnsFromYAML]:
//
//	- name: Command
//	  width: 40
//	  wrap: truncate-ellipsis
//	- name: Size
//	  align: right
//
// # Wrapping and Width
//
// Display width is measured in terminal columns: East-Asian wide runes
// count as two, tabs advance to four-column stops, and ANSI color escape
// sequences count as zero, so colored content never disturbs alignment.
// Over-width cells honor their wrap mode: [WrapModeWrap] breaks at
// whitespace, hard-breaks single long tokens without splitting a wide rune,
// and prefixes continuation lines with the column's WrapPrefix; the
// truncate modes cut at the width with an ellipsis at the end, front,
// middle, or not at all.
//
// # Grid Styles
//
// A [Grid] describes border glyphs, separator policy, and row coloring.
// Built-ins: [FancyGrid] (full grid), [AlternatingRowGrid] (the default; no
// row dividers, alternating row backgrounds), and [SparseGrid] (padding
// only). Row colors can also come from a [RowTagger] hook or per-[Row]
// options; all coloring is applied after layout.
//
// # Transposition
//
// [WithTranspose] swaps the axes before layout: column headings become a
// leading right-aligned label column and each former column renders as a
// row. [WithRowHeader] promotes the first column's cells to column headings
// instead.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfig]: bad widths, padding, alignment, wrap mode, or
//     wrap prefix; reported by [New] before any rendering
//   - [ErrColumnMismatch]: a row's cell count differs from the column count
//   - [ErrUnsupportedInput]: the entry collection cannot be normalized
//
// Rendering either fully succeeds or fails with no partial output.
package tablefmt
