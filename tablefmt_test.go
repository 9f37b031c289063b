package tablefmt_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tablefmt"
)

func TestMain(m *testing.M) {
	// Render plain text by default so expected outputs stay literal.
	// Individual tests opt back in with (*color.Color).EnableColor.
	color.NoColor = true
	os.Exit(m.Run())
}

func TestGenerateTableAutoColumns(t *testing.T) {
	got, err := tablefmt.GenerateTable([][]string{{"A1", "A2"}}, nil)
	require.NoError(t, err)

	want := "" +
		"╔════╤════╗\n" +
		"║ A1 │ A2 ║\n" +
		"╚════╧════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableFancyGrid(t *testing.T) {
	rows := [][]string{{"Mike", "31"}, {"Sue", "22"}}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("Name", "Age"),
		tablefmt.WithGrid(tablefmt.FancyGrid()))
	require.NoError(t, err)

	want := "" +
		"╔══════╤═════╗\n" +
		"║ Name │ Age ║\n" +
		"╠══════╪═════╣\n" +
		"║ Mike │ 31  ║\n" +
		"╟──────┼─────╢\n" +
		"║ Sue  │ 22  ║\n" +
		"╚══════╧═════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableAlternatingRowGrid(t *testing.T) {
	rows := [][]string{{"Mike", "31"}, {"Sue", "22"}}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("Name", "Age"))
	require.NoError(t, err)

	want := "" +
		"╔══════╤═════╗\n" +
		"║ Name │ Age ║\n" +
		"╠══════╪═════╣\n" +
		"║ Mike │ 31  ║\n" +
		"║ Sue  │ 22  ║\n" +
		"╚══════╧═════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableSparseGrid(t *testing.T) {
	rows := [][]string{{"Mike", "31"}, {"Sue", "22"}}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("Name", "Age"),
		tablefmt.WithGrid(tablefmt.SparseGrid()))
	require.NoError(t, err)

	want := "" +
		" Mike  31 \n" +
		" Sue   22 \n"
	assert.Equal(t, want, got)
}

func TestGenerateTableMultilineCell(t *testing.T) {
	rows := [][]string{{"A1", "B1\nB1\nB1"}}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("A", "B"))
	require.NoError(t, err)

	want := "" +
		"╔════╤════╗\n" +
		"║ A  │ B  ║\n" +
		"╠════╪════╣\n" +
		"║ A1 │ B1 ║\n" +
		"║    │ B1 ║\n" +
		"║    │ B1 ║\n" +
		"╚════╧════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableCellVAlignBottom(t *testing.T) {
	cols := []tablefmt.Column{
		{Name: "A", CellVAlign: tablefmt.AlignBottom},
		{Name: "B"},
	}
	rows := [][]string{{"A1", "B1\nB1\nB1"}}
	got, err := tablefmt.GenerateTable(rows, cols)
	require.NoError(t, err)

	want := "" +
		"╔════╤════╗\n" +
		"║ A  │ B  ║\n" +
		"╠════╪════╣\n" +
		"║    │ B1 ║\n" +
		"║    │ B1 ║\n" +
		"║ A1 │ B1 ║\n" +
		"╚════╧════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableHeaderWraps(t *testing.T) {
	cols := []tablefmt.Column{{Name: "Long Header", Width: 6}}
	got, err := tablefmt.GenerateTable([][]string{{"x"}}, cols)
	require.NoError(t, err)

	want := "" +
		"╔════════╗\n" +
		"║ Long   ║\n" +
		"║ Header ║\n" +
		"╠════════╣\n" +
		"║ x      ║\n" +
		"╚════════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableHeaderVAlignBottom(t *testing.T) {
	cols := []tablefmt.Column{
		{Name: "Name"},
		{Name: "Long Header", Width: 6},
	}
	got, err := tablefmt.GenerateTable([][]string{{"Mike", "x"}}, cols)
	require.NoError(t, err)

	want := "" +
		"╔══════╤════════╗\n" +
		"║      │ Long   ║\n" +
		"║ Name │ Header ║\n" +
		"╠══════╪════════╣\n" +
		"║ Mike │ x      ║\n" +
		"╚══════╧════════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableExplicitWidthTruncates(t *testing.T) {
	cols := []tablefmt.Column{{Name: "Val", Width: 5, WrapMode: tablefmt.WrapModeTruncateEllipsis}}
	got, err := tablefmt.GenerateTable([][]string{{"abcdefgh"}}, cols,
		tablefmt.WithGrid(tablefmt.FancyGrid()))
	require.NoError(t, err)

	want := "" +
		"╔═══════╗\n" +
		"║ Val   ║\n" +
		"╠═══════╣\n" +
		"║ abcd… ║\n" +
		"╚═══════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableWrapPrefix(t *testing.T) {
	cols := []tablefmt.Column{{Name: "Text", Width: 10, WrapPrefix: " » "}}
	got, err := tablefmt.GenerateTable([][]string{{"aaa bbb ccc ddd"}}, cols,
		tablefmt.WithGrid(tablefmt.FancyGrid()))
	require.NoError(t, err)

	want := "" +
		"╔════════════╗\n" +
		"║ Text       ║\n" +
		"╠════════════╣\n" +
		"║ aaa bbb    ║\n" +
		"║  » ccc ddd ║\n" +
		"╚════════════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableMaxColumnWidth(t *testing.T) {
	got, err := tablefmt.GenerateTable([][]string{{"hello world"}}, tablefmt.Columns("T"),
		tablefmt.WithMaxColumnWidth(5),
		tablefmt.WithGrid(tablefmt.FancyGrid()))
	require.NoError(t, err)

	want := "" +
		"╔═══════╗\n" +
		"║ T     ║\n" +
		"╠═══════╣\n" +
		"║ hello ║\n" +
		"║ world ║\n" +
		"╚═══════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableCellAlignment(t *testing.T) {
	got, err := tablefmt.GenerateTable([][]string{{"1"}, {"22"}}, tablefmt.Columns("N"),
		tablefmt.WithCellAlignment(tablefmt.AlignRight, tablefmt.VAlignDefault))
	require.NoError(t, err)

	want := "" +
		"╔════╗\n" +
		"║ N  ║\n" +
		"╠════╣\n" +
		"║  1 ║\n" +
		"║ 22 ║\n" +
		"╚════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableHeaderAlignCenter(t *testing.T) {
	got, err := tablefmt.GenerateTable([][]string{{"abcd"}}, tablefmt.Columns("N"),
		tablefmt.WithHeaderAlignment(tablefmt.AlignCenter, tablefmt.VAlignDefault))
	require.NoError(t, err)

	want := "" +
		"╔══════╗\n" +
		"║  N   ║\n" +
		"╠══════╣\n" +
		"║ abcd ║\n" +
		"╚══════╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableColumnPaddingOverride(t *testing.T) {
	pad := 0
	cols := []tablefmt.Column{{Name: "A", CellPadding: &pad}}
	got, err := tablefmt.GenerateTable([][]string{{"x"}}, cols)
	require.NoError(t, err)

	want := "" +
		"╔═╗\n" +
		"║A║\n" +
		"╠═╣\n" +
		"║x║\n" +
		"╚═╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableEmptyRowsKeepsHeader(t *testing.T) {
	got, err := tablefmt.GenerateTable([][]string{}, tablefmt.Columns("A"))
	require.NoError(t, err)

	want := "" +
		"╔═══╗\n" +
		"║ A ║\n" +
		"╠═══╣\n" +
		"╚═══╝\n"
	assert.Equal(t, want, got)
}

func TestGenerateTableEmptyNoColumns(t *testing.T) {
	got, err := tablefmt.GenerateTable([][]string{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranspose(t *testing.T) {
	rows := [][]string{{"1", "2"}, {"3", "4"}}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("A", "B"),
		tablefmt.WithTranspose())
	require.NoError(t, err)

	want := "" +
		"╔═══╦═══╤═══╗\n" +
		"║ A ║ 1 │ 3 ║\n" +
		"║ B ║ 2 │ 4 ║\n" +
		"╚═══╩═══╧═══╝\n"
	assert.Equal(t, want, got)
}

func TestTransposeRowHeader(t *testing.T) {
	rows := [][]string{{"1", "2"}, {"3", "4"}}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("A", "B"),
		tablefmt.WithTranspose(), tablefmt.WithRowHeader())
	require.NoError(t, err)

	want := "" +
		"╔═══╦═══╤═══╗\n" +
		"║ A ║ 1 │ 3 ║\n" +
		"╠═══╬═══╪═══╣\n" +
		"║ B ║ 2 │ 4 ║\n" +
		"╚═══╩═══╧═══╝\n"
	assert.Equal(t, want, got)
}

func TestTransposeMatchesSwappedRows(t *testing.T) {
	cols := tablefmt.Columns("A", "B")
	rows := [][]string{{"1", "2"}, {"3", "4"}}
	swapped := [][]string{{"1", "3"}, {"2", "4"}}

	a, err := tablefmt.GenerateTable(rows, cols,
		tablefmt.WithTranspose(), tablefmt.WithoutHeader(),
		tablefmt.WithGrid(tablefmt.FancyGrid()))
	require.NoError(t, err)
	b, err := tablefmt.GenerateTable(swapped, cols,
		tablefmt.WithoutHeader(),
		tablefmt.WithGrid(tablefmt.FancyGrid()))
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestLineCount(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d\nd"}}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("A", "B"),
		tablefmt.WithGrid(tablefmt.FancyGrid()))
	require.NoError(t, err)

	// top + header + header rule + row(1) + row divider + row(2) + bottom
	assert.Equal(t, 8, strings.Count(got, "\n"))
}

func TestUniformLineWidth(t *testing.T) {
	rows := [][]string{{"你好", "ok"}, {"a", "längre"}}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("N1", "N2"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.NotEmpty(t, lines)
	want := runewidth.StringWidth(lines[0])
	for _, line := range lines {
		assert.Equal(t, want, runewidth.StringWidth(line), "line %q", line)
	}
}

func TestFormatterReuse(t *testing.T) {
	f, err := tablefmt.New(tablefmt.Columns("A"))
	require.NoError(t, err)

	rows := [][]string{{"x"}}
	first, err := f.Generate(rows)
	require.NoError(t, err)
	second, err := f.Generate(rows)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWrite(t *testing.T) {
	f, err := tablefmt.New(tablefmt.Columns("A"))
	require.NoError(t, err)

	rows := [][]string{{"x"}}
	want, err := f.Generate(rows)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, rows))
	assert.Equal(t, want, buf.String())
}

func TestWriteSeq(t *testing.T) {
	f, err := tablefmt.New(tablefmt.Columns("A", "B"))
	require.NoError(t, err)

	rows := []any{[]string{"1", "2"}, []string{"3", "4"}}
	want, err := f.Generate(rows)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = f.WriteSeq(&buf, func(yield func(any) bool) {
		for _, r := range rows {
			if !yield(r) {
				return
			}
		}
	})
	require.NoError(t, err)
	assert.Equal(t, want, buf.String())
}

func TestWriteSeqEmpty(t *testing.T) {
	f, err := tablefmt.New(tablefmt.Columns("A"))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = f.WriteSeq(&buf, func(yield func(any) bool) {})
	require.NoError(t, err)

	want := "" +
		"╔═══╗\n" +
		"║ A ║\n" +
		"╠═══╣\n" +
		"╚═══╝\n"
	assert.Equal(t, want, buf.String())
}

func TestNewErrors(t *testing.T) {
	_, err := tablefmt.New(nil)
	assert.ErrorIs(t, err, tablefmt.ErrInvalidConfig)

	_, err = tablefmt.New(tablefmt.Columns("A"), tablefmt.WithCellPadding(-1))
	assert.ErrorIs(t, err, tablefmt.ErrInvalidConfig)

	_, err = tablefmt.New([]tablefmt.Column{{Name: "A", Width: -2}})
	assert.ErrorIs(t, err, tablefmt.ErrInvalidConfig)

	// The wrap prefix must leave at least one column for content.
	_, err = tablefmt.New([]tablefmt.Column{{Name: "X", Width: 2, WrapPrefix: " » "}})
	assert.ErrorIs(t, err, tablefmt.ErrInvalidConfig)
}

func TestColumnMismatch(t *testing.T) {
	got, err := tablefmt.GenerateTable([][]string{{"a", "b"}, {"c"}}, tablefmt.Columns("A", "B"))
	assert.ErrorIs(t, err, tablefmt.ErrColumnMismatch)
	assert.Empty(t, got)
}

func TestUnsupportedInput(t *testing.T) {
	_, err := tablefmt.GenerateTable(nil, tablefmt.Columns("A"))
	assert.ErrorIs(t, err, tablefmt.ErrUnsupportedInput)

	_, err = tablefmt.GenerateTable(42, nil)
	assert.ErrorIs(t, err, tablefmt.ErrUnsupportedInput)

	_, err = tablefmt.GenerateTable([]int{1, 2}, tablefmt.Columns("A"))
	assert.ErrorIs(t, err, tablefmt.ErrUnsupportedInput)
}

func TestRowColorAndTagger(t *testing.T) {
	red := color.New(color.FgHiRed)
	red.EnableColor()
	green := color.New(color.FgHiGreen)
	green.EnableColor()

	rows := []any{
		tablefmt.Row{Cells: []any{"aa"}, Color: red},
		tablefmt.Row{Cells: []any{"bb"}},
	}
	got, err := tablefmt.GenerateTable(rows, tablefmt.Columns("C"),
		tablefmt.WithGrid(tablefmt.FancyGrid()),
		tablefmt.WithRowTagger(func(any) *color.Color { return green }))
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	// Row colors win over the tagger; the tagger covers the rest.
	assert.Contains(t, lines[3], "\x1b[91m")
	assert.NotContains(t, lines[3], "\x1b[92m")
	assert.Contains(t, lines[5], "\x1b[92m")

	// Escape sequences never disturb the layout.
	plain, err := tablefmt.GenerateTable([][]string{{"aa"}, {"bb"}}, tablefmt.Columns("C"),
		tablefmt.WithGrid(tablefmt.FancyGrid()))
	require.NoError(t, err)
	assert.Equal(t, plain, ansi.Strip(got))
}

func TestRowTaggerCalledPerRow(t *testing.T) {
	calls := 0
	_, err := tablefmt.GenerateTable([][]string{{"a"}, {"b"}, {"c"}}, tablefmt.Columns("C"),
		tablefmt.WithRowTagger(func(any) *color.Color {
			calls++
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestAlternatingRowBackground(t *testing.T) {
	alt := color.New(color.BgHiBlack)
	alt.EnableColor()

	got, err := tablefmt.GenerateTable([][]string{{"a"}, {"b"}}, tablefmt.Columns("C"),
		tablefmt.WithGrid(tablefmt.AlternatingRowGrid(nil, alt)))
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.NotContains(t, lines[3], "\x1b")
	assert.Contains(t, lines[4], "\x1b[100m")
}
