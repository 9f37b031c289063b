package tablefmt

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/fatih/color"
)

// Row pairs cell values with per-row display options. Any entry sequence may
// contain Row values; plain slices work just as well when no options are
// needed.
type Row struct {
	Cells []any
	// Color tints this row's text. Takes precedence over the table's row
	// tagger.
	Color *color.Color
}

// normalizedRow is one table row after adapter normalization: rendered cell
// text (possibly multi-line) per column plus the resolved text color.
type normalizedRow struct {
	cells []string
	color *color.Color
}

// normalize converts a supported entry collection into rendered rows. Shapes
// are selected by capability: sequences index cells positionally; when every
// column names an Attrib or ObjFormatter, entries are treated as objects and
// cells are extracted by field, key, or method. Anything else is an
// ErrUnsupportedInput.
func (f *Formatter) normalize(entries any) ([]normalizedRow, error) {
	if entries == nil {
		return nil, fmt.Errorf("%w: nil entries", ErrUnsupportedInput)
	}
	rv := reflect.ValueOf(entries)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, entries)
	}

	rows := make([]normalizedRow, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		entry := rv.Index(i).Interface()
		row, err := f.normalizeEntry(i, entry)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *Formatter) normalizeEntry(index int, entry any) (normalizedRow, error) {
	var rowColor *color.Color
	obj := entry
	if r, ok := entry.(Row); ok {
		rowColor = r.Color
		if f.useAttribs && len(r.Cells) == 1 {
			obj = r.Cells[0]
		} else {
			obj = r.Cells
		}
		entry = obj
	}

	var cells []string
	if f.useAttribs {
		cells = make([]string, len(f.columns))
		for c := range f.columns {
			cells[c] = f.renderCell(c, attribValue(obj, f.columns[c].Attrib), obj)
		}
	} else {
		values, err := entryValues(entry)
		if err != nil {
			return normalizedRow{}, err
		}
		switch {
		case len(values) == len(f.columns):
		case len(values) < len(f.columns) && f.autoColumns:
			padded := make([]any, len(f.columns))
			copy(padded, values)
			values = padded
		default:
			return normalizedRow{}, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrColumnMismatch, index, len(values), len(f.columns))
		}
		cells = make([]string, len(f.columns))
		for c := range f.columns {
			cells[c] = f.renderCell(c, values[c], entry)
		}
	}

	if rowColor == nil && f.rowTagger != nil {
		rowColor = f.rowTagger(obj)
	}
	return normalizedRow{cells: cells, color: rowColor}, nil
}

// renderCell turns a raw cell value into display text, chaining the column's
// object formatter into its value formatter.
func (f *Formatter) renderCell(col int, value any, entry any) string {
	c := &f.columns[col]
	if c.ObjFormatter != nil {
		value = c.ObjFormatter(entry)
	}
	if c.Formatter != nil {
		return c.Formatter(value)
	}
	return stringify(value)
}

// entryValues extracts positional cell values from a sequence-shaped entry.
func entryValues(entry any) ([]any, error) {
	switch v := entry.(type) {
	case []any:
		return v, nil
	case []string:
		values := make([]any, len(v))
		for i, s := range v {
			values[i] = s
		}
		return values, nil
	}
	rv := reflect.ValueOf(entry)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: row type %T is not a sequence", ErrUnsupportedInput, entry)
	}
	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return values, nil
}

// attribValue looks name up on an object entry: map key, struct field, or
// zero-argument method, in that order. A value that is itself a
// zero-argument function is called and replaced by its result. Missing
// attributes yield an empty cell.
func attribValue(obj any, name string) any {
	if name == "" || obj == nil {
		return nil
	}
	rv := reflect.ValueOf(obj)
	elem := rv
	for elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil
		}
		elem = elem.Elem()
	}

	var value reflect.Value
	switch elem.Kind() {
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			value = elem.MapIndex(reflect.ValueOf(name))
		}
	case reflect.Struct:
		value = elem.FieldByName(name)
	}
	if !value.IsValid() {
		value = methodByName(rv, name)
	}
	if !value.IsValid() {
		return nil
	}
	if value.Kind() == reflect.Interface && !value.IsNil() {
		value = value.Elem()
	}
	if value.Kind() == reflect.Func {
		value = callNullary(value)
	}
	if !value.IsValid() {
		return nil
	}
	return value.Interface()
}

// methodByName resolves a zero-argument method on v or on a pointer to it
// and returns its result.
func methodByName(v reflect.Value, name string) reflect.Value {
	m := v.MethodByName(name)
	if !m.IsValid() && v.Kind() != reflect.Pointer {
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		m = pv.MethodByName(name)
	}
	if !m.IsValid() {
		return reflect.Value{}
	}
	return callNullary(m)
}

func callNullary(fn reflect.Value) reflect.Value {
	t := fn.Type()
	if t.NumIn() != 0 || t.NumOut() < 1 {
		return reflect.Value{}
	}
	return fn.Call(nil)[0]
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}
	return fmt.Sprintf("%v", v)
}

// adaptMap converts map-shaped input (column name -> column values) into
// positional rows, zipping columns to the longest value list. With no
// explicit columns the sorted map keys become headings; Go maps carry no
// order, so sorting keeps output deterministic.
func adaptMap(rv reflect.Value, columns []Column) ([][]any, []Column, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, nil, fmt.Errorf("%w: map keys must be strings, got %s", ErrUnsupportedInput, rv.Type().Key())
	}
	if columns == nil {
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		columns = Columns(keys...)
	}

	height := 0
	lists := make([][]any, len(columns))
	for i, col := range columns {
		v := rv.MapIndex(reflect.ValueOf(col.Name))
		if !v.IsValid() {
			continue
		}
		ev := reflect.ValueOf(v.Interface())
		if ev.IsValid() && (ev.Kind() == reflect.Slice || ev.Kind() == reflect.Array) {
			lists[i] = make([]any, ev.Len())
			for j := range lists[i] {
				lists[i][j] = ev.Index(j).Interface()
			}
		} else {
			lists[i] = []any{v.Interface()}
		}
		if len(lists[i]) > height {
			height = len(lists[i])
		}
	}

	rows := make([][]any, height)
	for r := range rows {
		rows[r] = make([]any, len(columns))
		for c := range columns {
			if r < len(lists[c]) {
				rows[r][c] = lists[c][r]
			}
		}
	}
	return rows, columns, nil
}

// autoColumnCount scans sequence entries for the widest row so numeric
// columns can be generated when none were configured.
func autoColumnCount(entries any) (int, error) {
	rv := reflect.ValueOf(entries)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedInput, entries)
	}
	max := 0
	for i := 0; i < rv.Len(); i++ {
		entry := rv.Index(i).Interface()
		if r, ok := entry.(Row); ok {
			entry = r.Cells
		}
		values, err := entryValues(entry)
		if err != nil {
			return 0, err
		}
		if len(values) > max {
			max = len(values)
		}
	}
	return max, nil
}
