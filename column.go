package tablefmt

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Alignment controls horizontal text placement within a column.
type Alignment int

const (
	AlignDefault Alignment = iota // inherit the table default
	AlignLeft
	AlignCenter
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignDefault: "default",
	AlignLeft:    "left",
	AlignCenter:  "center",
	AlignRight:   "right",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("alignment(%d)", int(a))
}

func (a Alignment) valid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// MarshalYAML encodes the alignment as its name.
func (a Alignment) MarshalYAML() (any, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, a)
	}
	return a.String(), nil
}

// UnmarshalYAML decodes an alignment from its name. An empty or absent value
// means AlignDefault.
func (a *Alignment) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "", "default":
		*a = AlignDefault
	case "left":
		*a = AlignLeft
	case "center":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	default:
		return fmt.Errorf("%w: unknown alignment %q", ErrInvalidConfig, s)
	}
	return nil
}

// VerticalAlignment controls vertical text placement within a multi-line row.
type VerticalAlignment int

const (
	VAlignDefault VerticalAlignment = iota // inherit the table default
	AlignTop
	AlignBottom
)

var verticalAlignmentNames = map[VerticalAlignment]string{
	VAlignDefault: "default",
	AlignTop:      "top",
	AlignBottom:   "bottom",
}

// String returns the alignment name.
func (v VerticalAlignment) String() string {
	if s, ok := verticalAlignmentNames[v]; ok {
		return s
	}
	return fmt.Sprintf("valignment(%d)", int(v))
}

func (v VerticalAlignment) valid() bool {
	_, ok := verticalAlignmentNames[v]
	return ok
}

// MarshalYAML encodes the alignment as its name.
func (v VerticalAlignment) MarshalYAML() (any, error) {
	if !v.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, v)
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a vertical alignment from its name.
func (v *VerticalAlignment) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "", "default":
		*v = VAlignDefault
	case "top":
		*v = AlignTop
	case "bottom":
		*v = AlignBottom
	default:
		return fmt.Errorf("%w: unknown vertical alignment %q", ErrInvalidConfig, s)
	}
	return nil
}

// WrapMode controls how cell text wider than its column is split or cut.
type WrapMode int

const (
	// WrapModeDefault inherits the table default (WrapModeWrap).
	WrapModeDefault WrapMode = iota
	// WrapModeWrap breaks at whitespace boundaries, hard-breaking single
	// tokens longer than the column. Continuation lines carry the column's
	// wrap prefix.
	WrapModeWrap
	// WrapModeTruncate cuts at the column width with no marker.
	WrapModeTruncate
	// WrapModeTruncateEllipsis cuts at the column width, ending the line
	// with an ellipsis when content was removed.
	WrapModeTruncateEllipsis
	// WrapModeTruncateFront keeps the end of the line, starting it with an
	// ellipsis.
	WrapModeTruncateFront
	// WrapModeTruncateMiddle keeps both ends of the line around a centered
	// ellipsis.
	WrapModeTruncateMiddle
)

var wrapModeNames = map[WrapMode]string{
	WrapModeDefault:          "default",
	WrapModeWrap:             "wrap",
	WrapModeTruncate:         "truncate",
	WrapModeTruncateEllipsis: "truncate-ellipsis",
	WrapModeTruncateFront:    "truncate-front",
	WrapModeTruncateMiddle:   "truncate-middle",
}

// String returns the wrap mode name.
func (m WrapMode) String() string {
	if s, ok := wrapModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("wrapmode(%d)", int(m))
}

func (m WrapMode) valid() bool {
	_, ok := wrapModeNames[m]
	return ok
}

// MarshalYAML encodes the wrap mode as its name.
func (m WrapMode) MarshalYAML() (any, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, m)
	}
	return m.String(), nil
}

// UnmarshalYAML decodes a wrap mode from its name.
func (m *WrapMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for mode, name := range wrapModeNames {
		if s == name || (s == "" && mode == WrapModeDefault) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("%w: unknown wrap mode %q", ErrInvalidConfig, s)
}

// Column configures one table column. The zero value is a content-sized,
// left-aligned column; Width, alignments, wrap behavior, and padding override
// the table defaults only when set.
type Column struct {
	// Name is the heading text.
	Name string `yaml:"name"`
	// Width fixes the column's display width exactly. Content wider than
	// Width is wrapped or truncated per WrapMode; narrower content is
	// padded. Zero sizes the column to its content.
	Width int `yaml:"width,omitempty"`
	// Attrib names the object field, map key, or zero-argument method that
	// supplies this column's value when rows are objects.
	Attrib string `yaml:"attrib,omitempty"`
	// WrapMode selects how over-width content is handled.
	WrapMode WrapMode `yaml:"wrap,omitempty"`
	// WrapPrefix is prepended to continuation lines produced by
	// WrapModeWrap. It consumes display width from the column.
	WrapPrefix string `yaml:"wrap_prefix,omitempty"`
	// CellPadding overrides the table's cell padding for this column.
	CellPadding *int `yaml:"padding,omitempty"`

	HeaderHAlign Alignment         `yaml:"header_align,omitempty"`
	HeaderVAlign VerticalAlignment `yaml:"header_valign,omitempty"`
	CellHAlign   Alignment         `yaml:"align,omitempty"`
	CellVAlign   VerticalAlignment `yaml:"valign,omitempty"`

	// Formatter renders the cell value to text. Applied after ObjFormatter
	// when both are set.
	Formatter func(value any) string `yaml:"-"`
	// ObjFormatter derives the cell value from the whole row object.
	ObjFormatter func(entry any) string `yaml:"-"`
}

// Columns builds content-sized columns from heading names.
func Columns(names ...string) []Column {
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name}
	}
	return cols
}

// ColumnsFromYAML decodes a YAML list of column definitions. Formatter
// functions cannot be expressed in YAML and are left nil.
func ColumnsFromYAML(data []byte) ([]Column, error) {
	var cols []Column
	if err := yaml.Unmarshal(data, &cols); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cols, nil
}

func (c *Column) validate(index int) error {
	if c.Width < 0 {
		return fmt.Errorf("%w: column %d width %d", ErrInvalidConfig, index, c.Width)
	}
	if c.CellPadding != nil && *c.CellPadding < 0 {
		return fmt.Errorf("%w: column %d padding %d", ErrInvalidConfig, index, *c.CellPadding)
	}
	if !c.HeaderHAlign.valid() || !c.CellHAlign.valid() {
		return fmt.Errorf("%w: column %d alignment", ErrInvalidConfig, index)
	}
	if !c.HeaderVAlign.valid() || !c.CellVAlign.valid() {
		return fmt.Errorf("%w: column %d vertical alignment", ErrInvalidConfig, index)
	}
	if !c.WrapMode.valid() {
		return fmt.Errorf("%w: column %d wrap mode", ErrInvalidConfig, index)
	}
	return nil
}
