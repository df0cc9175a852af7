// Package office describes the capabilities the writers need from a host
// document: shapes that can grow a table or a chart, table regions made of
// cells, charts with a worksheet-like data store, and templates made of
// named layouts and placeholders.
//
// The presentation, word-processing and workbook hosts implement these
// contracts. Optional behaviour (row heights, column widths, merging) is
// discovered through the small interfaces at the bottom of this file.
package office

import "tabdoc/internal/style"

// Shape is anything a writer can be pointed at
type Shape interface {
	Name() string
}

// Template is a document that declares named layouts
type Template interface {
	Layouts() []Layout
}

// Layout is a named slide pattern
type Layout interface {
	Name() string
	Placeholders() []Placeholder
}

// Placeholder is a named region of a layout
type Placeholder interface {
	Name() string
	// Idx is the placeholder index slides use to refer back to the layout
	Idx() int
	// Type is the OOXML placeholder type, for example "title", "tbl" or "chart"
	Type() string
}

type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

var alignNames = map[string]Align{
	"":        AlignDefault,
	"left":    AlignLeft,
	"center":  AlignCenter,
	"right":   AlignRight,
	"justify": AlignJustify,
}

// ParseAlign accepts left, center, right, justify or ""
func ParseAlign(s string) (Align, bool) {
	a, ok := alignNames[s]
	return a, ok
}

func (a Align) String() string {
	for name, v := range alignNames {
		if v == a {
			return name
		}
	}
	return ""
}

// CellFormat is applied as a whole by Cell.SetFormat. Zero fields mean
// "leave the host default".
type CellFormat struct {
	Font      string
	Size      float64 // points
	Bold      bool
	Italic    bool
	Color     *style.Color
	Fill      *style.Color
	Align     Align
	Margins   *style.Margins
	Underline bool
}

// Cell is one addressable cell of a table region
type Cell interface {
	Text() string
	SetText(text string)
	Format() CellFormat
	SetFormat(f CellFormat)
}

// Grid is a fixed-size table region
type Grid interface {
	Rows() int
	Cols() int
	Cell(row, col int) Cell
}

// TableHost can materialize a table region of the requested size
type TableHost interface {
	Shape
	InsertTable(rows, cols int) (Grid, error)
}

// RowSizer is implemented by regions with adjustable row heights
type RowSizer interface {
	SetRowHeight(row int, inches float64) error
}

// ColumnSizer is implemented by regions with adjustable column widths
type ColumnSizer interface {
	// Width is the width available to the whole table in centimetres
	Width() float64
	ColumnWidth(col int) float64
	SetColumnWidth(col int, cm float64) error
}

// Merger is implemented by regions that can span a cell over columns
type Merger interface {
	MergeRow(row, startCol, endCol int) error
}

// Highlighter is implemented by regions with table-style emphasis flags
type Highlighter interface {
	SetHighlight(firstRow, firstCol, lastRow bool)
}
