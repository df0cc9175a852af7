package word

import (
	"fmt"

	"tabdoc/internal/office"
)

// Table is a document table. Column widths are in centimetres and row
// heights in inches.
type Table struct {
	Style     string
	Alignment office.Align
	// RightToLeft orders the columns from the right edge
	RightToLeft bool
	// Autofit lets the word processor size columns instead of the widths set here
	Autofit bool

	cells   [][]*Cell
	widths  []float64
	heights []float64
	width   float64
	spans   map[[2]int]int

	FirstRow, FirstCol, LastRow bool
}

func newTable(rows, cols int, width float64) *Table {
	t := &Table{
		Alignment: office.AlignCenter,
		cells:     make([][]*Cell, rows),
		widths:    make([]float64, cols),
		heights:   make([]float64, rows),
		width:     width,
		spans:     make(map[[2]int]int),
	}
	for r := range t.cells {
		t.cells[r] = make([]*Cell, cols)
		for c := range t.cells[r] {
			t.cells[r][c] = &Cell{}
		}
	}
	for c := range t.widths {
		t.widths[c] = width / float64(cols)
	}
	return t
}

func (*Table) block() {}

func (t *Table) Rows() int { return len(t.cells) }
func (t *Table) Cols() int { return len(t.widths) }

func (t *Table) Cell(row, col int) office.Cell {
	return t.cells[row][col]
}

func (t *Table) SetRowHeight(row int, inches float64) error {
	if row < 0 || row >= len(t.heights) {
		return fmt.Errorf("row %d out of range", row)
	}
	t.heights[row] = inches
	return nil
}

func (t *Table) RowHeight(row int) float64 { return t.heights[row] }

func (t *Table) Width() float64 { return t.width }

func (t *Table) ColumnWidth(col int) float64 { return t.widths[col] }

func (t *Table) SetColumnWidth(col int, cm float64) error {
	if col < 0 || col >= len(t.widths) {
		return fmt.Errorf("column %d out of range", col)
	}
	t.widths[col] = cm
	return nil
}

func (t *Table) MergeRow(row, startCol, endCol int) error {
	if row < 0 || row >= t.Rows() || startCol < 0 || endCol >= t.Cols() || endCol < startCol {
		return fmt.Errorf("invalid merge of row %d columns %d..%d", row, startCol, endCol)
	}
	t.spans[[2]int{row, startCol}] = endCol - startCol + 1
	return nil
}

// GridSpan is the number of columns the cell at row, col spans
func (t *Table) GridSpan(row, col int) int {
	if n, ok := t.spans[[2]int{row, col}]; ok {
		return n
	}
	return 1
}

func (t *Table) SetHighlight(firstRow, firstCol, lastRow bool) {
	t.FirstRow, t.FirstCol, t.LastRow = firstRow, firstCol, lastRow
}

// Cell holds a single paragraph of text
type Cell struct {
	text   string
	format office.CellFormat
}

func (c *Cell) Text() string                  { return c.text }
func (c *Cell) SetText(text string)           { c.text = text }
func (c *Cell) Format() office.CellFormat     { return c.format }
func (c *Cell) SetFormat(f office.CellFormat) { c.format = f }
