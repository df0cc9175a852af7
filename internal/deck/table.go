package deck

import (
	"fmt"

	"tabdoc/internal/office"
)

// Table is a slide table. Widths are in centimetres and row heights in
// inches, the units the table writer works in.
type Table struct {
	cells   [][]*Cell
	widths  []float64
	heights []float64
	width   float64

	FirstRow bool
	FirstCol bool
	LastRow  bool
}

func newTable(rows, cols int, width float64) *Table {
	t := &Table{width: width, widths: make([]float64, cols), heights: make([]float64, rows)}
	t.cells = make([][]*Cell, rows)
	for r := range t.cells {
		t.cells[r] = make([]*Cell, cols)
		for c := range t.cells[r] {
			t.cells[r][c] = &Cell{span: 1}
		}
	}
	for c := range t.widths {
		t.widths[c] = width / float64(cols)
	}
	return t
}

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

// RowHeight in inches, 0 when never set
func (t *Table) RowHeight(row int) float64 {
	return t.heights[row]
}

func (t *Table) Width() float64 { return t.width }

func (t *Table) ColumnWidth(col int) float64 {
	return t.widths[col]
}

func (t *Table) SetColumnWidth(col int, cm float64) error {
	if col < 0 || col >= len(t.widths) {
		return fmt.Errorf("column %d out of range", col)
	}
	t.widths[col] = cm
	return nil
}

// MergeRow spans the cell at startCol over endCol. The spanned cells stay
// addressable but are hidden.
func (t *Table) MergeRow(row, startCol, endCol int) error {
	if row < 0 || row >= t.Rows() || startCol < 0 || endCol >= t.Cols() || endCol < startCol {
		return fmt.Errorf("invalid merge of row %d columns %d..%d", row, startCol, endCol)
	}
	t.cells[row][startCol].span = endCol - startCol + 1
	for c := startCol + 1; c <= endCol; c++ {
		t.cells[row][c].span = 0
	}
	return nil
}

func (t *Table) SetHighlight(firstRow, firstCol, lastRow bool) {
	t.FirstRow, t.FirstCol, t.LastRow = firstRow, firstCol, lastRow
}

type Cell struct {
	text   string
	format office.CellFormat
	// number of columns the cell covers, 0 when covered by a merge
	span int
}

func (c *Cell) Text() string                  { return c.text }
func (c *Cell) SetText(text string)           { c.text = text }
func (c *Cell) Format() office.CellFormat     { return c.format }
func (c *Cell) SetFormat(f office.CellFormat) { c.format = f }

// Span is the number of columns the cell covers; 0 means it is hidden
// under a merged neighbour
func (c *Cell) Span() int { return c.span }
