package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tabdoc/internal/logger"
	"tabdoc/internal/office"
)

const (
	// width of one character of the default font in centimetres
	cmPerChar = 0.19
	// points per inch, for row heights
	pointsPerInch = 72.0
	// width a region reports when the host sets none
	defaultWidth = 24.0
)

// SheetHost places table regions on a worksheet with their top-left
// corner at a fixed cell
type SheetHost struct {
	editor *Editor
	sheet  string
	col    int
	row    int
	// Width is the width in centimetres auto-sized columns are scaled to
	Width float64
}

// SheetHost returns a table host on sheet anchored at anchor, creating the sheet if needed
func (e *Editor) SheetHost(sheet, anchor string) (*SheetHost, error) {
	col, row, err := excelize.CellNameToCoordinates(anchor)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor %q: %w", anchor, err)
	}
	if err := e.EnsureSheet(sheet); err != nil {
		return nil, err
	}
	return &SheetHost{editor: e, sheet: sheet, col: col, row: row, Width: defaultWidth}, nil
}

func (h *SheetHost) Name() string {
	return h.sheet + "!" + cellName(h.col, h.row, 0, 0)
}

func (h *SheetHost) InsertTable(rows, cols int) (office.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid table size %dx%d", rows, cols)
	}
	return h.Region(rows, cols), nil
}

// Region addresses an existing block of cells below and right of the anchor
func (h *SheetHost) Region(rows, cols int) *Region {
	r := &Region{host: h, rows: rows, cols: cols}
	r.cells = make([][]*sheetCell, rows)
	for i := range r.cells {
		r.cells[i] = make([]*sheetCell, cols)
		for j := range r.cells[i] {
			r.cells[i][j] = &sheetCell{region: r, name: cellName(h.col, h.row, i, j)}
		}
	}
	return r
}

// Region is a rows x cols block of worksheet cells. Cell writes go straight
// to the workbook; the first failure is kept and reported by Err.
type Region struct {
	host  *SheetHost
	rows  int
	cols  int
	cells [][]*sheetCell
	err   error
}

func (r *Region) Rows() int { return r.rows }
func (r *Region) Cols() int { return r.cols }

func (r *Region) Cell(row, col int) office.Cell {
	return r.cells[row][col]
}

// Err reports the first workbook error hit while writing cells
func (r *Region) Err() error {
	return r.err
}

func (r *Region) fail(err error) {
	logger.Error("Failed to write worksheet cell", "sheet", r.host.sheet, "error", err)
	if r.err == nil {
		r.err = err
	}
}

func (r *Region) SetRowHeight(row int, inches float64) error {
	return r.host.editor.file.SetRowHeight(r.host.sheet, r.host.row+row, inches*pointsPerInch)
}

func (r *Region) Width() float64 {
	return r.host.Width
}

func (r *Region) ColumnWidth(col int) float64 {
	name, err := excelize.ColumnNumberToName(r.host.col + col)
	if err != nil {
		return 0
	}
	chars, err := r.host.editor.file.GetColWidth(r.host.sheet, name)
	if err != nil {
		return 0
	}
	return chars * cmPerChar
}

func (r *Region) SetColumnWidth(col int, cm float64) error {
	name, err := excelize.ColumnNumberToName(r.host.col + col)
	if err != nil {
		return err
	}
	return r.host.editor.file.SetColWidth(r.host.sheet, name, name, cm/cmPerChar)
}

func (r *Region) MergeRow(row, startCol, endCol int) error {
	if startCol == endCol {
		return nil
	}
	return r.host.editor.file.MergeCell(r.host.sheet, r.cells[row][startCol].name, r.cells[row][endCol].name)
}

type sheetCell struct {
	region *Region
	name   string
	text   string
	format office.CellFormat
}

func (c *sheetCell) Text() string { return c.text }

func (c *sheetCell) SetText(text string) {
	c.text = text
	if err := c.region.host.editor.SetCellText(c.region.host.sheet, c.name, text); err != nil {
		c.region.fail(err)
	}
}

func (c *sheetCell) Format() office.CellFormat { return c.format }

func (c *sheetCell) SetFormat(f office.CellFormat) {
	c.format = f
	e := c.region.host.editor
	id, err := e.style(formatKey(f), excelStyle(f))
	if err != nil {
		c.region.fail(err)
		return
	}
	if err := e.file.SetCellStyle(c.region.host.sheet, c.name, c.name, id); err != nil {
		c.region.fail(err)
	}
}

var horizontal = map[office.Align]string{
	office.AlignLeft:    "left",
	office.AlignCenter:  "center",
	office.AlignRight:   "right",
	office.AlignJustify: "justify",
}

// excelStyle maps a cell format onto an excelize style. Cell margins have
// no worksheet equivalent and are dropped.
func excelStyle(f office.CellFormat) *excelize.Style {
	s := &excelize.Style{
		Font: &excelize.Font{
			Family: f.Font,
			Size:   f.Size,
			Bold:   f.Bold,
			Italic: f.Italic,
		},
	}
	if f.Color != nil {
		s.Font.Color = f.Color.Hex()
	}
	if f.Underline {
		s.Font.Underline = "single"
	}
	if f.Fill != nil {
		s.Fill = excelize.Fill{Type: "pattern", Color: []string{f.Fill.Hex()}, Pattern: 1}
	}
	if h, ok := horizontal[f.Align]; ok {
		s.Alignment = &excelize.Alignment{Horizontal: h, Vertical: "center"}
	}
	return s
}

func formatKey(f office.CellFormat) string {
	key := fmt.Sprintf("%s|%g|%t|%t|%t|%d", f.Font, f.Size, f.Bold, f.Italic, f.Underline, f.Align)
	if f.Color != nil {
		key += "|c" + f.Color.Hex()
	}
	if f.Fill != nil {
		key += "|f" + f.Fill.Hex()
	}
	return key
}
