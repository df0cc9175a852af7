// Package preview renders table regions in the terminal
package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"tabdoc/internal/office"
)

// Canvas is a table host that keeps the region in memory so it can be
// printed. Width is reported to the table writer in centimetres.
type Canvas struct {
	name  string
	width float64
	grid  *Grid
}

func NewCanvas(name string, width float64) *Canvas {
	return &Canvas{name: name, width: width}
}

func (c *Canvas) Name() string { return c.name }

func (c *Canvas) InsertTable(rows, cols int) (office.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid table size %dx%d", rows, cols)
	}
	c.grid = NewGrid(rows, cols, c.width)
	return c.grid, nil
}

// Grid is the last region inserted, nil before the first
func (c *Canvas) Grid() *Grid {
	return c.grid
}

// Render draws the canvas table with its first row as the header
func (c *Canvas) Render() string {
	if c.grid == nil {
		return ""
	}
	return Render(c.grid, true)
}

type Grid struct {
	cells  [][]*cell
	widths []float64
	width  float64
}

func NewGrid(rows, cols int, width float64) *Grid {
	g := &Grid{cells: make([][]*cell, rows), widths: make([]float64, cols), width: width}
	for r := range g.cells {
		g.cells[r] = make([]*cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = &cell{}
		}
	}
	return g
}

func (g *Grid) Rows() int { return len(g.cells) }
func (g *Grid) Cols() int { return len(g.widths) }

func (g *Grid) Cell(row, col int) office.Cell { return g.cells[row][col] }

func (g *Grid) Width() float64              { return g.width }
func (g *Grid) ColumnWidth(col int) float64 { return g.widths[col] }

func (g *Grid) SetColumnWidth(col int, cm float64) error {
	g.widths[col] = cm
	return nil
}

type cell struct {
	text   string
	format office.CellFormat
}

func (c *cell) Text() string                  { return c.text }
func (c *cell) SetText(text string)           { c.text = text }
func (c *cell) Format() office.CellFormat     { return c.format }
func (c *cell) SetFormat(f office.CellFormat) { c.format = f }

var positions = map[office.Align]lipgloss.Position{
	office.AlignLeft:   lipgloss.Left,
	office.AlignCenter: lipgloss.Center,
	office.AlignRight:  lipgloss.Right,
}

// Render draws any table region using the fonts, colors and alignment of
// its cells. With header set, row 0 is drawn as the table header.
func Render(g office.Grid, header bool) string {
	rows := make([][]string, g.Rows())
	for r := range rows {
		rows[r] = make([]string, g.Cols())
		for c := range rows[r] {
			rows[r][c] = g.Cell(r, c).Text()
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240")))

	first := 0
	if header && len(rows) > 0 {
		t = t.Headers(rows[0]...)
		first = 1
	}
	t = t.Rows(rows[first:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			r := row + first
			if row == table.HeaderRow {
				r = 0
			}
			if r < 0 || r >= g.Rows() || col >= g.Cols() {
				return lipgloss.NewStyle()
			}
			return cellStyle(g.Cell(r, col).Format())
		})
	return t.String()
}

func cellStyle(f office.CellFormat) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1).Bold(f.Bold).Italic(f.Italic).Underline(f.Underline)
	if f.Color != nil {
		s = s.Foreground(lipgloss.Color(f.Color.String()))
	}
	if f.Fill != nil {
		s = s.Background(lipgloss.Color(f.Fill.String()))
	}
	if p, ok := positions[f.Align]; ok {
		s = s.Align(p)
	}
	return s
}
