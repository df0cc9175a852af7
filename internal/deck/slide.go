package deck

import (
	"fmt"

	"tabdoc/internal/excel"
	"tabdoc/internal/office"
)

type Slide struct {
	layout *Layout
	shapes []office.Shape
}

func (s *Slide) Layout() *Layout { return s.layout }

func (s *Slide) Shapes() []office.Shape {
	return append([]office.Shape(nil), s.shapes...)
}

// Shape finds a shape by exact name, the last one winning on duplicates
func (s *Slide) Shape(name string) (office.Shape, bool) {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if s.shapes[i].Name() == name {
			return s.shapes[i], true
		}
	}
	return nil, false
}

// Shape is a placeholder instantiated on a slide. What it can hold depends
// on the placeholder type: see TablePlaceholder, ChartPlaceholder and
// ContentPlaceholder.
type Shape struct {
	ph    *Placeholder
	text  string
	table *Table
	chart *excel.Chart
}

func newShape(ph *Placeholder) office.Shape {
	s := &Shape{ph: ph}
	switch ph.typ {
	case "tbl":
		return TablePlaceholder{s}
	case "chart":
		return ChartPlaceholder{s}
	case "obj":
		return ContentPlaceholder{s}
	}
	return s
}

func (s *Shape) Name() string { return s.ph.name }
func (s *Shape) Idx() int     { return s.ph.idx }
func (s *Shape) Type() string { return s.ph.typ }

func (s *Shape) Text() string        { return s.text }
func (s *Shape) SetText(text string) { s.text = text }

// Table returns the table the shape holds
func (s *Shape) Table() (*Table, bool) {
	return s.table, s.table != nil
}

func (s *Shape) insertTable(rows, cols int) (office.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid table size %dx%d", rows, cols)
	}
	s.table = newTable(rows, cols, s.ph.width)
	s.chart = nil
	return s.table, nil
}

func (s *Shape) insertChart(kind office.ChartKind, data *office.ChartData) (office.Chart, error) {
	c, err := excel.NewChart(kind, data)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chart data: %w", err)
	}
	s.chart = c
	s.table = nil
	return c, nil
}

func (s *Shape) existingChart() (office.Chart, bool) {
	if s.chart == nil {
		return nil, false
	}
	return s.chart, true
}

// TablePlaceholder is a "tbl" placeholder
type TablePlaceholder struct{ *Shape }

func (p TablePlaceholder) InsertTable(rows, cols int) (office.Grid, error) {
	return p.insertTable(rows, cols)
}

// ChartPlaceholder is a "chart" placeholder. Its charts keep their data
// in an embedded workbook.
type ChartPlaceholder struct{ *Shape }

func (p ChartPlaceholder) InsertChart(kind office.ChartKind, data *office.ChartData) (office.Chart, error) {
	return p.insertChart(kind, data)
}

func (p ChartPlaceholder) Chart() (office.Chart, bool) { return p.existingChart() }

// ContentPlaceholder is an "obj" placeholder, which takes either a table
// or a chart
type ContentPlaceholder struct{ *Shape }

func (p ContentPlaceholder) InsertTable(rows, cols int) (office.Grid, error) {
	return p.insertTable(rows, cols)
}

func (p ContentPlaceholder) InsertChart(kind office.ChartKind, data *office.ChartData) (office.Chart, error) {
	return p.insertChart(kind, data)
}

func (p ContentPlaceholder) Chart() (office.Chart, bool) { return p.existingChart() }
