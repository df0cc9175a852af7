package office

import (
	"errors"
	"fmt"

	"tabdoc/internal/style"
)

var ErrChartData = errors.New("malformed chart data")

type ChartKind string

const (
	Column   ChartKind = "column"
	Bar      ChartKind = "bar"
	Line     ChartKind = "line"
	Pie      ChartKind = "pie"
	Doughnut ChartKind = "doughnut"
	Area     ChartKind = "area"
	Scatter  ChartKind = "scatter"
)

// ParseChartKind accepts the kind names above; "" means Column
func ParseChartKind(s string) (ChartKind, error) {
	switch k := ChartKind(s); k {
	case "":
		return Column, nil
	case Column, Bar, Line, Pie, Doughnut, Area, Scatter:
		return k, nil
	}
	return "", fmt.Errorf("unknown chart type %q", s)
}

// HasAxes is false for the round chart kinds
func (k ChartKind) HasAxes() bool {
	return k != Pie && k != Doughnut
}

type Series struct {
	Name   string
	Values []float64
}

// ChartData is the category/series content of a chart
type ChartData struct {
	CategoryTitle string
	Categories    []string
	Series        []Series
}

// Validate checks every series has one value per category
func (d *ChartData) Validate() error {
	for _, s := range d.Series {
		if len(s.Values) != len(d.Categories) {
			return fmt.Errorf("%w: series %q has %d values for %d categories", ErrChartData, s.Name, len(s.Values), len(d.Categories))
		}
	}
	return nil
}

// DataStore is the sparse grid behind a chart. Row 0 holds the series
// names, column 0 below it holds the categories. Coordinates are 0-based.
type DataStore interface {
	// Value reports the text of a cell and whether the cell holds a value.
	// A stored zero is a value; a cell never written is not.
	Value(row, col int) (string, bool)
	Set(row, col int, v any) error
	// Extent is one past the last populated row and column
	Extent() (rows, cols int)
}

type SeriesFormat struct {
	Fill      *style.Color
	Line      *style.Color
	LineWidth int // EMU
	// PointFills colors the individual points of pie charts
	PointFills []style.Color
}

type TextFormat struct {
	Font  string
	Size  float64
	Bold  bool
	Color *style.Color
}

// ChartFormat collects the presentation settings of a chart
type ChartFormat struct {
	Title             string
	TitleFormat       TextFormat
	Legend            bool
	LegendPosition    string
	LegendInLayout    bool
	LegendFormat      TextFormat
	DataLabels        bool
	DataLabelPosition string
	DataLabelRotation int // degrees
	DataLabelFormat   TextFormat
	NumberFormat      string // Excel number format code
	CategoryAxisTitle string
	ValueAxisTitle    string
	AxisTitleFormat   TextFormat
	AxisFormat        TextFormat
	GapWidth          *int
	Overlap           *int
	Series            []SeriesFormat
}

// Chart is a materialized chart
type Chart interface {
	Kind() ChartKind
	Data() *ChartData
	// DataStore is false when the chart keeps no editable backing grid
	DataStore() (DataStore, bool)
	// Refresh rebuilds Data from the DataStore
	Refresh() error
	Format() ChartFormat
	SetFormat(f ChartFormat)
}

// ChartHost can materialize a chart and reports the chart it already holds
type ChartHost interface {
	Shape
	// InsertChart replaces any existing chart
	InsertChart(kind ChartKind, data *ChartData) (Chart, error)
	Chart() (Chart, bool)
}
