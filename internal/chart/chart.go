// Package chart turns a dataset into chart data: categories from the row
// index and one series per column. It can replace a chart or append to the
// data store behind an existing one.
package chart

import (
	"errors"
	"fmt"
	"time"

	"tabdoc/internal/frame"
	"tabdoc/internal/logger"
	"tabdoc/internal/numfmt"
	"tabdoc/internal/office"
	"tabdoc/internal/style"
)

var (
	ErrNotChart    = errors.New("shape cannot hold a chart")
	ErrNoDataStore = errors.New("no chart data store to append to")
	ErrType        = errors.New("chart value is not numeric")
	ErrOccupied    = errors.New("chart data cell already populated")
	ErrDuplicate   = errors.New("duplicate category")
)

// rotation applied to vertical data labels, in degrees
const verticalLabels = -90

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Create draws ds into target. In append mode the dataset is added to the
// existing chart data without touching any populated cell.
func (w *Writer) Create(target office.Shape, ds frame.Dataset, opts Options) (office.Chart, error) {
	host, ok := target.(office.ChartHost)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotChart, target.Name())
	}

	data, err := Data(ds)
	if err != nil {
		return nil, err
	}

	if opts.Append {
		return w.append(host, data, opts)
	}

	kind := opts.Kind
	if kind == "" {
		kind = office.Column
	}
	ch, err := host.InsertChart(kind, data)
	if err != nil {
		return nil, fmt.Errorf("failed to insert chart into %q: %w", target.Name(), err)
	}
	ch.SetFormat(Format(kind, data, opts))

	logger.Debug("Created chart", "shape", target.Name(), "type", kind,
		"categories", len(data.Categories), "series", len(data.Series))
	return ch, nil
}

func (w *Writer) append(host office.ChartHost, data *office.ChartData, opts Options) (office.Chart, error) {
	ch, ok := host.Chart()
	if !ok {
		return nil, fmt.Errorf("%w: %q holds no chart", ErrNoDataStore, host.Name())
	}
	store, ok := ch.DataStore()
	if !ok {
		return nil, fmt.Errorf("%w: chart in %q", ErrNoDataStore, host.Name())
	}

	writes, err := planAppend(store, data)
	if err != nil {
		return nil, err
	}
	for _, c := range writes {
		if err := store.Set(c.row, c.col, c.value); err != nil {
			return nil, fmt.Errorf("failed to write chart data: %w", err)
		}
	}
	if err := ch.Refresh(); err != nil {
		return nil, fmt.Errorf("failed to refresh chart: %w", err)
	}

	f := ch.Format()
	f.Series = seriesFormats(ch.Kind(), ch.Data(), opts)
	ch.SetFormat(f)

	logger.Debug("Appended chart data", "shape", host.Name(), "cells", len(writes))
	return ch, nil
}

// Data builds chart data from ds. Missing values become 0.
func Data(ds frame.Dataset) (*office.ChartData, error) {
	columns := ds.Columns()
	data := &office.ChartData{
		CategoryTitle: ds.IndexName(),
		Categories:    make([]string, ds.Len()),
		Series:        make([]office.Series, len(columns)),
	}
	for i, v := range ds.Index() {
		data.Categories[i] = Label(v)
	}
	for c, name := range columns {
		values := make([]float64, ds.Len())
		for r := range values {
			v := ds.Value(r, c)
			if v == nil {
				continue
			}
			f, ok := numfmt.Float(v)
			if !ok {
				return nil, fmt.Errorf("%w: column %q row %d holds %T", ErrType, name, r, v)
			}
			values[r] = f
		}
		data.Series[c] = office.Series{Name: name, Values: values}
	}
	return data, data.Validate()
}

// Label is the category text of an index value
func Label(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format("2006-01-02")
	}
	return fmt.Sprint(v)
}

type cellWrite struct {
	row, col int
	value    any
}

// planAppend lays data out after the populated part of store. Series take
// the first fully empty columns right of the category column; categories
// already in column 0 are reused and new ones take the first fully empty
// rows below the header.
func planAppend(store office.DataStore, data *office.ChartData) ([]cellWrite, error) {
	rows, cols := store.Extent()

	emptyCol := func(c int) bool {
		for r := 0; r < rows; r++ {
			if _, ok := store.Value(r, c); ok {
				return false
			}
		}
		return true
	}
	emptyRow := func(r int) bool {
		for c := 0; c < cols; c++ {
			if _, ok := store.Value(r, c); ok {
				return false
			}
		}
		return true
	}

	known := make(map[string]int)
	for r := 1; r < rows; r++ {
		if v, ok := store.Value(r, 0); ok {
			if _, seen := known[v]; !seen {
				known[v] = r
			}
		}
	}

	var writes []cellWrite
	if _, ok := store.Value(0, 0); !ok && data.CategoryTitle != "" {
		writes = append(writes, cellWrite{0, 0, data.CategoryTitle})
	}

	targets := make([]int, len(data.Categories))
	incoming := make(map[string]bool, len(data.Categories))
	next := 1
	for i, category := range data.Categories {
		if incoming[category] {
			return nil, fmt.Errorf("%w %q", ErrDuplicate, category)
		}
		incoming[category] = true
		if r, ok := known[category]; ok {
			targets[i] = r
			continue
		}
		for !emptyRow(next) {
			next++
		}
		known[category] = next
		targets[i] = next
		writes = append(writes, cellWrite{next, 0, category})
		next++
	}

	col := 1
	for _, s := range data.Series {
		for !emptyCol(col) {
			col++
		}
		writes = append(writes, cellWrite{0, col, s.Name})
		for i, v := range s.Values {
			writes = append(writes, cellWrite{targets[i], col, v})
		}
		col++
	}

	planned := make(map[[2]int]bool, len(writes))
	for _, c := range writes {
		key := [2]int{c.row, c.col}
		if _, ok := store.Value(c.row, c.col); ok || planned[key] {
			return nil, fmt.Errorf("%w: row %d column %d", ErrOccupied, c.row, c.col)
		}
		planned[key] = true
	}
	return writes, nil
}

// Format converts writer options into the chart format for kind
func Format(kind office.ChartKind, data *office.ChartData, opts Options) office.ChartFormat {
	f := office.ChartFormat{
		Title:             opts.Title,
		TitleFormat:       withFont(opts.TitleFormat, opts.Font),
		Legend:            opts.Legend,
		LegendPosition:    opts.LegendPosition,
		LegendInLayout:    opts.LegendInLayout,
		LegendFormat:      withFont(opts.LegendFormat, opts.Font),
		DataLabels:        opts.DataLabels,
		DataLabelPosition: opts.DataLabelPosition,
		DataLabelFormat:   withFont(opts.DataLabelFormat, opts.Font),
		NumberFormat:      opts.NumberFormat,
		Series:            seriesFormats(kind, data, opts),
	}
	if opts.DataLabelRotate {
		f.DataLabelRotation = verticalLabels
	}
	if kind.HasAxes() {
		f.CategoryAxisTitle = opts.CategoryAxisTitle
		f.ValueAxisTitle = opts.ValueAxisTitle
		f.AxisTitleFormat = withFont(opts.AxisTitleFormat, opts.Font)
		f.AxisFormat = withFont(opts.AxisFormat, opts.Font)
	}
	if kind == office.Column || kind == office.Bar {
		f.GapWidth = opts.GapWidth
		f.Overlap = opts.Overlap
	}
	return f
}

func seriesFormats(kind office.ChartKind, data *office.ChartData, opts Options) []office.SeriesFormat {
	palette := opts.Palette
	if len(palette) == 0 {
		palette = style.ColorBrewer
	}
	color := func(i int) *style.Color {
		c := palette[i%len(palette)]
		return &c
	}

	formats := make([]office.SeriesFormat, len(data.Series))
	for i, s := range data.Series {
		switch kind {
		case office.Pie, office.Doughnut:
			points := make([]style.Color, len(data.Categories))
			for p := range points {
				points[p] = *color(p)
			}
			formats[i].PointFills = points
		case office.Line, office.Scatter:
			formats[i].Line = color(i)
			formats[i].LineWidth = opts.LineWidth
			if opts.HighlightSeries != "" && s.Name == opts.HighlightSeries {
				formats[i].LineWidth *= 2
			}
		default:
			white := style.White
			formats[i].Fill = color(i)
			formats[i].Line = &white
		}
	}
	return formats
}

func withFont(f office.TextFormat, font string) office.TextFormat {
	if f.Font == "" {
		f.Font = font
	}
	return f
}
