package chart

import (
	"tabdoc/internal/office"
	"tabdoc/internal/style"
)

type Options struct {
	Kind office.ChartKind
	// Append extends the chart already in the shape instead of replacing it
	Append bool

	Title       string
	TitleFormat office.TextFormat

	Legend         bool
	LegendPosition string
	LegendInLayout bool
	LegendFormat   office.TextFormat

	DataLabels        bool
	DataLabelPosition string
	// DataLabelRotate turns labels vertical
	DataLabelRotate bool
	DataLabelFormat office.TextFormat
	// NumberFormat is an Excel number format code for labels and the value axis
	NumberFormat string

	CategoryAxisTitle string
	ValueAxisTitle    string
	AxisTitleFormat   office.TextFormat
	AxisFormat        office.TextFormat

	// HighlightSeries doubles the line width of the named line series
	HighlightSeries string
	// LineWidth in EMU
	LineWidth int
	GapWidth  *int
	Overlap   *int

	Palette []style.Color
	// Font is used by every text format that does not name one
	Font string
}

func DefaultOptions() Options {
	return Options{
		Kind:            office.Column,
		TitleFormat:     office.TextFormat{Size: 12},
		Legend:          true,
		LegendPosition:  "bottom",
		LegendFormat:    office.TextFormat{Size: 10},
		DataLabels:      true,
		DataLabelFormat: office.TextFormat{Size: 8},
		AxisTitleFormat: office.TextFormat{Size: 10},
		AxisFormat:      office.TextFormat{Size: 10},
		LineWidth:       30000,
		Palette:         style.ColorBrewer,
		Font:            style.FontName,
	}
}
