package table

import (
	"tabdoc/internal/frame"
	"tabdoc/internal/numfmt"
	"tabdoc/internal/office"
	"tabdoc/internal/style"
)

// Merge spans header cells over data columns Start..End (inclusive,
// counted without the index column)
type Merge struct {
	Start int
	End   int
	Align office.Align
}

type Options struct {
	Header bool
	// Index writes the row index as a leading column
	Index bool
	// IndexName labels the corner cell, falling back to the dataset's
	// index name and then to HeaderName
	IndexName  string
	HeaderName string

	// NumberFormat applies to numeric columns without an entry in NumberFormats
	NumberFormat  string
	NumberFormats map[string]string

	HeaderFormat office.CellFormat
	IndexFormat  office.CellFormat
	TextFormat   office.CellFormat
	TotalsFormat office.CellFormat

	NumericAlign office.Align
	TextAlign    office.Align
	ColumnAlign  map[string]office.Align

	// Margins names a style margin preset; "" leaves cell margins alone
	Margins    string
	BandedRows bool
	// RowHeight in inches, 0 leaves row heights alone
	RowHeight float64
	AutoWidth bool

	HighlightFirstRow bool
	HighlightFirstCol bool
	HighlightLastRow  bool

	ColumnTotals      bool
	RowTotals         bool
	ColumnTotalsLabel string
	RowTotalsLabel    string
	ColumnAggs        map[string]frame.Agg
	RowAggs           map[string]frame.Agg

	MergeHeader []Merge
}

// DefaultOptions mirrors the slide table defaults: header and index on,
// 9pt Calibri, bold header, two-decimal grouped numbers, tight margins
// and banded rows.
func DefaultOptions() Options {
	return Options{
		Header:            true,
		Index:             true,
		NumberFormat:      numfmt.Default,
		HeaderFormat:      office.CellFormat{Font: style.FontName, Size: 9, Bold: true},
		IndexFormat:       office.CellFormat{Font: style.FontName, Size: 9},
		TextFormat:        office.CellFormat{Font: style.FontName, Size: 9},
		TotalsFormat:      office.CellFormat{Font: style.FontName, Size: 9},
		NumericAlign:      office.AlignCenter,
		TextAlign:         office.AlignLeft,
		Margins:           "tight",
		BandedRows:        true,
		RowHeight:         0.15,
		AutoWidth:         true,
		HighlightFirstRow: true,
		ColumnTotalsLabel: "Total",
		RowTotalsLabel:    "Total",
	}
}

// DocumentOptions are the defaults for word-processing tables: 8pt text,
// no banding and row heights left to the document
func DocumentOptions() Options {
	opts := DefaultOptions()
	opts.HeaderFormat.Size = 8
	opts.IndexFormat.Size = 8
	opts.TextFormat.Size = 8
	opts.TotalsFormat.Size = 8
	opts.BandedRows = false
	opts.RowHeight = 0
	return opts
}
