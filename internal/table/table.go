// Package table writes a dataset into a table region of a host document.
//
// Every cell is rendered to text before the first write, so a dataset that
// cannot be rendered, or a region of the wrong size, leaves the host
// untouched.
package table

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"tabdoc/internal/frame"
	"tabdoc/internal/logger"
	"tabdoc/internal/numfmt"
	"tabdoc/internal/office"
	"tabdoc/internal/style"
)

var (
	ErrDimension = errors.New("table region size mismatch")
	ErrNotTable  = errors.New("shape cannot hold a table")
	ErrType      = errors.New("value has no text form")
	ErrMerge     = errors.New("invalid header merge")
)

// minimum auto width of a column in centimetres
const minColumnWidth = 4.0

// Writer is stateless and can be reused across documents
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Create asks target to make a region sized for ds and fills it
func (w *Writer) Create(target office.Shape, ds frame.Dataset, opts Options) (office.Grid, error) {
	host, ok := target.(office.TableHost)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotTable, target.Name())
	}

	p, err := newPlan(ds, opts)
	if err != nil {
		return nil, err
	}

	grid, err := host.InsertTable(p.rows, p.cols)
	if err != nil {
		return nil, fmt.Errorf("failed to insert table into %q: %w", target.Name(), err)
	}
	if err := p.check(grid); err != nil {
		return nil, err
	}
	if err := p.apply(grid); err != nil {
		return nil, err
	}

	logger.Debug("Created table", "shape", target.Name(), "rows", p.rows, "cols", p.cols)
	return grid, nil
}

// Fill writes ds into a region the caller already sized
func (w *Writer) Fill(region office.Grid, ds frame.Dataset, opts Options) (office.Grid, error) {
	p, err := newPlan(ds, opts)
	if err != nil {
		return nil, err
	}
	if err := p.check(region); err != nil {
		return nil, err
	}
	if err := p.apply(region); err != nil {
		return nil, err
	}

	logger.Debug("Filled table", "rows", p.rows, "cols", p.cols)
	return region, nil
}

// Dimensions reports the region size Create would request for ds
func Dimensions(ds frame.Dataset, opts Options) (rows, cols int) {
	rows = ds.Len()
	cols = len(ds.Columns())
	if opts.ColumnTotals {
		rows++
	}
	if opts.RowTotals {
		cols++
	}
	if opts.Header {
		rows++
	}
	if opts.Index {
		cols++
	}
	return rows, cols
}

type plan struct {
	opts    Options
	rows    int
	cols    int
	text    [][]string
	formats [][]office.CellFormat
	merges  []Merge
}

func newPlan(ds frame.Dataset, opts Options) (*plan, error) {
	f := frame.Materialize(ds)
	var err error
	if opts.ColumnTotals {
		if f, err = f.WithColumnTotals(opts.ColumnTotalsLabel, opts.ColumnAggs); err != nil {
			return nil, fmt.Errorf("failed to total columns: %w", err)
		}
	}
	if opts.RowTotals {
		if f, err = f.WithRowTotals(opts.RowTotalsLabel, opts.RowAggs); err != nil {
			return nil, fmt.Errorf("failed to total rows: %w", err)
		}
	}

	var margins *style.Margins
	if opts.Margins != "" {
		m, err := style.MarginPreset(opts.Margins)
		if err != nil {
			return nil, err
		}
		margins = &m
	}

	columns := f.Columns()
	kinds := frame.Kinds(f)
	specs, err := columnSpecs(columns, kinds, opts)
	if err != nil {
		return nil, err
	}

	hdr, idx := 0, 0
	if opts.Header {
		hdr = 1
	}
	if opts.Index {
		idx = 1
	}

	p := &plan{
		opts: opts,
		rows: f.Len() + hdr,
		cols: len(columns) + idx,
	}
	p.text = make([][]string, p.rows)
	p.formats = make([][]office.CellFormat, p.rows)
	for r := range p.text {
		p.text[r] = make([]string, p.cols)
		p.formats[r] = make([]office.CellFormat, p.cols)
	}

	align := func(c int) office.Align {
		if a, ok := opts.ColumnAlign[columns[c]]; ok {
			return a
		}
		if kinds[c] == frame.Numeric {
			return opts.NumericAlign
		}
		return opts.TextAlign
	}

	if opts.Header {
		if opts.Index {
			name := opts.IndexName
			if name == "" {
				name = f.IndexName()
			}
			if name == "" {
				name = opts.HeaderName
			}
			p.set(0, 0, name, withMargins(opts.HeaderFormat, margins))
		}
		for c, name := range columns {
			format := withMargins(opts.HeaderFormat, margins)
			format.Align = align(c)
			p.set(0, c+idx, name, format)
		}
	}

	index := f.Index()
	for i := 0; i < f.Len(); i++ {
		r := i + hdr
		if opts.Index {
			label, err := textValue(index[i])
			if err != nil {
				return nil, fmt.Errorf("index row %d: %w", i, err)
			}
			format := withMargins(opts.IndexFormat, margins)
			if opts.BandedRows {
				band := style.Band(i)
				format.Fill = &band
			}
			p.set(r, 0, label, format)
		}

		for c := range columns {
			var text string
			v := f.Value(i, c)
			if kinds[c] == frame.Numeric {
				if v == nil {
					v = 0
				}
				text, err = specs[c].Format(v)
			} else {
				text, err = textValue(v)
			}
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i, columns[c], err)
			}

			format := withMargins(opts.TextFormat, margins)
			format.Align = align(c)
			if opts.BandedRows {
				band := style.Band(i)
				format.Fill = &band
			}
			p.set(r, c+idx, text, format)
		}
	}

	if opts.ColumnTotals && f.Len() > 0 {
		for c := idx; c < p.cols; c++ {
			p.formats[p.rows-1][c] = withTotals(p.formats[p.rows-1][c], opts.TotalsFormat)
		}
	}
	if opts.RowTotals {
		for r := hdr; r < p.rows; r++ {
			p.formats[r][p.cols-1] = withTotals(p.formats[r][p.cols-1], opts.TotalsFormat)
		}
	}

	if len(opts.MergeHeader) > 0 && opts.Header {
		for _, m := range opts.MergeHeader {
			if m.Start < 0 || m.End < m.Start || m.End >= len(columns) {
				return nil, fmt.Errorf("%w: columns %d..%d of %d", ErrMerge, m.Start, m.End, len(columns))
			}
			p.merges = append(p.merges, Merge{Start: m.Start + idx, End: m.End + idx, Align: m.Align})
		}
	}

	return p, nil
}

func (p *plan) set(r, c int, text string, format office.CellFormat) {
	if text == "" {
		text = " "
	}
	p.text[r][c] = text
	p.formats[r][c] = format
}

func (p *plan) check(grid office.Grid) error {
	if grid.Rows() != p.rows || grid.Cols() != p.cols {
		return fmt.Errorf("%w: region is %dx%d, dataset needs %dx%d", ErrDimension, grid.Rows(), grid.Cols(), p.rows, p.cols)
	}
	return nil
}

func (p *plan) apply(grid office.Grid) error {
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			cell := grid.Cell(r, c)
			cell.SetText(p.text[r][c])
			cell.SetFormat(p.formats[r][c])
		}
	}

	if merger, ok := grid.(office.Merger); ok {
		for _, m := range p.merges {
			if err := merger.MergeRow(0, m.Start, m.End); err != nil {
				return fmt.Errorf("failed to merge header: %w", err)
			}
			if m.Align != office.AlignDefault {
				cell := grid.Cell(0, m.Start)
				format := cell.Format()
				format.Align = m.Align
				cell.SetFormat(format)
			}
		}
	}

	if sizer, ok := grid.(office.RowSizer); ok && p.opts.RowHeight > 0 {
		for r := 0; r < p.rows; r++ {
			if err := sizer.SetRowHeight(r, p.opts.RowHeight); err != nil {
				return fmt.Errorf("failed to set row height: %w", err)
			}
		}
	}

	if sizer, ok := grid.(office.ColumnSizer); ok && p.opts.AutoWidth {
		if err := p.fitColumns(sizer); err != nil {
			return err
		}
	}

	if h, ok := grid.(office.Highlighter); ok {
		h.SetHighlight(p.opts.HighlightFirstRow, p.opts.HighlightFirstCol, p.opts.HighlightLastRow)
	}
	return nil
}

// fitColumns sizes each column from its longest text, proportional to the
// font size, then stretches or shrinks all columns to the table width
func (p *plan) fitColumns(sizer office.ColumnSizer) error {
	tableWidth := sizer.Width()
	maxWidth := tableWidth / 2
	if maxWidth < minColumnWidth {
		maxWidth = minColumnWidth
	}

	first := 0
	if p.opts.Header && p.rows > 1 {
		first = 1
	}

	widths := make([]float64, p.cols)
	var total float64
	for c := 0; c < p.cols; c++ {
		size := p.opts.TextFormat.Size
		if p.opts.Index && c == 0 {
			size = p.opts.IndexFormat.Size
		}
		if size <= 0 {
			size = 9
		}

		longest := 0
		for r := first; r < p.rows; r++ {
			if n := utf8.RuneCountInString(p.text[r][c]); n > longest {
				longest = n
			}
		}
		cm := float64(longest) * 2 / size
		cm = math.Ceil(math.Min(math.Max(cm, minColumnWidth), maxWidth))
		widths[c] = cm
		total += cm
	}

	scale := 1.0
	if tableWidth > 0 && total > 0 {
		scale = tableWidth / total
	}
	for c, cm := range widths {
		if err := sizer.SetColumnWidth(c, cm*scale); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

func columnSpecs(columns []string, kinds []frame.Kind, opts Options) ([]numfmt.Spec, error) {
	layout := opts.NumberFormat
	if layout == "" {
		layout = "%v"
	}
	global, err := numfmt.Parse(layout)
	if err != nil {
		return nil, err
	}

	specs := make([]numfmt.Spec, len(columns))
	for c, name := range columns {
		specs[c] = global
		if kinds[c] != frame.Numeric {
			continue
		}
		if s, ok := opts.NumberFormats[name]; ok {
			spec, err := numfmt.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", name, err)
			}
			specs[c] = spec
		}
	}
	return specs, nil
}

func withMargins(f office.CellFormat, m *style.Margins) office.CellFormat {
	if f.Margins == nil && m != nil {
		margins := *m
		f.Margins = &margins
	}
	return f
}

func withTotals(f, totals office.CellFormat) office.CellFormat {
	f.Font = totals.Font
	f.Size = totals.Size
	f.Bold = totals.Bold
	f.Italic = totals.Italic
	f.Color = totals.Color
	return f
}

// textValue renders non-numeric cells and index labels
func textValue(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return " ", nil
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case bool:
		if t {
			return "true", nil
		}
		return "false", nil
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02"), nil
		}
		return t.Format("2006-01-02 15:04:05"), nil
	case fmt.Stringer:
		return t.String(), nil
	case error:
		return t.Error(), nil
	}
	if numfmt.IsNumber(v) {
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("%w: %T", ErrType, v)
}
