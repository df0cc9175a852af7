package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tabdoc/internal/logger"
	"tabdoc/internal/office"
)

// Chart is a chart whose data lives in a worksheet Store, the way
// presentation charts carry an embedded workbook
type Chart struct {
	kind   office.ChartKind
	data   *office.ChartData
	store  *Store
	format office.ChartFormat
}

// NewChart writes data into a fresh in-memory workbook and returns a chart over it
func NewChart(kind office.ChartKind, data *office.ChartData) (*Chart, error) {
	store, err := NewStore()
	if err != nil {
		return nil, err
	}
	return newChart(kind, data, store)
}

func newChart(kind office.ChartKind, data *office.ChartData, store *Store) (*Chart, error) {
	if err := store.Write(data); err != nil {
		return nil, err
	}
	c := &Chart{kind: kind, store: store}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Chart) Kind() office.ChartKind     { return c.kind }
func (c *Chart) Data() *office.ChartData    { return c.data }
func (c *Chart) Format() office.ChartFormat { return c.format }

func (c *Chart) SetFormat(f office.ChartFormat) { c.format = f }

func (c *Chart) DataStore() (office.DataStore, bool) {
	return c.store, true
}

// Workbook is the workbook holding the chart data
func (c *Chart) Workbook() *Editor {
	return c.store.editor
}

func (c *Chart) Refresh() error {
	data, err := c.store.ChartData()
	if err != nil {
		return err
	}
	c.data = data
	return nil
}

// ChartSheet hosts one native chart on a worksheet. The chart data sits
// at A1 of the same sheet and the chart is drawn at anchor on Save.
type ChartSheet struct {
	editor *Editor
	sheet  string
	anchor string
	chart  *Chart
	queued bool
}

func (e *Editor) ChartSheet(sheet, anchor string) (*ChartSheet, error) {
	if _, _, err := excelize.CellNameToCoordinates(anchor); err != nil {
		return nil, fmt.Errorf("invalid anchor %q: %w", anchor, err)
	}
	if err := e.EnsureSheet(sheet); err != nil {
		return nil, err
	}
	return &ChartSheet{editor: e, sheet: sheet, anchor: anchor}, nil
}

func (cs *ChartSheet) Name() string {
	return cs.sheet + "!" + cs.anchor
}

// InsertChart replaces the chart and its data on the sheet
func (cs *ChartSheet) InsertChart(kind office.ChartKind, data *office.ChartData) (office.Chart, error) {
	store, err := cs.editor.Store(cs.sheet)
	if err != nil {
		return nil, err
	}
	if err := store.Clear(); err != nil {
		return nil, err
	}
	c, err := newChart(kind, data, store)
	if err != nil {
		return nil, err
	}
	cs.chart = c
	if !cs.queued {
		cs.editor.charts = append(cs.editor.charts, cs)
		cs.queued = true
	}
	return c, nil
}

func (cs *ChartSheet) Chart() (office.Chart, bool) {
	if cs.chart == nil {
		return nil, false
	}
	return cs.chart, true
}

func (cs *ChartSheet) commit() error {
	cs.queued = false
	if cs.chart == nil {
		return nil
	}
	spec, err := excelChart(cs.chart)
	if err != nil {
		return err
	}
	// The sheet holds one chart at anchor; a reopened workbook still has the old drawing
	if err := cs.editor.file.DeleteChart(cs.sheet, cs.anchor); err != nil {
		return fmt.Errorf("failed to remove chart at %s: %w", cs.Name(), err)
	}
	if err := cs.editor.file.AddChart(cs.sheet, cs.anchor, spec); err != nil {
		return fmt.Errorf("failed to add chart to %s: %w", cs.Name(), err)
	}
	logger.Debug("Drew chart", "sheet", cs.sheet, "anchor", cs.anchor, "series", len(spec.Series))
	return nil
}

var chartTypes = map[office.ChartKind]excelize.ChartType{
	office.Column:   excelize.Col,
	office.Bar:      excelize.Bar,
	office.Line:     excelize.Line,
	office.Pie:      excelize.Pie,
	office.Doughnut: excelize.Doughnut,
	office.Area:     excelize.Area,
	office.Scatter:  excelize.Scatter,
}

var legendPositions = map[string]string{
	"bottom":    "bottom",
	"top":       "top",
	"left":      "left",
	"right":     "right",
	"corner":    "top_right",
	"top_right": "top_right",
}

const emuPerPoint = 12700

// excelChart converts a chart into an excelize chart over its store.
// Per-point pie colors are left to the workbook's vary-colors default.
func excelChart(c *Chart) (*excelize.Chart, error) {
	kind, ok := chartTypes[c.kind]
	if !ok {
		return nil, fmt.Errorf("unsupported chart type %q", c.kind)
	}
	rows, cols := c.store.Extent()
	if rows < 2 {
		return nil, fmt.Errorf("%w: chart has no categories", office.ErrChartData)
	}

	f := c.format
	spec := &excelize.Chart{
		Type:      kind,
		Dimension: excelize.ChartDimension{Width: 480, Height: 290},
	}

	for col := 1; col < cols; col++ {
		if _, ok := c.store.Value(0, col); !ok {
			continue
		}
		name, categories, values := c.store.seriesRanges(col, rows)
		series := excelize.ChartSeries{Name: name, Categories: categories, Values: values}
		if i := len(spec.Series); i < len(f.Series) {
			sf := f.Series[i]
			color := sf.Fill
			if color == nil {
				color = sf.Line
			}
			if color != nil {
				series.Fill = excelize.Fill{Type: "pattern", Color: []string{color.Hex()}, Pattern: 1}
			}
			if sf.LineWidth > 0 {
				series.Line.Width = float64(sf.LineWidth) / emuPerPoint
			}
		}
		spec.Series = append(spec.Series, series)
	}
	if len(spec.Series) == 0 {
		return nil, fmt.Errorf("%w: chart has no series", office.ErrChartData)
	}

	if f.Title != "" {
		spec.Title = []excelize.RichTextRun{{Text: f.Title, Font: font(f.TitleFormat)}}
	}
	spec.Legend.Position = "none"
	if f.Legend {
		spec.Legend.Position = "bottom"
		if p, ok := legendPositions[f.LegendPosition]; ok {
			spec.Legend.Position = p
		}
	}
	spec.PlotArea.ShowVal = f.DataLabels
	if f.NumberFormat != "" {
		spec.PlotArea.NumFmt = excelize.ChartNumFmt{CustomNumFmt: f.NumberFormat}
		spec.YAxis.NumFmt = excelize.ChartNumFmt{CustomNumFmt: f.NumberFormat}
	}
	if c.kind.HasAxes() {
		if f.CategoryAxisTitle != "" {
			spec.XAxis.Title = []excelize.RichTextRun{{Text: f.CategoryAxisTitle, Font: font(f.AxisTitleFormat)}}
		}
		if f.ValueAxisTitle != "" {
			spec.YAxis.Title = []excelize.RichTextRun{{Text: f.ValueAxisTitle, Font: font(f.AxisTitleFormat)}}
		}
		spec.XAxis.Font = *font(f.AxisFormat)
		spec.YAxis.Font = *font(f.AxisFormat)
	}
	return spec, nil
}

func font(t office.TextFormat) *excelize.Font {
	f := &excelize.Font{Family: t.Font, Size: t.Size, Bold: t.Bold}
	if t.Color != nil {
		f.Color = t.Color.Hex()
	}
	return f
}
