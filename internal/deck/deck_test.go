package deck

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdoc/internal/chart"
	"tabdoc/internal/frame"
	"tabdoc/internal/layout"
	"tabdoc/internal/office"
	"tabdoc/internal/table"
)

const (
	nsP = `xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`
	nsR = `xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`
	nsA = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"`
)

func layoutXML(name, shapes string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout ` + nsP + ` ` + nsA + `><p:cSld name="` + name + `"><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
<p:grpSpPr/>` + shapes + `</p:spTree></p:cSld></p:sldLayout>`
}

func placeholderXML(id, name, phType string, idx int, cx string) string {
	ph := `<p:ph`
	if phType != "" {
		ph += ` type="` + phType + `"`
	}
	if idx > 0 {
		ph += ` idx="` + string(rune('0'+idx)) + `"`
	}
	ph += `/>`
	xfrm := ""
	if cx != "" {
		xfrm = `<a:xfrm><a:off x="0" y="0"/><a:ext cx="` + cx + `" cy="100"/></a:xfrm>`
	}
	return `<p:sp><p:nvSpPr><p:cNvPr id="` + id + `" name="` + name + `"/><p:cNvSpPr/><p:nvPr>` + ph +
		`</p:nvPr></p:nvSpPr><p:spPr>` + xfrm + `</p:spPr></p:sp>`
}

// templateFixture builds a package whose master lists layout 2 before
// layout 1, with layout 3 not listed and layouts 1 and 3 sharing a name
func templateFixture(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"ppt/presentation.xml": `<?xml version="1.0"?><p:presentation ` + nsP + ` ` + nsR + `>
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst></p:presentation>`,
		"ppt/_rels/presentation.xml.rels": `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>
</Relationships>`,
		"ppt/slideMasters/slideMaster1.xml": `<?xml version="1.0"?><p:sldMaster ` + nsP + ` ` + nsR + `>
<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId2"/><p:sldLayoutId id="2147483650" r:id="rId1"/></p:sldLayoutIdLst></p:sldMaster>`,
		"ppt/slideMasters/_rels/slideMaster1.xml.rels": `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout2.xml"/>
</Relationships>`,
		"ppt/slideLayouts/slideLayout1.xml": layoutXML("Report",
			placeholderXML("2", "Title 1", "title", 0, "")+
				placeholderXML("3", "Content Placeholder 2", "", 1, "7200000")),
		"ppt/slideLayouts/slideLayout2.xml": layoutXML("Cover",
			placeholderXML("2", "Title 1", "ctrTitle", 0, "")+
				`<p:sp><p:nvSpPr><p:cNvPr id="9" name="Logo"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr/></p:sp>`),
		"ppt/slideLayouts/slideLayout3.xml": layoutXML("Report",
			placeholderXML("2", "Table Placeholder 1", "tbl", 1, "3600000")+
				`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="4" name="Chart Placeholder 2"/><p:cNvGraphicFramePr/><p:nvPr><p:ph type="chart" idx="2"/></p:nvPr></p:nvGraphicFramePr>`+
				`<p:xfrm><a:off x="0" y="0"/><a:ext cx="720000" cy="100"/></p:xfrm></p:graphicFrame>`),
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestOpenReaderLayoutOrder(t *testing.T) {
	data := templateFixture(t)
	p, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, l := range p.Layouts() {
		names = append(names, l.Name())
	}
	assert.Equal(t, []string{"Cover", "Report", "Report"}, names)

	cover := p.layouts[0]
	require.Len(t, cover.placeholders, 1)
	assert.Equal(t, "ctrTitle", cover.placeholders[0].Type())

	report := p.layouts[1]
	require.Len(t, report.placeholders, 2)
	content := report.placeholders[1]
	assert.Equal(t, "Content Placeholder 2", content.Name())
	assert.Equal(t, "obj", content.Type())
	assert.Equal(t, 1, content.Idx())
	assert.InDelta(t, 20.0, content.Width(), 1e-9)

	last := p.layouts[2]
	require.Len(t, last.placeholders, 2)
	assert.Equal(t, "chart", last.placeholders[1].Type())
	assert.InDelta(t, 2.0, last.placeholders[1].Width(), 1e-9)

	l, err := p.Layout("Report")
	require.NoError(t, err)
	assert.Same(t, last, l)
	assert.Same(t, last, layout.MapLayouts(p)["Report"].(*Layout))

	_, err = p.Layout("report")
	assert.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.pptx")
	require.NoError(t, os.WriteFile(path, templateFixture(t), 0644))

	p, err := Open(path)
	require.NoError(t, err)
	assert.Len(t, p.Layouts(), 3)
}

func TestOpenRejectsOtherPackages(t *testing.T) {
	_, err := OpenReader(bytes.NewReader([]byte("plain text")), 10)
	assert.ErrorIs(t, err, ErrNotPresentation)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<document/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = OpenReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.ErrorIs(t, err, ErrNotPresentation)
}

func dataset(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New([]string{"north", "south"}, [][]any{{1.5, 2}, {3, 4}}, []any{"Q1", "Q2"})
	require.NoError(t, err)
	return f
}

func TestTablePlaceholder(t *testing.T) {
	p := New()
	l, err := p.Layout("Table")
	require.NoError(t, err)
	slide := p.AddSlide(l)

	title, ok := slide.Shape("Title 1")
	require.True(t, ok)
	_, err = table.NewWriter().Create(title, dataset(t), table.DefaultOptions())
	assert.ErrorIs(t, err, table.ErrNotTable)

	shape, ok := slide.Shape("Table Placeholder 2")
	require.True(t, ok)
	grid, err := table.NewWriter().Create(shape, dataset(t), table.DefaultOptions())
	require.NoError(t, err)

	tbl, ok := shape.(TablePlaceholder).Table()
	require.True(t, ok)
	assert.Same(t, tbl, grid.(*Table))
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, "north", tbl.Cell(0, 1).Text())
	assert.Equal(t, "1.50", tbl.Cell(1, 1).Text())
	assert.Equal(t, "Q2", tbl.Cell(2, 0).Text())
	assert.Equal(t, 0.15, tbl.RowHeight(2))
	assert.True(t, tbl.FirstRow)

	var total float64
	for c := 0; c < tbl.Cols(); c++ {
		total += tbl.ColumnWidth(c)
	}
	assert.InDelta(t, bodyWidth, total, 1e-9)
}

func TestTableMerge(t *testing.T) {
	tbl := newTable(2, 3, 9)
	require.NoError(t, tbl.MergeRow(0, 1, 2))
	assert.Equal(t, 2, tbl.cells[0][1].Span())
	assert.Zero(t, tbl.cells[0][2].Span())
	assert.Equal(t, 1, tbl.cells[1][2].Span())
	assert.Error(t, tbl.MergeRow(0, 2, 3))
}

func TestChartPlaceholder(t *testing.T) {
	p := New()
	l, err := p.Layout("Chart")
	require.NoError(t, err)
	slide := p.AddSlide(l)
	shape, _ := slide.Shape("Chart Placeholder 2")

	opts := chart.DefaultOptions()
	opts.Append = true
	_, err = chart.NewWriter().Create(shape, dataset(t), opts)
	assert.ErrorIs(t, err, chart.ErrNoDataStore)

	opts.Append = false
	ch, err := chart.NewWriter().Create(shape, dataset(t), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, ch.Data().Categories)

	more, err := frame.New([]string{"east"}, [][]any{{5, 6}}, []any{"Q2", "Q3"})
	require.NoError(t, err)
	opts.Append = true
	ch, err = chart.NewWriter().Create(shape, more, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, ch.Data().Categories)
	require.Len(t, ch.Data().Series, 3)
	assert.Equal(t, []float64{1.5, 2, 0}, ch.Data().Series[0].Values)
	assert.Equal(t, []float64{0, 5, 6}, ch.Data().Series[2].Values)

	host := shape.(office.ChartHost)
	current, ok := host.Chart()
	require.True(t, ok)
	assert.Same(t, ch, current)
}

func TestContentPlaceholder(t *testing.T) {
	p := New()
	l, err := p.Layout("Title and Content")
	require.NoError(t, err)
	slide := p.AddSlide(l)
	shape, _ := slide.Shape("Content Placeholder 2")

	_, err = table.NewWriter().Create(shape, dataset(t), table.DefaultOptions())
	require.NoError(t, err)
	_, err = chart.NewWriter().Create(shape, dataset(t), chart.DefaultOptions())
	require.NoError(t, err)

	_, ok := shape.(ContentPlaceholder).Table()
	assert.False(t, ok)
	assert.Len(t, p.Slides(), 1)
}

func TestMapShapes(t *testing.T) {
	l, err := New().Layout("Table")
	require.NoError(t, err)
	shapes := layout.MapShapes(l)
	require.Contains(t, shapes, "Table Placeholder 2")
	assert.Equal(t, "tbl", shapes["Table Placeholder 2"].Type())
}
