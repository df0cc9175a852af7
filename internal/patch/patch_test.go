package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdoc/internal/office"
	"tabdoc/internal/style"
	"tabdoc/internal/word"
)

func TestAddHyperlink(t *testing.T) {
	d := word.New("links.docx")
	p := d.AddParagraph("Docs: ")

	h, err := AddHyperlink(p, "https://go.dev", "go.dev", HyperlinkOptions{Color: "#0563c1", Underline: true, FontSize: 11})
	require.NoError(t, err)
	assert.Equal(t, "Docs: go.dev", p.Text())

	rel, ok := d.Relationship(h.RID)
	require.True(t, ok)
	assert.True(t, rel.External)
	assert.Equal(t, word.RelHyperlink, rel.Type)
	assert.Equal(t, "https://go.dev", rel.Target)

	require.Len(t, h.Runs, 1)
	run := h.Runs[0]
	assert.Equal(t, "0563C1", run.Color)
	assert.Equal(t, "single", run.Underline)
	assert.Equal(t, 22, run.Size)

	again, err := AddHyperlink(p, "https://go.dev", "again", HyperlinkOptions{})
	require.NoError(t, err)
	assert.Equal(t, h.RID, again.RID)
	assert.Empty(t, again.Runs[0].Underline)
}

func TestAddHyperlinkBadColor(t *testing.T) {
	d := word.New("links.docx")
	p := d.AddParagraph("")
	_, err := AddHyperlink(p, "https://go.dev", "go.dev", HyperlinkOptions{Color: "blue"})
	assert.ErrorIs(t, err, style.ErrColor)
	assert.Empty(t, p.Content())
	assert.Empty(t, d.Relationships())
}

type bareGrid struct{}

func (bareGrid) Rows() int                 { return 1 }
func (bareGrid) Cols() int                 { return 1 }
func (bareGrid) Cell(int, int) office.Cell { return nil }

func TestSetRowHeight(t *testing.T) {
	tbl, err := word.New("t.docx").AddTable(3, 2)
	require.NoError(t, err)
	require.NoError(t, SetRowHeight(tbl, DefaultRowHeight))
	for r := 0; r < 3; r++ {
		assert.Equal(t, DefaultRowHeight, tbl.RowHeight(r))
	}

	assert.ErrorIs(t, SetRowHeight(bareGrid{}, 0.2), ErrUnsupported)
}

func TestFormatCell(t *testing.T) {
	tbl, err := word.New("t.docx").AddTable(1, 1)
	require.NoError(t, err)
	cell := tbl.Cell(0, 0)
	cell.SetFormat(office.CellFormat{Font: "Arial", Size: 9, Align: office.AlignRight})

	require.NoError(t, FormatCell(cell, CellOptions{FontSize: 12, FontColor: "FF0000", FillColor: "#F5F5F5", Bold: true, Margins: "wide"}))
	f := cell.Format()
	assert.Equal(t, "Arial", f.Font)
	assert.Equal(t, 12.0, f.Size)
	assert.True(t, f.Bold)
	assert.Equal(t, style.RGB(255, 0, 0), *f.Color)
	assert.Equal(t, style.GreyLight, *f.Fill)
	assert.Equal(t, 0.15, f.Margins.Left)
	assert.Equal(t, office.AlignRight, f.Align)

	before := cell.Format()
	assert.ErrorIs(t, FormatCell(cell, CellOptions{FillColor: "#12"}), style.ErrColor)
	assert.ErrorIs(t, FormatCell(cell, CellOptions{Margins: "huge"}), style.ErrMargins)
	assert.Equal(t, before, cell.Format())
}

func TestSetMargins(t *testing.T) {
	tbl, err := word.New("t.docx").AddTable(1, 1)
	require.NoError(t, err)
	cell := tbl.Cell(0, 0)

	require.NoError(t, SetMargins(cell, "none"))
	assert.Equal(t, style.Margins{}, *cell.Format().Margins)
	assert.ErrorIs(t, SetMargins(cell, "loose"), style.ErrMargins)
}
