package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdoc/internal/frame"
	"tabdoc/internal/table"
)

func TestCanvasRender(t *testing.T) {
	f, err := frame.FromRows([]string{"region", "sales"}, [][]any{{"north", 1234.5}, {"south", 99}})
	require.NoError(t, err)

	c := NewCanvas("preview", 20)
	assert.Empty(t, c.Render())

	opts := table.DefaultOptions()
	opts.Index = false
	_, err = table.NewWriter().Create(c, f, opts)
	require.NoError(t, err)

	out := c.Render()
	for _, want := range []string{"region", "sales", "north", "1,234.50", "99.00"} {
		assert.Contains(t, out, want)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, header, separator, two rows, bottom border
	assert.Len(t, lines, 6)
	assert.Less(t, strings.Index(out, "region"), strings.Index(out, "north"))

	var total float64
	for col := 0; col < c.Grid().Cols(); col++ {
		total += c.Grid().ColumnWidth(col)
	}
	assert.InDelta(t, 20, total, 1e-9)
}

func TestRenderWithoutHeader(t *testing.T) {
	g := NewGrid(2, 1, 0)
	g.Cell(0, 0).SetText("a")
	g.Cell(1, 0).SetText("b")

	out := Render(g, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
}
