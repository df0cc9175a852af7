package chart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdoc/internal/frame"
	"tabdoc/internal/office"
	"tabdoc/internal/style"
)

type mapStore struct {
	cells  map[[2]int]string
	writes int
}

func newMapStore() *mapStore {
	return &mapStore{cells: map[[2]int]string{}}
}

func (s *mapStore) Value(row, col int) (string, bool) {
	v, ok := s.cells[[2]int{row, col}]
	return v, ok
}

func (s *mapStore) Set(row, col int, v any) error {
	s.cells[[2]int{row, col}] = fmt.Sprint(v)
	s.writes++
	return nil
}

func (s *mapStore) Extent() (int, int) {
	rows, cols := 0, 0
	for k := range s.cells {
		rows = max(rows, k[0]+1)
		cols = max(cols, k[1]+1)
	}
	return rows, cols
}

type fakeChart struct {
	kind      office.ChartKind
	data      *office.ChartData
	store     *mapStore
	format    office.ChartFormat
	refreshed int
}

func (c *fakeChart) Kind() office.ChartKind         { return c.kind }
func (c *fakeChart) Data() *office.ChartData        { return c.data }
func (c *fakeChart) Format() office.ChartFormat     { return c.format }
func (c *fakeChart) SetFormat(f office.ChartFormat) { c.format = f }
func (c *fakeChart) DataStore() (office.DataStore, bool) {
	if c.store == nil {
		return nil, false
	}
	return c.store, true
}

func (c *fakeChart) Refresh() error {
	c.refreshed++
	rows, cols := c.store.Extent()
	data := &office.ChartData{}
	for r := 1; r < rows; r++ {
		v, _ := c.store.Value(r, 0)
		data.Categories = append(data.Categories, v)
	}
	for col := 1; col < cols; col++ {
		name, _ := c.store.Value(0, col)
		data.Series = append(data.Series, office.Series{Name: name, Values: make([]float64, len(data.Categories))})
	}
	c.data = data
	return nil
}

type fakeHost struct {
	chart *fakeChart
}

func (h *fakeHost) Name() string { return "Chart Placeholder 2" }

func (h *fakeHost) InsertChart(kind office.ChartKind, data *office.ChartData) (office.Chart, error) {
	h.chart = &fakeChart{kind: kind, data: data}
	return h.chart, nil
}

func (h *fakeHost) Chart() (office.Chart, bool) {
	if h.chart == nil {
		return nil, false
	}
	return h.chart, true
}

type textBox struct{}

func (textBox) Name() string { return "Text 1" }

func sales(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New([]string{"north", "south"}, [][]any{{1, nil, 3.5}, {4, 5, 6}}, []any{2021, 2022, 2023})
	require.NoError(t, err)
	return f
}

func TestData(t *testing.T) {
	data, err := Data(sales(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"2021", "2022", "2023"}, data.Categories)
	require.Len(t, data.Series, 2)
	assert.Equal(t, office.Series{Name: "north", Values: []float64{1, 0, 3.5}}, data.Series[0])
	assert.Equal(t, []float64{4, 5, 6}, data.Series[1].Values)
}

func TestDataRejectsText(t *testing.T) {
	f, err := frame.FromRows([]string{"n"}, [][]any{{1}, {"x"}})
	require.NoError(t, err)
	_, err = Data(f)
	assert.ErrorIs(t, err, ErrType)
}

func TestCreateReplacesChart(t *testing.T) {
	h := &fakeHost{}
	ch, err := NewWriter().Create(h, sales(t), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, office.Column, ch.Kind())
	assert.Len(t, ch.Data().Series, 2)

	f := ch.Format()
	assert.True(t, f.Legend)
	assert.Equal(t, "bottom", f.LegendPosition)
	assert.Equal(t, style.FontName, f.TitleFormat.Font)
	require.Len(t, f.Series, 2)
	assert.Equal(t, style.ColorBrewer[1], *f.Series[1].Fill)
	assert.Equal(t, style.White, *f.Series[1].Line)

	opts := DefaultOptions()
	opts.Kind = office.Line
	opts.HighlightSeries = "south"
	ch, err = NewWriter().Create(h, sales(t), opts)
	require.NoError(t, err)
	assert.Same(t, h.chart, ch)
	assert.Equal(t, office.Line, ch.Kind())
	f = ch.Format()
	assert.Equal(t, 30000, f.Series[0].LineWidth)
	assert.Equal(t, 60000, f.Series[1].LineWidth)
	assert.Nil(t, f.Series[0].Fill)
}

func TestCreatePie(t *testing.T) {
	opts := DefaultOptions()
	opts.Kind = office.Pie
	opts.Palette = style.Microsoft[:2]
	opts.CategoryAxisTitle = "year"
	opts.GapWidth = new(int)

	f, err := frame.New([]string{"share"}, [][]any{{1, 2, 3}}, []any{"a", "b", "c"})
	require.NoError(t, err)
	ch, err := NewWriter().Create(&fakeHost{}, f, opts)
	require.NoError(t, err)

	format := ch.Format()
	assert.Equal(t, []style.Color{style.Microsoft[0], style.Microsoft[1], style.Microsoft[0]}, format.Series[0].PointFills)
	assert.Empty(t, format.CategoryAxisTitle)
	assert.Nil(t, format.GapWidth)
}

func TestCreateRejectsTextBox(t *testing.T) {
	_, err := NewWriter().Create(textBox{}, sales(t), DefaultOptions())
	assert.ErrorIs(t, err, ErrNotChart)
}

func TestAppendNeedsDataStore(t *testing.T) {
	opts := DefaultOptions()
	opts.Append = true

	_, err := NewWriter().Create(&fakeHost{}, sales(t), opts)
	assert.ErrorIs(t, err, ErrNoDataStore)

	h := &fakeHost{chart: &fakeChart{kind: office.Column}}
	_, err = NewWriter().Create(h, sales(t), opts)
	assert.ErrorIs(t, err, ErrNoDataStore)
}

// existing data fills columns 0-1 and rows 0-4
func populated() *mapStore {
	s := newMapStore()
	s.cells[[2]int{0, 0}] = "year"
	s.cells[[2]int{0, 1}] = "east"
	for r, year := range []string{"2019", "2020", "2021", "2022"} {
		s.cells[[2]int{r + 1, 0}] = year
		s.cells[[2]int{r + 1, 1}] = "0"
	}
	return s
}

func TestAppendLeavesPopulatedCells(t *testing.T) {
	store := populated()
	before := make(map[[2]int]string, len(store.cells))
	for k, v := range store.cells {
		before[k] = v
	}

	h := &fakeHost{chart: &fakeChart{kind: office.Column, store: store}}
	opts := DefaultOptions()
	opts.Append = true
	ch, err := NewWriter().Create(h, sales(t), opts)
	require.NoError(t, err)

	for k, v := range before {
		assert.Equal(t, v, store.cells[k], "cell %v", k)
	}

	assert.Equal(t, "north", store.cells[[2]int{0, 2}])
	assert.Equal(t, "south", store.cells[[2]int{0, 3}])
	// 2021 and 2022 already exist, 2023 takes the first empty row
	assert.Equal(t, "1", store.cells[[2]int{3, 2}])
	assert.Equal(t, "5", store.cells[[2]int{4, 3}])
	assert.Equal(t, "2023", store.cells[[2]int{5, 0}])
	assert.Equal(t, "3.5", store.cells[[2]int{5, 2}])
	_, ok := store.Value(1, 2)
	assert.False(t, ok)

	assert.Equal(t, 1, h.chart.refreshed)
	assert.Len(t, ch.Data().Series, 3)
	assert.Len(t, ch.Format().Series, 3)
}

func TestAppendSkipsSparseColumns(t *testing.T) {
	store := populated()
	store.cells[[2]int{3, 2}] = "0"

	f, err := frame.New([]string{"west"}, [][]any{{7}}, []any{"2019"})
	require.NoError(t, err)

	h := &fakeHost{chart: &fakeChart{kind: office.Column, store: store}}
	opts := DefaultOptions()
	opts.Append = true
	_, err = NewWriter().Create(h, f, opts)
	require.NoError(t, err)

	assert.Equal(t, "west", store.cells[[2]int{0, 3}])
	assert.Equal(t, "7", store.cells[[2]int{1, 3}])
	assert.Equal(t, "0", store.cells[[2]int{3, 2}])
}

func TestAppendIntoEmptyStore(t *testing.T) {
	store := newMapStore()
	h := &fakeHost{chart: &fakeChart{kind: office.Column, store: store}}
	f, err := sales(t).WithIndex("year", []any{2021, 2022, 2023})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Append = true
	_, err = NewWriter().Create(h, f, opts)
	require.NoError(t, err)

	assert.Equal(t, "year", store.cells[[2]int{0, 0}])
	assert.Equal(t, "2021", store.cells[[2]int{1, 0}])
	assert.Equal(t, "north", store.cells[[2]int{0, 1}])
	assert.Equal(t, "6", store.cells[[2]int{3, 2}])
}

func TestAppendDuplicateCategoriesWriteNothing(t *testing.T) {
	store := populated()
	h := &fakeHost{chart: &fakeChart{kind: office.Column, store: store}}
	f, err := frame.New([]string{"west"}, [][]any{{1, 2}}, []any{"2030", "2030"})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Append = true
	_, err = NewWriter().Create(h, f, opts)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NotErrorIs(t, err, ErrOccupied)
	assert.EqualError(t, err, `duplicate category "2030"`)
	assert.Zero(t, store.writes)
	assert.Zero(t, h.chart.refreshed)
}
