package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *Frame {
	t.Helper()
	f, err := FromRows([]string{"a", "b"}, [][]any{{1, 2}, {3, 4}})
	require.NoError(t, err)
	return f
}

func TestFromRows(t *testing.T) {
	f := sample(t)
	assert.Equal(t, []string{"a", "b"}, f.Columns())
	assert.Equal(t, []any{0, 1}, f.Index())
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 3, f.Value(1, 0))
	assert.Equal(t, 4, f.Value(1, 1))
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]any{{1, 2}, {3}}, nil)
	assert.ErrorIs(t, err, ErrShape)

	_, err = New([]string{"a"}, [][]any{{1, 2}}, []any{"x"})
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromRows([]string{"a", "b"}, [][]any{{1}})
	assert.ErrorIs(t, err, ErrShape)
}

func TestFrameIsImmutable(t *testing.T) {
	data := [][]any{{1, 2}}
	f, err := New([]string{"a"}, data, nil)
	require.NoError(t, err)
	data[0][0] = 99
	assert.Equal(t, 1, f.Value(0, 0))

	cols := f.Columns()
	cols[0] = "z"
	assert.Equal(t, []string{"a"}, f.Columns())
}

func TestSetIndex(t *testing.T) {
	f, err := FromRows([]string{"year", "sales"}, [][]any{{2020, 1.5}, {2021, 2.5}})
	require.NoError(t, err)

	g, err := f.SetIndex("year")
	require.NoError(t, err)
	assert.Equal(t, "year", g.IndexName())
	assert.Equal(t, []any{2020, 2021}, g.Index())
	assert.Equal(t, []string{"sales"}, g.Columns())

	_, err = f.SetIndex("nope")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestWithIndexAndRename(t *testing.T) {
	f := sample(t)
	g, err := f.WithIndex("letter", []any{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, g.Index())
	assert.Equal(t, []any{0, 1}, f.Index())

	_, err = f.WithIndex("letter", []any{"x"})
	assert.ErrorIs(t, err, ErrShape)

	h, err := f.Rename([]string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, h.Columns())
}

func TestKinds(t *testing.T) {
	f, err := FromRows([]string{"n", "s", "empty"}, [][]any{{1, "x", nil}, {nil, 2, nil}})
	require.NoError(t, err)
	assert.Equal(t, []Kind{Numeric, Text, Numeric}, Kinds(f))
}

func TestColumnTotals(t *testing.T) {
	f, err := FromRows([]string{"name", "a", "b"}, [][]any{{"x", 1, 10.0}, {"y", nil, 30.0}})
	require.NoError(t, err)

	g, err := f.WithColumnTotals("Total", map[string]Agg{"b": Mean})
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	assert.Equal(t, "Total", g.Index()[2])
	assert.Nil(t, g.Value(2, 0))
	assert.Equal(t, 1.0, g.Value(2, 1))
	assert.Equal(t, 20.0, g.Value(2, 2))
	assert.Equal(t, 2, f.Len())

	_, err = f.WithColumnTotals("Total", map[string]Agg{"zzz": Sum})
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = f.WithColumnTotals("Total", map[string]Agg{"a": "median"})
	assert.ErrorIs(t, err, ErrAggregation)
}

func TestRowTotals(t *testing.T) {
	f := sample(t)
	g, err := f.WithRowTotals("Total", map[string]Agg{"1": Max})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "Total"}, g.Columns())
	assert.Equal(t, 3.0, g.Value(0, 2))
	assert.Equal(t, 4.0, g.Value(1, 2))
}

func TestReadCSV(t *testing.T) {
	in := "year,region,sales\n2020,north,1.5\n2021,south,\n"
	f, err := ReadCSV(strings.NewReader(in), CSVOptions{IndexColumn: "year"})
	require.NoError(t, err)
	assert.Equal(t, []string{"region", "sales"}, f.Columns())
	assert.Equal(t, []any{int64(2020), int64(2021)}, f.Index())
	assert.Equal(t, "north", f.Value(0, 0))
	assert.Equal(t, 1.5, f.Value(0, 1))
	assert.Nil(t, f.Value(1, 1))
}

func TestMaterialize(t *testing.T) {
	f := sample(t)
	assert.Same(t, f, Materialize(f))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, int64(42), ParseValue(" 42 "))
	assert.Equal(t, 1000.0, ParseValue("1e3"))
	assert.Nil(t, ParseValue("  "))
	for _, text := range []string{"Nan", "NaN", "inf", "-Inf", "infinity"} {
		assert.Equal(t, text, ParseValue(text))
	}
}

func TestReadCSVKeepsNanAsText(t *testing.T) {
	in := "name,score\nNan,1\nBob,2\n"
	f, err := ReadCSV(strings.NewReader(in), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Nan", f.Value(0, 0))
	assert.Equal(t, "Bob", f.Value(1, 0))
	assert.Equal(t, int64(1), f.Value(0, 1))
}
