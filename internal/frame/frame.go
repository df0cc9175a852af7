// Package frame defines the tabular dataset the writers consume and a
// column-oriented Frame that implements it.
package frame

import (
	"errors"
	"fmt"

	"tabdoc/internal/numfmt"
)

var (
	ErrShape         = errors.New("columns and index differ in length")
	ErrUnknownColumn = errors.New("unknown column")
	ErrAggregation   = errors.New("unknown aggregation")
)

// Dataset is the read-only contract every writer is written against:
// ordered named columns, an ordered row index and a per-cell accessor.
// All columns have Len() values and Index() has Len() entries.
type Dataset interface {
	Columns() []string
	IndexName() string
	Index() []any
	Len() int
	// Value returns nil for a missing cell
	Value(row, col int) any
}

// Frame is an immutable in-memory Dataset. Operations that change shape
// return a new Frame.
type Frame struct {
	columns   []string
	indexName string
	index     []any
	data      [][]any // column-major
}

// New builds a frame from column-major data. A nil index numbers the rows from 0.
func New(columns []string, data [][]any, index []any) (*Frame, error) {
	if len(columns) != len(data) {
		return nil, fmt.Errorf("%w: %d column names for %d columns", ErrShape, len(columns), len(data))
	}

	length := len(index)
	if index == nil {
		length = 0
		if len(data) > 0 {
			length = len(data[0])
		}
		index = make([]any, length)
		for i := range index {
			index[i] = i
		}
	}
	for i, col := range data {
		if len(col) != length {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrShape, columns[i], len(col), length)
		}
	}

	return &Frame{
		columns: append([]string(nil), columns...),
		index:   append([]any(nil), index...),
		data:    copyColumns(data),
	}, nil
}

// FromRows builds a frame from row-major records
func FromRows(columns []string, rows [][]any) (*Frame, error) {
	data := make([][]any, len(columns))
	for c := range data {
		data[c] = make([]any, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, r, len(row), len(columns))
		}
		for c, v := range row {
			data[c][r] = v
		}
	}
	return New(columns, data, nil)
}

func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }
func (f *Frame) IndexName() string { return f.indexName }
func (f *Frame) Index() []any      { return append([]any(nil), f.index...) }
func (f *Frame) Len() int          { return len(f.index) }

func (f *Frame) Value(row, col int) any {
	return f.data[col][row]
}

// Column returns a copy of the named column
func (f *Frame) Column(name string) ([]any, error) {
	c := f.columnIndex(name)
	if c < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return append([]any(nil), f.data[c]...), nil
}

// WithIndex returns a copy using values as the row index
func (f *Frame) WithIndex(name string, values []any) (*Frame, error) {
	if len(values) != f.Len() {
		return nil, fmt.Errorf("%w: index has %d values, want %d", ErrShape, len(values), f.Len())
	}
	out := f.clone()
	out.indexName = name
	out.index = append([]any(nil), values...)
	return out, nil
}

// SetIndex moves the named column into the row index
func (f *Frame) SetIndex(column string) (*Frame, error) {
	c := f.columnIndex(column)
	if c < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	out := &Frame{
		indexName: column,
		index:     append([]any(nil), f.data[c]...),
	}
	for i, name := range f.columns {
		if i == c {
			continue
		}
		out.columns = append(out.columns, name)
		out.data = append(out.data, append([]any(nil), f.data[i]...))
	}
	return out, nil
}

// Rename returns a copy with the columns relabelled
func (f *Frame) Rename(columns []string) (*Frame, error) {
	if len(columns) != len(f.columns) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrShape, len(columns), len(f.columns))
	}
	out := f.clone()
	out.columns = append([]string(nil), columns...)
	return out, nil
}

func (f *Frame) columnIndex(name string) int {
	for i, c := range f.columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (f *Frame) clone() *Frame {
	return &Frame{
		columns:   append([]string(nil), f.columns...),
		indexName: f.indexName,
		index:     append([]any(nil), f.index...),
		data:      copyColumns(f.data),
	}
}

func copyColumns(data [][]any) [][]any {
	out := make([][]any, len(data))
	for i, col := range data {
		out[i] = append([]any(nil), col...)
	}
	return out
}

// Kind classifies a column for formatting and alignment
type Kind int

const (
	Text Kind = iota
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "text"
}

// Kinds reports, per column, whether every non-missing value is a number.
// An all-missing column counts as numeric.
func Kinds(ds Dataset) []Kind {
	kinds := make([]Kind, len(ds.Columns()))
	for c := range kinds {
		kinds[c] = Numeric
		for r := 0; r < ds.Len(); r++ {
			v := ds.Value(r, c)
			if v != nil && !numfmt.IsNumber(v) {
				kinds[c] = Text
				break
			}
		}
	}
	return kinds
}

// Materialize copies any Dataset into a Frame
func Materialize(ds Dataset) *Frame {
	if f, ok := ds.(*Frame); ok {
		return f
	}
	cols := ds.Columns()
	data := make([][]any, len(cols))
	for c := range cols {
		data[c] = make([]any, ds.Len())
		for r := range data[c] {
			data[c][r] = ds.Value(r, c)
		}
	}
	return &Frame{
		columns:   cols,
		indexName: ds.IndexName(),
		index:     ds.Index(),
		data:      data,
	}
}
