package frame

import (
	"fmt"
	"math"

	"tabdoc/internal/numfmt"
)

// Agg names an aggregation used for totals
type Agg string

const (
	Sum   Agg = "sum"
	Mean  Agg = "mean"
	Min   Agg = "min"
	Max   Agg = "max"
	Count Agg = "count"
)

func (a Agg) apply(values []float64) (float64, error) {
	switch a {
	case "", Sum:
		var s float64
		for _, v := range values {
			s += v
		}
		return s, nil
	case Mean:
		if len(values) == 0 {
			return 0, nil
		}
		s, _ := Sum.apply(values)
		return s / float64(len(values)), nil
	case Min, Max:
		if len(values) == 0 {
			return 0, nil
		}
		out := values[0]
		for _, v := range values[1:] {
			if a == Min {
				out = math.Min(out, v)
			} else {
				out = math.Max(out, v)
			}
		}
		return out, nil
	case Count:
		return float64(len(values)), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrAggregation, a)
}

// WithColumnTotals appends a row labelled label that aggregates every
// numeric column. aggs overrides the default sum per column name.
// Missing values count as zero; text columns get a missing cell.
func (f *Frame) WithColumnTotals(label string, aggs map[string]Agg) (*Frame, error) {
	for name := range aggs {
		if f.columnIndex(name) < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
	}

	kinds := Kinds(f)
	out := f.clone()
	out.index = append(out.index, label)
	for c, name := range f.columns {
		if kinds[c] != Numeric {
			out.data[c] = append(out.data[c], nil)
			continue
		}
		total, err := aggs[name].apply(floats(f.data[c]))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		out.data[c] = append(out.data[c], total)
	}
	return out, nil
}

// WithRowTotals appends a column labelled label that aggregates the
// numeric cells of each row. aggs is keyed by the row label as printed
// with %v and overrides the default sum.
func (f *Frame) WithRowTotals(label string, aggs map[string]Agg) (*Frame, error) {
	kinds := Kinds(f)
	totals := make([]any, f.Len())
	for r := range totals {
		var values []float64
		for c := range f.columns {
			if kinds[c] == Numeric {
				values = append(values, float(f.data[c][r]))
			}
		}
		key := fmt.Sprint(f.index[r])
		total, err := aggs[key].apply(values)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", key, err)
		}
		totals[r] = total
	}

	out := f.clone()
	out.columns = append(out.columns, label)
	out.data = append(out.data, totals)
	return out, nil
}

func floats(values []any) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float(v)
	}
	return out
}

func float(v any) float64 {
	f, _ := numfmt.Float(v)
	return f
}
