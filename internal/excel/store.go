package excel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"tabdoc/internal/office"
)

// Store is a chart data store on a worksheet, anchored at A1. It tracks
// which cells hold a value so a stored zero or empty string still counts
// as populated.
type Store struct {
	editor *Editor
	sheet  string
	filled map[[2]int]bool
}

// NewStore returns a store on a fresh in-memory workbook
func NewStore() (*Store, error) {
	e := CreateNewFile()
	return e.Store(e.file.GetSheetName(0))
}

// Store opens the data store on sheet. Cells already holding text are
// populated.
func (e *Editor) Store(sheet string) (*Store, error) {
	if err := e.EnsureSheet(sheet); err != nil {
		return nil, err
	}
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	s := &Store{editor: e, sheet: sheet, filled: make(map[[2]int]bool)}
	for r, row := range rows {
		for c, v := range row {
			if v != "" {
				s.filled[[2]int{r, c}] = true
			}
		}
	}
	return s, nil
}

// Editor is the workbook behind the store
func (s *Store) Editor() *Editor {
	return s.editor
}

func (s *Store) Sheet() string {
	return s.sheet
}

func (s *Store) Value(row, col int) (string, bool) {
	if !s.filled[[2]int{row, col}] {
		return "", false
	}
	v, err := s.editor.file.GetCellValue(s.sheet, cellName(1, 1, row, col))
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *Store) Set(row, col int, v any) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("invalid data cell %d,%d", row, col)
	}
	if err := s.editor.file.SetCellValue(s.sheet, cellName(1, 1, row, col), v); err != nil {
		return fmt.Errorf("failed to set chart data: %w", err)
	}
	s.filled[[2]int{row, col}] = true
	return nil
}

func (s *Store) Extent() (rows, cols int) {
	for k := range s.filled {
		rows = max(rows, k[0]+1)
		cols = max(cols, k[1]+1)
	}
	return rows, cols
}

// Clear empties every populated cell
func (s *Store) Clear() error {
	for k := range s.filled {
		if err := s.editor.file.SetCellValue(s.sheet, cellName(1, 1, k[0], k[1]), nil); err != nil {
			return fmt.Errorf("failed to clear chart data: %w", err)
		}
	}
	s.filled = make(map[[2]int]bool)
	return nil
}

// Write lays data out in an empty store: the category title and series
// names on row 0, categories down column 0
func (s *Store) Write(data *office.ChartData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if data.CategoryTitle != "" {
		if err := s.Set(0, 0, data.CategoryTitle); err != nil {
			return err
		}
	}
	for r, category := range data.Categories {
		if err := s.Set(r+1, 0, category); err != nil {
			return err
		}
	}
	for c, series := range data.Series {
		if err := s.Set(0, c+1, series.Name); err != nil {
			return err
		}
		for r, v := range series.Values {
			if err := s.Set(r+1, c+1, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ChartData reads the store back. Every column right of the categories
// with a populated header is a series; empty value cells read as zero.
func (s *Store) ChartData() (*office.ChartData, error) {
	rows, cols := s.Extent()
	data := &office.ChartData{}
	data.CategoryTitle, _ = s.Value(0, 0)

	var categoryRows []int
	for r := 1; r < rows; r++ {
		if category, ok := s.Value(r, 0); ok {
			data.Categories = append(data.Categories, category)
			categoryRows = append(categoryRows, r)
		}
	}

	for c := 1; c < cols; c++ {
		name, ok := s.Value(0, c)
		if !ok {
			continue
		}
		values := make([]float64, len(categoryRows))
		for i, r := range categoryRows {
			text, ok := s.Value(r, c)
			if !ok || strings.TrimSpace(text) == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %q in %s", office.ErrChartData, text, cellName(1, 1, r, c))
			}
			values[i] = v
		}
		data.Series = append(data.Series, office.Series{Name: name, Values: values})
	}
	return data, nil
}

// seriesRanges returns absolute range references for the series in
// column col, covering data rows 1 through rows-1
func (s *Store) seriesRanges(col, rows int) (name, categories, values string) {
	sheet := quoteSheet(s.sheet)
	ref := func(row, col int) string {
		cell, _ := excelize.CoordinatesToCellName(col+1, row+1, true)
		return cell
	}
	name = sheet + "!" + ref(0, col)
	categories = sheet + "!" + ref(1, 0) + ":" + ref(rows-1, 0)
	values = sheet + "!" + ref(1, col) + ":" + ref(rows-1, col)
	return name, categories, values
}
