package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions controls ReadCSV
type CSVOptions struct {
	// IndexColumn moves the named column into the row index
	IndexColumn string
	// Comma defaults to ','
	Comma rune
}

// ReadCSVFile loads a frame from a CSV file whose first record is the header
func ReadCSVFile(path string, opts CSVOptions) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()
	return ReadCSV(file, opts)
}

// ReadCSV loads a frame from CSV. Cells that parse as integers or floats
// become numbers and empty cells become missing values.
func ReadCSV(r io.Reader, opts CSVOptions) (*Frame, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return FromRecords(records, opts.IndexColumn)
}

// FromRecords builds a frame from string records, the first being the header.
// Short records are padded with missing values.
func FromRecords(records [][]string, indexColumn string) (*Frame, error) {
	if len(records) == 0 {
		return New(nil, nil, nil)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	rows := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]any, len(header))
		for c := range header {
			if c < len(record) {
				row[c] = ParseValue(record[c])
			}
		}
		rows = append(rows, row)
	}

	f, err := FromRows(header, rows)
	if err != nil {
		return nil, err
	}
	if indexColumn != "" {
		return f.SetIndex(indexColumn)
	}
	return f, nil
}

// ParseValue turns a cell string into an int64, a finite float64, nil for
// blank text, or the original string
func ParseValue(value string) any {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if intVal, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return intVal
	}
	// NaN and Inf spellings are text, a name like "Nan" must not turn its column numeric
	if floatVal, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(floatVal) && !math.IsInf(floatVal, 0) {
		return floatVal
	}
	return value
}
