// Package excel hosts tables and charts in workbooks through excelize.
package excel

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"tabdoc/internal/logger"
)

type Editor struct {
	file     *excelize.File
	filepath string
	// charts waiting for Save; excelize draws a chart from the cells as
	// they are when AddChart runs
	charts []*ChartSheet
	styles map[string]int
}

func newEditor(file *excelize.File, filepath string) *Editor {
	return &Editor{
		file:     file,
		filepath: filepath,
		styles:   make(map[string]int),
	}
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return newEditor(file, filepath), nil
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	return newEditor(excelize.NewFile(), "")
}

// OpenOrCreateFile opens an existing file or creates a new one if it doesn't exist
func OpenOrCreateFile(filepath string) (*Editor, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return newEditor(excelize.NewFile(), filepath), nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking file status: %w", err)
	}
	return OpenFile(filepath)
}

// EnsureSheet creates sheet unless the workbook already has it
func (e *Editor) EnsureSheet(sheet string) error {
	idx, err := e.file.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("invalid sheet name %q: %w", sheet, err)
	}
	if idx >= 0 {
		return nil
	}
	if _, err := e.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	return nil
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// GetColumnHeaders returns all column headers (first row)
func (e *Editor) GetColumnHeaders(sheet string) ([]string, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get first row: %w", err)
	}
	if len(rows) == 0 {
		return []string{}, nil
	}
	return rows[0], nil
}

// GetCellValue returns the value in a specific cell
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value any) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// GetAllRows returns all rows from a sheet
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// Save saves the Excel file to the original filepath
func (e *Editor) Save() error {
	if e.filepath == "" {
		return fmt.Errorf("no filepath specified, use SaveAs instead")
	}
	return e.SaveAs(e.filepath)
}

// SaveAs draws pending charts and saves the Excel file with a new name
func (e *Editor) SaveAs(filepath string) error {
	if err := e.commitCharts(); err != nil {
		return err
	}
	e.filepath = filepath
	if err := e.file.SaveAs(filepath); err != nil {
		return fmt.Errorf("failed to save %s: %w", filepath, err)
	}
	logger.Info("Saved workbook", "path", filepath)
	return nil
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

func (e *Editor) commitCharts() error {
	for _, cs := range e.charts {
		if err := cs.commit(); err != nil {
			return err
		}
	}
	e.charts = nil
	return nil
}

// SetCellText stores value as a string cell. Table text is already rendered
// with its number format, so it is not parsed back into a number.
func (e *Editor) SetCellText(sheet, cell string, value string) error {
	return e.file.SetCellStr(sheet, cell, value)
}

// style returns a cached style id for s keyed by its description
func (e *Editor) style(key string, s *excelize.Style) (int, error) {
	if id, ok := e.styles[key]; ok {
		return id, nil
	}
	id, err := e.file.NewStyle(s)
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	e.styles[key] = id
	return id, nil
}

// cellName converts 0-based coordinates relative to anchor into a cell reference
func cellName(anchorCol, anchorRow, row, col int) string {
	name, _ := excelize.CoordinatesToCellName(anchorCol+col, anchorRow+row)
	return name
}

// quoteSheet makes sheet safe inside a range reference
func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
