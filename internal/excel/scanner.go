package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tabdoc/internal/frame"
	"tabdoc/internal/logger"
)

// ReadFrame loads sheet as a dataset: the first row is the header, numeric
// text becomes numbers and indexColumn, when set, becomes the row index
func (e *Editor) ReadFrame(sheet, indexColumn string) (*frame.Frame, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	f, err := frame.FromRecords(rows, indexColumn)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	logger.Debug("Read sheet", "sheet", sheet, "rows", f.Len(), "columns", len(f.Columns()))
	return f, nil
}

// ScanColumns collects the unique column headers of every sheet of every
// .xlsx file under dir, sorted. Files that fail to open are skipped.
func ScanColumns(dir string) ([]string, error) {
	xlsxFiles, err := getXlsxFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get xlsx files: %w", err)
	}
	if len(xlsxFiles) == 0 {
		logger.Warn("No .xlsx files found", "dir", dir)
		return nil, nil
	}

	uniqueColumns := make(map[string]bool)
	for _, filePath := range xlsxFiles {
		logger.Debug("Scanning file", "file", filepath.Base(filePath))
		if err := scanFileColumns(filePath, uniqueColumns); err != nil {
			logger.Warn("Failed to scan file", "file", filepath.Base(filePath), "error", err)
		}
	}

	columnNames := make([]string, 0, len(uniqueColumns))
	for column := range uniqueColumns {
		columnNames = append(columnNames, column)
	}
	sort.Strings(columnNames)
	logger.Info("Scanned workbooks", "files", len(xlsxFiles), "columns", len(columnNames))
	return columnNames, nil
}

// getXlsxFiles returns all .xlsx files in the specified directory
func getXlsxFiles(dir string) ([]string, error) {
	var xlsxFiles []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.ToLower(filepath.Ext(path)) == ".xlsx" {
			xlsxFiles = append(xlsxFiles, path)
		}
		return nil
	})

	return xlsxFiles, err
}

// scanFileColumns scans all sheets in a single Excel file and adds column names to the set
func scanFileColumns(filePath string, uniqueColumns map[string]bool) error {
	editor, err := OpenFile(filePath)
	if err != nil {
		return err
	}
	defer editor.Close()

	for _, sheetName := range editor.GetSheetNames() {
		headers, err := editor.GetColumnHeaders(sheetName)
		if err != nil {
			logger.Warn("Failed to read headers", "sheet", sheetName, "error", err)
			continue
		}
		for _, header := range headers {
			if trimmed := strings.TrimSpace(header); trimmed != "" {
				uniqueColumns[trimmed] = true
			}
		}
	}
	return nil
}
