package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tabdoc/internal/browse"
	"tabdoc/internal/chart"
	"tabdoc/internal/config"
	"tabdoc/internal/deck"
	"tabdoc/internal/excel"
	"tabdoc/internal/frame"
	"tabdoc/internal/layout"
	"tabdoc/internal/logger"
	"tabdoc/internal/preview"
	"tabdoc/internal/table"
)

const configPath = "configs/config.toml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.Directory, cfg.Log.SlogLevel()); err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "layouts":
		runLayouts(cfg, args)
	case "shapes":
		if len(args) < 1 {
			fmt.Println("Error: shapes command requires a layout name")
			fmt.Println("Usage: tabdoc shapes <layout> [template.pptx]")
			return
		}
		runShapes(args)
	case "browse":
		runBrowse(cfg, args)
	case "table":
		if len(args) < 1 {
			fmt.Println("Error: table command requires a csv file")
			fmt.Println("Usage: tabdoc table <input.csv> [index_column]")
			return
		}
		runTable(cfg, args)
	case "chart":
		if len(args) < 1 {
			fmt.Println("Error: chart command requires at least one csv file")
			fmt.Println("Usage: tabdoc chart <input.csv> [more.csv ...]")
			return
		}
		runChart(cfg, args)
	case "preview":
		if len(args) < 1 {
			fmt.Println("Error: preview command requires a csv file")
			fmt.Println("Usage: tabdoc preview <input.csv> [index_column]")
			return
		}
		runPreview(cfg, args)
	case "columns":
		if len(args) < 1 {
			fmt.Println("Error: columns command requires a directory")
			fmt.Println("Usage: tabdoc columns <directory>")
			return
		}
		runColumns(args[0])
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("tabdoc - tables and charts for Office documents")
	fmt.Println("\nUsage:")
	fmt.Println("  tabdoc layouts [template.pptx] [out]    - List template layouts and save them as json or yaml")
	fmt.Println("  tabdoc shapes <layout> [template.pptx]  - List the placeholders of a layout")
	fmt.Println("  tabdoc browse [template.pptx]           - Browse layouts and placeholders interactively")
	fmt.Println("  tabdoc table <input.csv> [index_column] - Write a formatted table into a workbook")
	fmt.Println("  tabdoc chart <input.csv> [more.csv ...] - Chart csv files, appending each after the first")
	fmt.Println("  tabdoc preview <input.csv> [index]      - Print the formatted table in the terminal")
	fmt.Println("  tabdoc columns <directory>              - List the column headers of every workbook")
}

// openTemplate opens a .pptx template, or the built-in layouts when path is empty
func openTemplate(args []string) (*deck.Presentation, error) {
	if len(args) == 0 || args[0] == "" {
		return deck.New(), nil
	}
	return deck.Open(args[0])
}

func runLayouts(cfg *config.Config, args []string) {
	pres, err := openTemplate(args)
	if err != nil {
		logger.Error("Failed to open template", "error", err)
		fmt.Printf("Error opening template: %v\n", err)
		os.Exit(1)
	}

	catalog := layout.Export(pres)
	for _, l := range catalog.Layouts {
		fmt.Printf("%s (%d placeholders)\n", l.Name, len(l.Placeholders))
	}

	if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
		logger.Error("Failed to create output directory", "error", err)
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	outputFile := filepath.Join(cfg.Output.Directory, "layouts.json")
	if len(args) > 1 {
		outputFile = args[1]
	}
	if err := catalog.SaveToFile(outputFile); err != nil {
		logger.Error("Failed to save layouts", "error", err)
		fmt.Printf("Error saving layouts: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Saved %d layouts to: %s\n", len(catalog.Layouts), outputFile)
}

func runShapes(args []string) {
	name := args[0]
	pres, err := openTemplate(args[1:])
	if err != nil {
		logger.Error("Failed to open template", "error", err)
		fmt.Printf("Error opening template: %v\n", err)
		os.Exit(1)
	}

	l, ok := layout.MapLayouts(pres)[name]
	if !ok {
		fmt.Printf("Layout not found: %s\n", name)
		os.Exit(1)
	}
	for _, ph := range l.Placeholders() {
		fmt.Printf("  [%d] %-30s %s\n", ph.Idx(), ph.Name(), ph.Type())
	}
}

func runBrowse(cfg *config.Config, args []string) {
	pres, err := openTemplate(args)
	if err != nil {
		logger.Error("Failed to open template", "error", err)
		fmt.Printf("Error opening template: %v\n", err)
		os.Exit(1)
	}

	picked, err := browse.Run(pres, cfg.Browse.PerPage)
	if err != nil {
		logger.Error("Browse failed", "error", err)
		fmt.Printf("Error running browser: %v\n", err)
		os.Exit(1)
	}
	if picked != nil {
		fmt.Printf("%s / %s (idx %d, %s)\n", picked.Layout, picked.Placeholder, picked.Idx, picked.Type)
	}
}

func readFrame(path string, indexColumn string) *frame.Frame {
	f, err := frame.ReadCSVFile(path, frame.CSVOptions{IndexColumn: indexColumn})
	if err != nil {
		logger.Error("Failed to read csv", "file", path, "error", err)
		fmt.Printf("Error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	return f
}

// outputPath is <output dir>/<input base name>.xlsx
func outputPath(cfg *config.Config, input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(cfg.Output.Directory, base+".xlsx")
}

func openWorkbook(cfg *config.Config, path string) *excel.Editor {
	if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
		logger.Error("Failed to create output directory", "error", err)
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	editor, err := excel.OpenOrCreateFile(path)
	if err != nil {
		logger.Error("Failed to open workbook", "file", path, "error", err)
		fmt.Printf("Error opening workbook: %v\n", err)
		os.Exit(1)
	}
	return editor
}

func tableOptions(cfg *config.Config, args []string) table.Options {
	opts, err := cfg.Table.Options()
	if err != nil {
		logger.Error("Invalid table configuration", "error", err)
		fmt.Printf("Error in [table] config: %v\n", err)
		os.Exit(1)
	}
	opts.Index = opts.Index && len(args) > 1
	return opts
}

func runTable(cfg *config.Config, args []string) {
	indexColumn := ""
	if len(args) > 1 {
		indexColumn = args[1]
	}
	ds := readFrame(args[0], indexColumn)
	opts := tableOptions(cfg, args)

	outputFile := outputPath(cfg, args[0])
	editor := openWorkbook(cfg, outputFile)
	defer editor.Close()

	host, err := editor.SheetHost(cfg.Output.Sheet, cfg.Output.TableAnchor)
	if err != nil {
		logger.Error("Failed to prepare sheet", "error", err)
		fmt.Printf("Error preparing sheet: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Writing table", "input", args[0], "output", outputFile, "rows", ds.Len())
	grid, err := table.NewWriter().Create(host, ds, opts)
	if err == nil {
		err = grid.(*excel.Region).Err()
	}
	if err != nil {
		logger.Error("Failed to write table", "error", err)
		fmt.Printf("Error writing table: %v\n", err)
		os.Exit(1)
	}

	if err := editor.Save(); err != nil {
		logger.Error("Failed to save workbook", "error", err)
		fmt.Printf("Error saving workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(preview.Render(grid, opts.Header))
	fmt.Printf("✓ Table saved to: %s\n", outputFile)
}

func runChart(cfg *config.Config, args []string) {
	opts, err := cfg.Chart.Options()
	if err != nil {
		logger.Error("Invalid chart configuration", "error", err)
		fmt.Printf("Error in [chart] config: %v\n", err)
		os.Exit(1)
	}

	outputFile := outputPath(cfg, args[0])
	editor := openWorkbook(cfg, outputFile)
	defer editor.Close()

	host, err := editor.ChartSheet(cfg.Output.ChartSheet, cfg.Output.ChartAnchor)
	if err != nil {
		logger.Error("Failed to prepare chart sheet", "error", err)
		fmt.Printf("Error preparing chart sheet: %v\n", err)
		os.Exit(1)
	}

	writer := chart.NewWriter()
	for i, input := range args {
		f := readFrame(input, "")
		columns := f.Columns()
		if len(columns) == 0 {
			fmt.Printf("Skipping %s: no columns\n", input)
			continue
		}
		// The first column holds the categories
		ds, err := f.SetIndex(columns[0])
		if err != nil {
			logger.Error("Failed to index csv", "file", input, "error", err)
			fmt.Printf("Error reading %s: %v\n", input, err)
			os.Exit(1)
		}

		opts.Append = i > 0
		if _, err := writer.Create(host, ds, opts); err != nil {
			logger.Error("Failed to chart csv", "file", input, "error", err)
			fmt.Printf("Error charting %s: %v\n", input, err)
			os.Exit(1)
		}
		fmt.Printf("[%d/%d] Charted: %s\n", i+1, len(args), filepath.Base(input))
	}

	if err := editor.Save(); err != nil {
		logger.Error("Failed to save workbook", "error", err)
		fmt.Printf("Error saving workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Chart saved to: %s\n", outputFile)
}

func runPreview(cfg *config.Config, args []string) {
	indexColumn := ""
	if len(args) > 1 {
		indexColumn = args[1]
	}
	ds := readFrame(args[0], indexColumn)
	opts := tableOptions(cfg, args)

	canvas := preview.NewCanvas(filepath.Base(args[0]), 24)
	if _, err := table.NewWriter().Create(canvas, ds, opts); err != nil {
		logger.Error("Failed to build preview", "error", err)
		fmt.Printf("Error building preview: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(preview.Render(canvas.Grid(), opts.Header))
}

func runColumns(dir string) {
	logger.Info("Starting column scan", "directory", dir)
	columns, err := excel.ScanColumns(dir)
	if err != nil {
		logger.Error("Column scan failed", "error", err)
		fmt.Printf("Error scanning workbooks: %v\n", err)
		os.Exit(1)
	}
	for _, column := range columns {
		fmt.Println(column)
	}
	fmt.Printf("✓ Found %d unique columns\n", len(columns))
}
