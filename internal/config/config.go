package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tabdoc/internal/chart"
	"tabdoc/internal/logger"
	"tabdoc/internal/numfmt"
	"tabdoc/internal/office"
	"tabdoc/internal/style"
	"tabdoc/internal/table"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Table  TableConfig  `toml:"table"`
	Chart  ChartConfig  `toml:"chart"`
	Output OutputConfig `toml:"output"`
	Browse BrowseConfig `toml:"browse"`
	Log    LogConfig    `toml:"log"`
}

type TableConfig struct {
	Header        bool              `toml:"header"`
	Index         bool              `toml:"index"`
	NumberFormat  string            `toml:"number_format"`
	NumberFormats map[string]string `toml:"number_formats"`
	Margins       string            `toml:"margins"`
	BandedRows    bool              `toml:"banded_rows"`
	RowHeight     float64           `toml:"row_height"`
	AutoWidth     bool              `toml:"auto_width"`
	Font          string            `toml:"font"`
	TextSize      float64           `toml:"text_size"`
	HeaderSize    float64           `toml:"header_size"`
	HeaderBold    bool              `toml:"header_bold"`

	// HeaderColor and HeaderTextColor are hex colours, "" keeps the host default
	HeaderColor     string `toml:"header_color"`
	HeaderTextColor string `toml:"header_text_color"`
	ColumnTotals    bool   `toml:"column_totals"`
	RowTotals       bool   `toml:"row_totals"`
}

type ChartConfig struct {
	Type           string `toml:"type"`
	Title          string `toml:"title"`
	Legend         bool   `toml:"legend"`
	LegendPosition string `toml:"legend_position"`
	DataLabels     bool   `toml:"data_labels"`
	NumberFormat   string `toml:"number_format"`
	LineWidth      int    `toml:"line_width"`
	Palette        string `toml:"palette"`
}

type OutputConfig struct {
	Directory   string `toml:"directory"`
	Sheet       string `toml:"sheet"`
	TableAnchor string `toml:"table_anchor"`
	ChartSheet  string `toml:"chart_sheet"`
	ChartAnchor string `toml:"chart_anchor"`
}

type BrowseConfig struct {
	PerPage int `toml:"per_page"`
}

type LogConfig struct {
	Directory string `toml:"directory"`
	Level     string `toml:"level"`
}

// Default is the configuration written when no config file exists yet
func Default() *Config {
	tableOpts := table.DefaultOptions()
	chartOpts := chart.DefaultOptions()
	return &Config{
		Table: TableConfig{
			Header:       tableOpts.Header,
			Index:        tableOpts.Index,
			NumberFormat: tableOpts.NumberFormat,
			Margins:      tableOpts.Margins,
			BandedRows:   tableOpts.BandedRows,
			RowHeight:    tableOpts.RowHeight,
			AutoWidth:    tableOpts.AutoWidth,
			Font:         style.FontName,
			TextSize:     tableOpts.TextFormat.Size,
			HeaderSize:   tableOpts.HeaderFormat.Size,
			HeaderBold:   tableOpts.HeaderFormat.Bold,
		},
		Chart: ChartConfig{
			Type:           string(chartOpts.Kind),
			Legend:         chartOpts.Legend,
			LegendPosition: chartOpts.LegendPosition,
			DataLabels:     chartOpts.DataLabels,
			LineWidth:      chartOpts.LineWidth,
			Palette:        "colorbrewer",
		},
		Output: OutputConfig{
			Directory:   "data/output",
			Sheet:       "Table",
			TableAnchor: "A1",
			ChartSheet:  "Chart",
			ChartAnchor: "E2",
		},
		Browse: BrowseConfig{PerPage: 15},
		Log:    LogConfig{Directory: "logs", Level: "info"},
	}
}

// LoadConfig loads configuration from the specified config file path,
// writing the defaults there first when the file does not exist
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		defaultConfig := Default()
		if err := SaveConfig(configPath, defaultConfig); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	// Keys missing from the file keep their default values
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	if config.Browse.PerPage <= 0 {
		config.Browse.PerPage = 15
	}

	logger.Info("Loaded configuration", "path", configPath)
	return config, nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}

// Options converts the [table] section into writer options
func (c TableConfig) Options() (table.Options, error) {
	opts := table.DefaultOptions()
	opts.Header = c.Header
	opts.Index = c.Index
	opts.Margins = c.Margins
	opts.BandedRows = c.BandedRows
	opts.RowHeight = c.RowHeight
	opts.AutoWidth = c.AutoWidth
	opts.ColumnTotals = c.ColumnTotals
	opts.RowTotals = c.RowTotals

	if c.NumberFormat != "" {
		if _, err := numfmt.Parse(c.NumberFormat); err != nil {
			return opts, fmt.Errorf("table.number_format: %w", err)
		}
		opts.NumberFormat = c.NumberFormat
	}
	for column, format := range c.NumberFormats {
		if _, err := numfmt.Parse(format); err != nil {
			return opts, fmt.Errorf("table.number_formats.%s: %w", column, err)
		}
	}
	opts.NumberFormats = c.NumberFormats

	if c.Margins != "" {
		if _, err := style.MarginPreset(c.Margins); err != nil {
			return opts, fmt.Errorf("table.margins: %w", err)
		}
	}

	for _, f := range []*office.CellFormat{&opts.IndexFormat, &opts.TextFormat, &opts.TotalsFormat} {
		if c.Font != "" {
			f.Font = c.Font
		}
		if c.TextSize > 0 {
			f.Size = c.TextSize
		}
	}
	if c.Font != "" {
		opts.HeaderFormat.Font = c.Font
	}
	if c.HeaderSize > 0 {
		opts.HeaderFormat.Size = c.HeaderSize
	}
	opts.HeaderFormat.Bold = c.HeaderBold

	if c.HeaderColor != "" {
		fill, err := style.ParseColor(c.HeaderColor)
		if err != nil {
			return opts, fmt.Errorf("table.header_color: %w", err)
		}
		opts.HeaderFormat.Fill = &fill
	}
	if c.HeaderTextColor != "" {
		color, err := style.ParseColor(c.HeaderTextColor)
		if err != nil {
			return opts, fmt.Errorf("table.header_text_color: %w", err)
		}
		opts.HeaderFormat.Color = &color
	}
	return opts, nil
}

// Options converts the [chart] section into writer options
func (c ChartConfig) Options() (chart.Options, error) {
	opts := chart.DefaultOptions()
	kind, err := office.ParseChartKind(c.Type)
	if err != nil {
		return opts, fmt.Errorf("chart.type: %w", err)
	}
	opts.Kind = kind
	opts.Title = c.Title
	opts.Legend = c.Legend
	if c.LegendPosition != "" {
		opts.LegendPosition = c.LegendPosition
	}
	opts.DataLabels = c.DataLabels
	opts.NumberFormat = c.NumberFormat
	if c.LineWidth > 0 {
		opts.LineWidth = c.LineWidth
	}
	opts.Palette = style.Palette(c.Palette)
	return opts, nil
}

// SlogLevel maps the [log] level name to a slog level, defaulting to info
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
