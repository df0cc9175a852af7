package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"tabdoc/internal/office"
	"tabdoc/internal/style"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "config.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[table]
number_format = "%.1f%%"
header_color = "#1F4E79"

[chart]
type = "line"

[browse]
per_page = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "%.1f%%", cfg.Table.NumberFormat)
	assert.True(t, cfg.Table.Header)
	assert.Equal(t, 9.0, cfg.Table.TextSize)
	assert.Equal(t, "line", cfg.Chart.Type)
	assert.Equal(t, "Chart", cfg.Output.ChartSheet)
	assert.Equal(t, 15, cfg.Browse.PerPage)
}

func TestLoadConfigRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestTableOptions(t *testing.T) {
	cfg := Default().Table
	cfg.Font = "Arial"
	cfg.TextSize = 11
	cfg.HeaderColor = "1F4E79"
	cfg.RowTotals = true

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "Arial", opts.HeaderFormat.Font)
	assert.Equal(t, "Arial", opts.TextFormat.Font)
	assert.Equal(t, 11.0, opts.TextFormat.Size)
	assert.Equal(t, 11.0, opts.IndexFormat.Size)
	assert.Equal(t, 9.0, opts.HeaderFormat.Size)
	assert.True(t, opts.HeaderFormat.Bold)
	require.NotNil(t, opts.HeaderFormat.Fill)
	assert.Equal(t, style.RGB(0x1F, 0x4E, 0x79), *opts.HeaderFormat.Fill)
	assert.Nil(t, opts.HeaderFormat.Color)
	assert.True(t, opts.RowTotals)
}

func TestTableOptionsErrors(t *testing.T) {
	for name, mutate := range map[string]func(*TableConfig){
		"number format": func(c *TableConfig) { c.NumberFormat = "no verb" },
		"column format": func(c *TableConfig) { c.NumberFormats = map[string]string{"a": "%q"} },
		"margins":       func(c *TableConfig) { c.Margins = "enormous" },
		"header colour": func(c *TableConfig) { c.HeaderColor = "blue" },
		"header text":   func(c *TableConfig) { c.HeaderTextColor = "#12" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default().Table
			mutate(&cfg)
			_, err := cfg.Options()
			assert.Error(t, err)
		})
	}
}

func TestChartOptions(t *testing.T) {
	cfg := Default().Chart
	cfg.Type = "pie"
	cfg.Palette = "microsoft"
	cfg.LegendPosition = ""

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, office.Pie, opts.Kind)
	assert.Equal(t, style.Microsoft, opts.Palette)
	assert.Equal(t, "bottom", opts.LegendPosition)
	assert.Equal(t, 30000, opts.LineWidth)

	cfg.Type = "radar"
	_, err = cfg.Options()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{}.SlogLevel())
}
