package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesLogFile(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(dir, slog.LevelInfo))

	Debug("hidden", "key", 1)
	Info("Saved workbook", "path", "out.xlsx")

	data, err := os.ReadFile(filepath.Join(dir, "tabdoc.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="Saved workbook" path=out.xlsx`)
	assert.NotContains(t, string(data), "hidden")
}
