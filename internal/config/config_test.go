package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "./archive", cfg.ArchiveDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3, cfg.AeroHeaderRow)
	assert.Equal(t, 3, cfg.AeroFallbackSkipRows)
	assert.Equal(t, 5, cfg.AvioSkipRows)
	assert.Equal(t, "CAI198/01JUL TZL PART1", cfg.FlightDesignator)
	assert.Equal(t, "-AYT025Y", cfg.FlightCode)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_dir: /tmp/exports
log_level: debug
avio_skip_rows: 7
flight_code: "-XYZ001A"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/exports", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7, cfg.AvioSkipRows)
	assert.Equal(t, "-XYZ001A", cfg.FlightCode)

	// Unset options still get their defaults.
	assert.Equal(t, "./archive", cfg.ArchiveDir)
	assert.Equal(t, 3, cfg.AeroHeaderRow)
	assert.Equal(t, "CAI198/01JUL TZL PART1", cfg.FlightDesignator)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
