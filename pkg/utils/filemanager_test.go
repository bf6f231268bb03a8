package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExport(t *testing.T) {
	base := t.TempDir()
	fm := NewFileManager(filepath.Join(base, "out"), filepath.Join(base, "arch"))

	path, err := fm.WriteExport("export.txt", "PNL\nENDPNL")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "out", "export.txt"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PNL\nENDPNL", string(got))

	// The archive copy carries identical content.
	archived, err := os.ReadFile(filepath.Join(base, "arch", "export.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(got), string(archived))
}

func TestWriteExportWithoutArchive(t *testing.T) {
	base := t.TempDir()
	fm := NewFileManager(filepath.Join(base, "out"), "")

	path, err := fm.WriteExport("export.txt", "content")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteErrorLog(t *testing.T) {
	base := t.TempDir()
	fm := NewFileManager(filepath.Join(base, "out"), "")

	path, err := fm.WriteErrorLog([]string{"first", "second"})
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "errors_"))
	assert.True(t, strings.HasSuffix(name, ".log"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(got))
}

// Back-to-back failed runs must not overwrite each other's logs.
func TestWriteErrorLogUniqueNames(t *testing.T) {
	base := t.TempDir()
	fm := NewFileManager(filepath.Join(base, "out"), "")

	first, err := fm.WriteErrorLog([]string{"a"})
	require.NoError(t, err)
	second, err := fm.WriteErrorLog([]string{"b"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
