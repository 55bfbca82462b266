package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_CreatesFileAndParents(t *testing.T) {
	// Test: Missing parent directories are created before writing
	w := NewWriter(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "lib", "genui", "catalog", "product_card.dart")

	wrote, err := w.Write(path, []byte("content"), false)

	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestWriter_SkipsExistingFile(t *testing.T) {
	// Test: An existing file is skipped without error when overwrite is off
	w := NewWriter(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "item.dart")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	wrote, err := w.Write(path, []byte("replacement"), false)

	require.NoError(t, err)
	assert.False(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestWriter_OverwriteReplacesFile(t *testing.T) {
	// Test: overwrite permits replacing an existing file
	w := NewWriter(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "item.dart")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	wrote, err := w.Write(path, []byte("replacement"), true)

	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "replacement", string(data))
}

func TestWriter_BareFilename(t *testing.T) {
	// Test: A path without directories writes into the working directory
	w := NewWriter(zerolog.Nop())
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldWd)
	require.NoError(t, os.Chdir(tmpDir))

	wrote, err := w.Write("widget.dart", []byte("x"), false)

	require.NoError(t, err)
	assert.True(t, wrote)
	_, err = os.Stat(filepath.Join(tmpDir, "widget.dart"))
	assert.NoError(t, err)
}
