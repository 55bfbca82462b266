package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Writer writes generated files to disk, refusing to clobber an existing
// file unless overwrite is set. The existence check is best effort, not
// atomic; two concurrent runs targeting the same path race at the
// filesystem level.
type Writer struct {
	logger zerolog.Logger
}

// NewWriter creates a file writer that reports skips through the logger.
func NewWriter(logger zerolog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write stores content at path, creating missing parent directories.
// Returns false with a nil error when the file exists and overwrite is
// off; skipping is a warning, not a failure.
func (w *Writer) Write(path string, content []byte, overwrite bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !overwrite {
		w.logger.Warn().Str("path", path).Msg("skipped, file already exists")
		return false, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return true, nil
}
