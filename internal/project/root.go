package project

import (
	"os"
	"path/filepath"
)

// manifestFile marks the root of a Flutter project.
const manifestFile = "pubspec.yaml"

// FindRoot walks from startDir toward the filesystem root looking for the
// nearest directory containing pubspec.yaml. The second return value is
// false when no ancestor qualifies. Taking the start directory as an
// argument keeps callers testable; use FindRootFromCwd for the common case.
func FindRoot(startDir string) (string, bool) {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, manifestFile)); err == nil {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			return "", false
		}
		dir = parent
	}
}

// FindRootFromCwd is FindRoot anchored at the current working directory.
func FindRootFromCwd() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return FindRoot(cwd)
}
