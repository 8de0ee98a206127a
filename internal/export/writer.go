package export

import (
	"os"
	"path/filepath"

	headlinererrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

// ResolvePath returns the file the artifact is written to. An empty path
// means DefaultFileName in the working directory; an existing directory
// receives DefaultFileName inside it.
func ResolvePath(path string) string {
	if path == "" {
		return DefaultFileName
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, DefaultFileName)
	}
	return path
}

// WriteFile writes data to the resolved destination atomically and returns
// the path written.
func WriteFile(path string, data []byte) (string, error) {
	target := ResolvePath(path)

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", headlinererrors.NewExportError(target, err)
		}
	}

	// Write to temporary file first
	tmpPath := target + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return "", headlinererrors.NewExportError(target, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath) //nolint:errcheck
		return "", headlinererrors.NewExportError(target, err)
	}

	return target, nil
}
