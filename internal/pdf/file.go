package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// SaveFile writes a file named name inside dir through write. The content
// appears under its final name only once it is complete; on failure no
// partial file is left behind. It returns the final path.
func SaveFile(dir, name string, write func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if writeErr := write(tmp); writeErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", writeErr
	}
	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temporary file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, filePerm); chmodErr != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("setting permissions on %q: %w", tmpPath, chmodErr)
	}

	final := filepath.Join(dir, name)
	if renameErr := os.Rename(tmpPath, final); renameErr != nil {
		_ = os.Remove(tmpPath) // Clean up temp file on error
		return "", fmt.Errorf("renaming to %q: %w", final, renameErr)
	}
	return final, nil
}
