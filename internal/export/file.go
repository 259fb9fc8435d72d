package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FilePrefix starts every export file name.
const FilePrefix = "teamSimResults"

// FileName returns the export file name for a run. The run ID makes every
// name unique, so repeated runs never overwrite each other.
func FileName(runID uuid.UUID, f Format) string {
	return fmt.Sprintf("%s-%s%s", FilePrefix, runID, f.Ext())
}

// WriteFile exports t into dir and returns the written path. A partially
// written file is removed on failure.
func WriteFile(dir string, runID uuid.UUID, f Format, t Table) (string, error) {
	w, err := WriterFor(f)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(runID, f))
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	bw := bufio.NewWriter(file)
	writeErr := w.Write(bw, t)
	if writeErr == nil {
		writeErr = bw.Flush()
	}
	closeErr := file.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, writeErr)
	}
	return path, nil
}
