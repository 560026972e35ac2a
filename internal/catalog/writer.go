package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Writer serializes a catalog atomically using the temp → rename pattern, so
// a crashed run never leaves a truncated document behind. The destination is
// overwritten wholesale on every run.
type Writer struct {
	outputPath string
}

// NewWriter creates a writer targeting the given output path.
func NewWriter(outputPath string) *Writer {
	return &Writer{outputPath: outputPath}
}

// Write pretty-prints the catalog as a JSON array and moves it into place.
func (w *Writer) Write(catalog Catalog) error {
	if catalog == nil {
		catalog = Catalog{}
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Unique temp name keeps concurrent runs from clobbering each other's
	// in-flight writes.
	tempPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(w.outputPath), uuid.NewString()))
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, w.outputPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
