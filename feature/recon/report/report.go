package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"ledger-recon/feature/recon/models"
)

// Write renders a reconciliation result as an indented JSON report.
func Write(w io.Writer, result *models.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteFile renders a reconciliation result to the given path.
func WriteFile(path string, result *models.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	if err := Write(file, result); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
