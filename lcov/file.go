package lcov

import (
	"fmt"
	"os"

	"lcovtrace/coverage"
)

// WriteFile serializes cov into a tracefile at path, truncating any
// previous artifact. The file is closed on every exit path and the close
// error is checked, so a nil return means the artifact is fully on disk.
func (p *Printer) WriteFile(path string, cov *coverage.Coverage) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tracefile: %w", err)
	}
	if !p.Print(file, cov) {
		_ = file.Close()
		return fmt.Errorf("failed to write tracefile %s", path)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close tracefile: %w", err)
	}
	return nil
}
