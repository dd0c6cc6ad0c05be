package lcov

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"lcovtrace/coverage"
)

// Dumper writes successive coverage snapshots as numbered <index>.lcov
// files inside a dump directory, the way a long-lived test run flushes
// periodic dumps for later collection.
type Dumper struct {
	printer   *Printer
	dumpDir   string
	dumpIndex int
}

// NewDumper builds a dumper over dumpDir, creating the directory if needed.
// A nil printer gets the default logger.
func NewDumper(printer *Printer, dumpDir string) (*Dumper, error) {
	if printer == nil {
		printer = NewPrinter(nil)
	}
	if err := os.MkdirAll(dumpDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create dump directory: %w", err)
	}
	return &Dumper{printer: printer, dumpDir: dumpDir}, nil
}

// Reset removes all files from the dump directory and rewinds the index.
func (d *Dumper) Reset() error {
	dirEntries, err := os.ReadDir(d.dumpDir)
	if err != nil {
		return fmt.Errorf("failed to list dump directory: %w", err)
	}
	for _, entry := range dirEntries {
		_ = os.Remove(filepath.Join(d.dumpDir, entry.Name()))
	}
	d.dumpIndex = 0
	return nil
}

// Dump writes cov as the next numbered tracefile and returns its path. The
// index advances only on success, so a failed dump is retried under the
// same name.
func (d *Dumper) Dump(cov *coverage.Coverage) (string, error) {
	path := filepath.Join(d.dumpDir, strconv.Itoa(d.dumpIndex)+".lcov")
	if err := d.printer.WriteFile(path, cov); err != nil {
		return "", err
	}
	d.dumpIndex++
	return path, nil
}
