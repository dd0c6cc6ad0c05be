package coverage

import "fmt"

// LineCoverage records the execution count of one instrumented line. An
// empty Checksum means no checksum was recorded for the line.
type LineCoverage struct {
	LineNumber     int
	ExecutionCount int
	Checksum       string
}

// NewLine builds a validated line fact with no checksum.
func NewLine(line, count int) (LineCoverage, error) {
	return NewLineWithChecksum(line, count, "")
}

// NewLineWithChecksum builds a validated line fact carrying a checksum.
func NewLineWithChecksum(line, count int, checksum string) (LineCoverage, error) {
	if line <= 0 {
		return LineCoverage{}, fmt.Errorf("line number must be positive, got %d", line)
	}
	if count < 0 {
		return LineCoverage{}, fmt.Errorf("line execution count must not be negative, got %d", count)
	}
	return LineCoverage{LineNumber: line, ExecutionCount: count, Checksum: checksum}, nil
}
