package coverage

import "fmt"

// Unknown marks a block or branch number that the instrumentation could not
// resolve.
const Unknown = -1

// BranchCoverage describes one branch of a conditional. BlockNumber and
// BranchNumber locate the branch inside the function's control-flow graph;
// Unknown in either field means the branch can only be reported by line.
// ExecutionCount is meaningful only when both identifiers are known and the
// branch was executed.
type BranchCoverage struct {
	LineNumber     int
	BlockNumber    int
	BranchNumber   int
	Executed       bool
	ExecutionCount int
}

// NewBranch builds a validated branch fact. A half-known block/branch pair
// is normalized to fully unknown.
func NewBranch(line, block, branch int, executed bool, count int) (BranchCoverage, error) {
	if line <= 0 {
		return BranchCoverage{}, fmt.Errorf("branch line number must be positive, got %d", line)
	}
	if count < 0 {
		return BranchCoverage{}, fmt.Errorf("branch execution count must not be negative, got %d", count)
	}
	if block < 0 || branch < 0 {
		block, branch = Unknown, Unknown
	}
	return BranchCoverage{
		LineNumber:     line,
		BlockNumber:    block,
		BranchNumber:   branch,
		Executed:       executed,
		ExecutionCount: count,
	}, nil
}

// IdentifiersKnown reports whether both the block and branch numbers are
// resolved.
func (b BranchCoverage) IdentifiersKnown() bool {
	return b.BlockNumber >= 0 && b.BranchNumber >= 0
}
