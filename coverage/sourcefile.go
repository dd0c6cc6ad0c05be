package coverage

import (
	"errors"
	"fmt"
)

// FunctionLine maps a function name to the line its declaration starts on.
type FunctionLine struct {
	Name      string
	StartLine int
}

// FunctionExecution maps a function name to its execution count.
type FunctionExecution struct {
	Name  string
	Count int
}

// SourceFileCoverage holds one source file's coverage facts: two
// insertion-ordered function mappings (declarations and execution counts,
// which may have different key sets), branch facts and line facts. Values
// are read-only once NewSourceFile returns.
type SourceFileCoverage struct {
	sourceFileName string
	funcLines      []FunctionLine
	funcExecs      []FunctionExecution
	branches       []BranchCoverage
	lines          []LineCoverage
}

// NewSourceFile builds a record in one step and validates it: the name must
// be non-empty, declaration start lines positive and execution counts
// non-negative. Within each function mapping the name is the unique key; a
// repeated name updates the stored entry in place without moving its
// position. Branch and line facts are stored as given, in order.
func NewSourceFile(name string, decls []FunctionLine, execs []FunctionExecution, branches []BranchCoverage, lines []LineCoverage) (*SourceFileCoverage, error) {
	if name == "" {
		return nil, errors.New("source file name must not be empty")
	}
	sf := &SourceFileCoverage{sourceFileName: name}

	declIndex := make(map[string]int, len(decls))
	for _, d := range decls {
		if d.StartLine <= 0 {
			return nil, fmt.Errorf("function %q: start line must be positive, got %d", d.Name, d.StartLine)
		}
		if i, ok := declIndex[d.Name]; ok {
			sf.funcLines[i] = d
			continue
		}
		declIndex[d.Name] = len(sf.funcLines)
		sf.funcLines = append(sf.funcLines, d)
	}

	execIndex := make(map[string]int, len(execs))
	for _, e := range execs {
		if e.Count < 0 {
			return nil, fmt.Errorf("function %q: execution count must not be negative, got %d", e.Name, e.Count)
		}
		if i, ok := execIndex[e.Name]; ok {
			sf.funcExecs[i] = e
			continue
		}
		execIndex[e.Name] = len(sf.funcExecs)
		sf.funcExecs = append(sf.funcExecs, e)
	}

	sf.branches = append(sf.branches, branches...)
	sf.lines = append(sf.lines, lines...)
	return sf, nil
}

// Name returns the source file path, reproduced verbatim in the output.
func (s *SourceFileCoverage) Name() string {
	return s.sourceFileName
}

// FunctionLines returns the (name, start line) mapping in insertion order.
func (s *SourceFileCoverage) FunctionLines() []FunctionLine {
	return s.funcLines
}

// FunctionExecutions returns the (name, execution count) mapping in
// insertion order.
func (s *SourceFileCoverage) FunctionExecutions() []FunctionExecution {
	return s.funcExecs
}

// FunctionsFound is the size of the declaration mapping.
func (s *SourceFileCoverage) FunctionsFound() int {
	return len(s.funcLines)
}

// FunctionsHit counts execution-mapping entries with a nonzero count.
func (s *SourceFileCoverage) FunctionsHit() int {
	hit := 0
	for _, e := range s.funcExecs {
		if e.Count > 0 {
			hit++
		}
	}
	return hit
}

// Branches returns the branch facts in insertion order.
func (s *SourceFileCoverage) Branches() []BranchCoverage {
	return s.branches
}

// BranchesFound is the number of branch facts.
func (s *SourceFileCoverage) BranchesFound() int {
	return len(s.branches)
}

// BranchesHit counts branch facts that were executed.
func (s *SourceFileCoverage) BranchesHit() int {
	hit := 0
	for _, b := range s.branches {
		if b.Executed {
			hit++
		}
	}
	return hit
}

// Lines returns the line facts in insertion order.
func (s *SourceFileCoverage) Lines() []LineCoverage {
	return s.lines
}

// LinesFound is the number of instrumented lines.
func (s *SourceFileCoverage) LinesFound() int {
	return len(s.lines)
}

// LinesHit counts instrumented lines with a nonzero execution count.
func (s *SourceFileCoverage) LinesHit() int {
	hit := 0
	for _, l := range s.lines {
		if l.ExecutionCount > 0 {
			hit++
		}
	}
	return hit
}
