// Package lcov serializes a coverage model into the lcov tracefile text
// format (http://ltp.sourceforge.net/coverage/lcov/geninfo.1.php) consumed
// by coverage reporting and visualization tools.
package lcov

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"lcovtrace/coverage"
)

// Printer writes coverage models as lcov tracefiles. The logger is its only
// collaborator; write failures are reported through it once, at error
// severity, and surface to the caller as a false return from Print.
type Printer struct {
	logger *log.Logger
}

// NewPrinter builds a printer around the given logger. A nil logger falls
// back to log.Default().
func NewPrinter(logger *log.Logger) *Printer {
	if logger == nil {
		logger = log.Default()
	}
	return &Printer{logger: logger}
}

// Print writes one record per source file, in the model's order, to out.
// It returns false after the first failed write; bytes already written are
// left in place, so a failed call can leave a truncated record behind.
func (p *Printer) Print(out io.Writer, cov *coverage.Coverage) bool {
	w := &recordWriter{out: out}
	for _, sourceFile := range cov.SourceFiles() {
		w.writeSourceFile(sourceFile)
		if w.err != nil {
			p.logger.Printf("[lcov] failed to write to output: %v", w.err)
			return false
		}
	}
	return true
}

// Print serializes cov to out using a printer with the default logger.
func Print(out io.Writer, cov *coverage.Coverage) bool {
	return NewPrinter(nil).Print(out, cov)
}

// recordWriter emits marker lines and goes inert after the first write
// error, so a failed sink never sees further writes.
type recordWriter struct {
	out io.Writer
	err error
}

func (w *recordWriter) writef(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *recordWriter) writeSourceFile(sf *coverage.SourceFileCoverage) {
	w.writeSF(sf)
	w.writeFN(sf)
	w.writeFNDA(sf)
	w.writeFNF(sf)
	w.writeFNH(sf)
	w.writeBranches(sf)
	w.writeBRF(sf)
	w.writeBRH(sf)
	w.writeDA(sf)
	w.writeLH(sf)
	w.writeLF(sf)
	w.writeEndOfRecord()
}

// SF:<path to the source file>
func (w *recordWriter) writeSF(sf *coverage.SourceFileCoverage) {
	w.writef("SF:%s\n", sf.Name())
}

// FN:<line number of function start>,<function name>
func (w *recordWriter) writeFN(sf *coverage.SourceFileCoverage) {
	for _, fn := range sf.FunctionLines() {
		w.writef("FN:%d,%s\n", fn.StartLine, fn.Name)
	}
}

// FNDA:<execution count>,<function name>
func (w *recordWriter) writeFNDA(sf *coverage.SourceFileCoverage) {
	for _, fn := range sf.FunctionExecutions() {
		w.writef("FNDA:%d,%s\n", fn.Count, fn.Name)
	}
}

// FNF:<number of functions found>
func (w *recordWriter) writeFNF(sf *coverage.SourceFileCoverage) {
	w.writef("FNF:%d\n", sf.FunctionsFound())
}

// FNH:<number of functions hit>
func (w *recordWriter) writeFNH(sf *coverage.SourceFileCoverage) {
	w.writef("FNH:%d\n", sf.FunctionsHit())
}

// BRDA:<line>,<block>,<branch>,<taken> when both identifiers are known,
// BA:<line>,<taken> otherwise. One line per branch fact, in fact order.
func (w *recordWriter) writeBranches(sf *coverage.SourceFileCoverage) {
	for _, branch := range sf.Branches() {
		if branch.IdentifiersKnown() {
			// "-" marks a known branch that was never executed.
			taken := "-"
			if branch.Executed {
				taken = strconv.Itoa(branch.ExecutionCount)
			}
			w.writef("BRDA:%d,%d,%d,%s\n",
				branch.LineNumber, branch.BlockNumber, branch.BranchNumber, taken)
			continue
		}
		// 0 = branch was not executed, 2 = branch was executed and taken.
		// The format's middle state (1, executed but not taken) is never
		// emitted; executed branches always report as taken here.
		taken := "0"
		if branch.Executed {
			taken = "2"
		}
		w.writef("BA:%d,%s\n", branch.LineNumber, taken)
	}
}

// BRF:<number of branches found>, suppressed when no branches were found.
func (w *recordWriter) writeBRF(sf *coverage.SourceFileCoverage) {
	if sf.BranchesFound() > 0 {
		w.writef("BRF:%d\n", sf.BranchesFound())
	}
}

// BRH:<number of branches hit>, gated on the found count like BRF.
func (w *recordWriter) writeBRH(sf *coverage.SourceFileCoverage) {
	if sf.BranchesFound() > 0 {
		w.writef("BRH:%d\n", sf.BranchesHit())
	}
}

// DA:<line number>,<execution count>[,<checksum>]
func (w *recordWriter) writeDA(sf *coverage.SourceFileCoverage) {
	for _, line := range sf.Lines() {
		if line.Checksum != "" {
			w.writef("DA:%d,%d,%s\n", line.LineNumber, line.ExecutionCount, line.Checksum)
		} else {
			w.writef("DA:%d,%d\n", line.LineNumber, line.ExecutionCount)
		}
	}
}

// LH:<number of lines with a nonzero execution count>
func (w *recordWriter) writeLH(sf *coverage.SourceFileCoverage) {
	w.writef("LH:%d\n", sf.LinesHit())
}

// LF:<number of instrumented lines>
func (w *recordWriter) writeLF(sf *coverage.SourceFileCoverage) {
	w.writef("LF:%d\n", sf.LinesFound())
}

func (w *recordWriter) writeEndOfRecord() {
	w.writef("end_of_record\n")
}
