// Package coverage models one run's aggregated code coverage: an ordered
// collection of per-source-file records carrying function, line and branch
// facts. The model is produced once by an upstream aggregation stage and is
// read-only from then on; serialization lives in the lcov package.
package coverage

// Coverage is the aggregate root. Source files keep the order they were
// added in, and that order is the order records are serialized in.
type Coverage struct {
	sourceFiles []*SourceFileCoverage
}

// New builds a Coverage over the given source file records.
func New(files ...*SourceFileCoverage) *Coverage {
	c := &Coverage{}
	for _, sf := range files {
		c.Add(sf)
	}
	return c
}

// Add appends a source file record. Duplicates are not rejected; a
// duplicate entry simply serializes as a duplicate record.
func (c *Coverage) Add(sf *SourceFileCoverage) {
	c.sourceFiles = append(c.sourceFiles, sf)
}

// SourceFiles returns the records in insertion order. Callers must not
// modify the returned slice.
func (c *Coverage) SourceFiles() []*SourceFileCoverage {
	return c.sourceFiles
}
