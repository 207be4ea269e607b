// Package dimacs loads DIMACS CNF instances into a *sat.Solver, delegating
// the wire-format parsing to github.com/rhartert/dimacs the same way the
// teacher's parsers package does.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/blitzsat/cdcl/internal/sat"
)

func open(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if strings.HasSuffix(filename, ".gz") {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// Load parses filename as a DIMACS CNF instance and adds its clauses to
// solver. solver must already be created with NumVars matching the file's
// declared variable count, since the core's API fixes the variable count
// at construction time (§6) rather than growing it while parsing.
// Files ending in ".gz" are transparently decompressed.
func Load(filename string, solver *sat.Solver) error {
	r, err := open(filename)
	if err != nil {
		return fmt.Errorf("cdcl/dimacs: reading %q: %w", filename, err)
	}
	defer r.Close()
	return LoadReader(r, solver)
}

// LoadReader is like Load but reads from an already-open reader.
func LoadReader(r io.Reader, solver *sat.Solver) error {
	b := &builder{solver: solver}
	return dimacs.ReadBuilder(r, b)
}

// builder adapts *sat.Solver to the dimacs.Builder interface.
type builder struct {
	solver *sat.Solver
}

func (b *builder) Problem(problem string, nVars, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("cdcl/dimacs: unsupported problem type %q", problem)
	}
	if nVars != b.solver.NumVars() {
		return fmt.Errorf("cdcl/dimacs: file declares %d variables, solver has %d", nVars, b.solver.NumVars())
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	// DIMACS literals are already 1-indexed signed integers, the exact
	// convention AddClause expects, so no literal remapping is needed.
	_, err := b.solver.AddClause(tmpClause)
	return err
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// CountVars scans filename's problem line and returns the declared
// variable count, without constructing a solver. Callers use this to size
// the solver before calling Load, since AddClause requires the variable
// count up front.
func CountVars(filename string) (int, error) {
	r, err := open(filename)
	if err != nil {
		return 0, fmt.Errorf("cdcl/dimacs: reading %q: %w", filename, err)
	}
	defer r.Close()

	c := &counter{}
	if err := dimacs.ReadBuilder(r, c); err != nil {
		return 0, err
	}
	return c.nVars, nil
}

type counter struct {
	nVars int
}

func (c *counter) Problem(problem string, nVars, nClauses int) error {
	c.nVars = nVars
	return nil
}

func (c *counter) Clause(_ []int) error { return nil }
func (c *counter) Comment(_ string) error { return nil }
