package dimacs

import (
	"fmt"

	"github.com/rhartert/dimacs"
)

// ReadModels parses a models fixture file: one line per expected model,
// each a space-separated list of signed literals terminated by 0, in the
// same vein as the DIMACS clause lines they visually resemble. It is test
// tooling only, grounded on the teacher's own model-fixture reader.
func ReadModels(filename string) ([][]bool, error) {
	r, err := open(filename)
	if err != nil {
		return nil, fmt.Errorf("cdcl/dimacs: reading %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(string, int, int) error {
	return fmt.Errorf("cdcl/dimacs: model fixtures must not contain a problem line")
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}

func (b *modelBuilder) Comment(_ string) error { return nil }
