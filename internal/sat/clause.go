package sat

import "strings"

// noReason marks a trail entry that was not implied by any clause: either a
// decision literal, or a fact known true at the root level.
const noReason = -1

// Clause is a disjunction of literals. The literal order is not semantic,
// but watch discipline requires positions 0 and 1 to hold the clause's two
// watched literals (see propagate.go).
//
// There is no tautology screening or duplicate-literal removal here: inputs
// are trusted to be simple clauses, and learned clauses are constructed so
// that they already satisfy that property (see analyze.go).
type Clause struct {
	literals []Literal
	learnt   bool
}

// Size returns the number of literals in the clause.
func (c *Clause) Size() int {
	return len(c.literals)
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteByte('(')
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteString(" ∨ ")
		sb.WriteString(l.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
