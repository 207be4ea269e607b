package sat

// assignment holds the per-variable state described in §3 of the design:
// value, decision level, and reason clause. Values are stored indexed by
// literal code (both polarities of a variable are written together) so
// that reading the truth value of a literal never branches on its sign.
type assignment struct {
	values  []LBool // indexed by literal code
	levels  []int   // indexed by variable; meaningless while unassigned
	reasons []int   // indexed by variable; noReason for decisions/facts
}

func newAssignment(numVars int) assignment {
	return assignment{
		values:  make([]LBool, 2*numVars+2),
		levels:  make([]int, numVars+1),
		reasons: make([]int, numVars+1),
	}
}

// litValue returns the current value of literal l: True, False, or Unknown
// if its variable is unassigned.
func (a *assignment) litValue(l Literal) LBool {
	return a.values[l]
}

func (a *assignment) varValue(v int) LBool {
	return a.values[PositiveLiteral(v)]
}

func (a *assignment) level(v int) int {
	return a.levels[v]
}

func (a *assignment) reason(v int) int {
	return a.reasons[v]
}

// assign records that literal l has become true at the given decision
// level because of reason (noReason for a decision or a root-level fact).
// The variable must currently be unassigned.
func (a *assignment) assign(l Literal, level, reason int) {
	a.values[l] = True
	a.values[l.Negate()] = False
	v := l.Var()
	a.levels[v] = level
	a.reasons[v] = reason
}

// unassign resets variable v to Unknown, clearing its reason. Its level is
// deliberately left stale, as it is meaningless once unassigned (§4.6).
func (a *assignment) unassign(v int) {
	a.values[PositiveLiteral(v)] = Unknown
	a.values[NegativeLiteral(v)] = Unknown
	a.reasons[v] = noReason
}
