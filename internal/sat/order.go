package sat

import "github.com/rhartert/yagh"

// varOrder implements the VSIDS (Variable State Independent Decaying Sum)
// decision heuristic described in §4.7. It keeps a binary heap (rather than
// the reference linear scan) of unassigned variables keyed by negated
// activity, so that next always returns an unassigned variable with
// maximum activity in O(log n). Among variables of equal activity the one
// returned is whichever the heap pops first; it is not guaranteed to be the
// lowest variable index.
//
// Variables popped from the heap that turn out to already be assigned
// (because they were set by propagation rather than decision) are simply
// discarded; reinsert is called by the solver when a variable becomes
// unassigned again during backtracking.
type varOrder struct {
	heap *yagh.IntMap[float64]

	scores     []float64 // in [0, 1e100), indexed by variable
	scoreInc   float64   // in (0, 1e100)
	scoreDecay float64   // in (0, 1]

	phases      []LBool
	phaseSaving bool
}

func newVarOrder(numVars int, decay float64, phaseSaving bool) *varOrder {
	vo := &varOrder{
		heap:        yagh.New[float64](0),
		scores:      make([]float64, numVars+1),
		scoreInc:    1,
		scoreDecay:  decay,
		phases:      make([]LBool, numVars+1),
		phaseSaving: phaseSaving,
	}
	for v := 1; v <= numVars; v++ {
		vo.heap.GrowBy(1)
		vo.heap.Put(v, 0)
	}
	return vo
}

// bump increases the activity score of variable v. May trigger a rescale
// of all scores if v's score exceeds the overflow threshold; the rescale
// conserves the relative ordering between variables.
func (vo *varOrder) bump(v int) {
	vo.scores[v] += vo.scoreInc
	if vo.heap.Contains(v) {
		vo.heap.Put(v, -vo.scores[v])
	}
	if vo.scores[v] > 1e100 {
		vo.rescale()
	}
}

// decay inflates the bump increment so that future bumps count for more,
// amortizing to exponential aging of older activity (§4.5). Called exactly
// once per analyzed conflict.
func (vo *varOrder) decay() {
	vo.scoreInc /= vo.scoreDecay
	if vo.scoreInc > 1e100 {
		vo.rescale()
	}
}

func (vo *varOrder) rescale() {
	vo.scoreInc *= 1e-100
	for v, s := range vo.scores {
		ns := s * 1e-100
		vo.scores[v] = ns
		if vo.heap.Contains(v) {
			vo.heap.Put(v, -ns)
		}
	}
}

// reinsert makes v a candidate for selection again, recording the value it
// held before being unassigned for use as its saved phase.
func (vo *varOrder) reinsert(v int, wasValue LBool) {
	if vo.phaseSaving {
		vo.phases[v] = wasValue
	}
	vo.heap.Put(v, -vo.scores[v])
}

// next returns the next unassigned variable's decision literal, or false if
// every variable is already assigned. Absent phase saving, the polarity is
// always the negative literal (§4.7: "always decide FALSE").
func (vo *varOrder) next(values *assignment) (Literal, bool) {
	for {
		elem, ok := vo.heap.Pop()
		if !ok {
			return 0, false
		}
		if values.varValue(elem.Elem) != Unknown {
			continue // assigned by propagation since being queued; discard
		}
		if vo.phaseSaving && vo.phases[elem.Elem] == True {
			return PositiveLiteral(elem.Elem), true
		}
		return NegativeLiteral(elem.Elem), true
	}
}
