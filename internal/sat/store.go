package sat

// clauseStore is the append-only owning container of clauses. Clauses are
// referenced by their stable integer index into the store rather than by
// pointer: this gives trivial equality for "same clause", keeps reason
// chains serializable to the BCP-offload engine (see internal/offload), and
// avoids ownership cycles between watch lists and clause bodies. Learned
// clauses append to the same store as original ones; indices are never
// reused or invalidated for the lifetime of a solve.
type clauseStore struct {
	clauses []*Clause
}

// addOriginal appends a non-learned clause and returns its stable index.
func (cs *clauseStore) addOriginal(lits []Literal) int {
	return cs.add(lits, false)
}

// addLearnt appends a learned clause and returns its stable index.
func (cs *clauseStore) addLearnt(lits []Literal) int {
	return cs.add(lits, true)
}

func (cs *clauseStore) add(lits []Literal, learnt bool) int {
	c := &Clause{
		literals: append([]Literal(nil), lits...),
		learnt:   learnt,
	}
	idx := len(cs.clauses)
	cs.clauses = append(cs.clauses, c)
	return idx
}

// at returns the clause stored at idx. idx must name a clause previously
// returned by addOriginal/addLearnt.
func (cs *clauseStore) at(idx int) *Clause {
	return cs.clauses[idx]
}

// len returns the number of clauses currently in the store.
func (cs *clauseStore) len() int {
	return len(cs.clauses)
}
