package sat

// watchIndex maps each literal code to the list of clause indices currently
// watching it. Every clause of size >= 2 appears in exactly two watch
// lists: that of literals[0] and that of literals[1] (invariant P1). Lists
// grow by doubling through ordinary slice append; they shrink only through
// in-place compaction performed by the BCP engine during propagation.
type watchIndex struct {
	lists [][]int32
}

func newWatchIndex(numVars int) watchIndex {
	// Literal codes run from 2 (x_1) to 2*numVars+1 (¬x_numVars); index 0
	// and 1 are never used but kept to avoid an offset on every access.
	return watchIndex{lists: make([][]int32, 2*numVars+2)}
}

// add registers clause idx as a watcher of lit.
func (w *watchIndex) add(lit Literal, idx int) {
	w.lists[lit] = append(w.lists[lit], int32(idx))
}

// list returns the current watcher list for lit. The BCP engine mutates
// this list in place during propagation, so callers must not retain it
// across a call to setList.
func (w *watchIndex) list(lit Literal) []int32 {
	return w.lists[lit]
}

// setList replaces the watcher list for lit, typically with a compacted
// prefix of the slice previously returned by list.
func (w *watchIndex) setList(lit Literal, l []int32) {
	w.lists[lit] = l
}
