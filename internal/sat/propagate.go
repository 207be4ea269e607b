package sat

// Propagate runs Boolean Constraint Propagation to a fixpoint, starting
// from the current propagation cursor. It returns -1 if no conflict was
// found (in which case prop_head == len(trail)), or the index of a
// conflicting clause.
//
// When an external BCPEngine is configured (§6), propagation is delegated
// to it instead of the built-in two-watched-literal loop below.
func (s *Solver) Propagate() int {
	start := s.trail.propHead
	var conflict int
	if s.engine != nil {
		conflict = s.propagateWithEngine()
	} else {
		conflict = s.propagateBuiltin()
	}
	s.Propagations += int64(s.trail.propHead - start)
	return conflict
}

// propagateBuiltin is the reference two-watched-literal BCP engine (§4.4).
// While there are unprocessed trail entries, it takes the next literal l
// (which has just become true) and examines the watch list of ¬l, since
// those are the only clauses that could have become unit or conflicting.
func (s *Solver) propagateBuiltin() int {
	for s.trail.propHead < s.trail.len() {
		l := s.trail.at(s.trail.propHead)
		s.trail.propHead++
		falseLit := l.Negate()

		watchers := s.watch.list(falseLit)
		j := 0
		for i := 0; i < len(watchers); i++ {
			ci := int(watchers[i])
			c := s.store.at(ci)

			// Normalize watch positions: the just-falsified literal must
			// occupy position 1, so literals[0] is "the other watch".
			if c.literals[0] == falseLit {
				c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
			}

			// Satisfied shortcut: leave the clause in this watch list.
			if s.assign.litValue(c.literals[0]) == True {
				watchers[j] = watchers[i]
				j++
				continue
			}

			// Look for a replacement watch among literals[2:].
			replaced := false
			for k := 2; k < len(c.literals); k++ {
				if s.assign.litValue(c.literals[k]) != False {
					c.literals[1], c.literals[k] = c.literals[k], c.literals[1]
					s.watch.add(c.literals[1], ci)
					replaced = true
					break
				}
			}
			if replaced {
				continue // ci now lives in a different watch list
			}

			// No replacement: literals[0] is either forced or conflicting.
			watchers[j] = watchers[i]
			j++

			if s.assign.litValue(c.literals[0]) == False {
				// Conflict: preserve the remaining unprocessed watchers.
				for k := i + 1; k < len(watchers); k++ {
					watchers[j] = watchers[k]
					j++
				}
				s.watch.setList(falseLit, watchers[:j])
				return ci
			}

			s.enqueue(c.literals[0], ci)
		}
		s.watch.setList(falseLit, watchers[:j])
	}
	return -1
}
