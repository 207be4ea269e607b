package sat

// analyze performs first-UIP conflict analysis (§4.5) starting from the
// given conflicting clause. It returns the learned clause — the asserting
// (first-UIP) literal at position 0, and the literal with the highest
// decision level swapped into position 1 so the clause is ready to be
// watched once the driver backtracks — and the backtrack level (0 if the
// learned clause is unit).
//
// Level-0 literals are dropped from the learned clause: they are globally
// true facts and including them would be redundant.
func (s *Solver) analyze(conflict int) ([]Literal, int) {
	level := s.trail.level()
	s.seen.reset()

	learnt := append(s.learntBuf[:0], 0) // index 0 reserved for the UIP
	pending := 0                         // unresolved literals at `level`

	resolve := func(lits []Literal) {
		for _, m := range lits {
			v := m.Var()
			if s.seen.contains(v) {
				continue
			}
			s.seen.add(v)
			s.order.bump(v)
			switch {
			case s.assign.level(v) == level:
				pending++
			case s.assign.level(v) > 0:
				learnt = append(learnt, m)
			}
		}
	}

	resolve(s.store.at(conflict).literals)

	idx := s.trail.len() - 1
	var p Literal
	for {
		for !s.seen.contains(s.trail.at(idx).Var()) {
			idx--
		}
		p = s.trail.at(idx)
		idx--

		v := p.Var()
		s.seen.remove(v)
		pending--
		if pending == 0 {
			break // p is the first UIP
		}
		// literals[0] of a reason clause is p itself; resolve on the rest.
		resolve(s.store.at(s.assign.reason(v)).literals[1:])
	}
	learnt[0] = p.Negate()

	backtrackLevel := 0
	swapAt := 1
	for i := 1; i < len(learnt); i++ {
		if lv := s.assign.level(learnt[i].Var()); lv > backtrackLevel {
			backtrackLevel = lv
			swapAt = i
		}
	}
	if len(learnt) > 1 {
		learnt[1], learnt[swapAt] = learnt[swapAt], learnt[1]
	}

	s.order.decay()
	s.learntBuf = learnt
	return learnt, backtrackLevel
}
