package sat

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Status is a solve outcome. SAT and UNSAT are the two terminal statuses
// the core recognizes (§7); Aborted is returned only when a positive
// Options.Timeout elapses and is not part of the core's contract (§5).
type Status int8

const (
	UNSAT   Status = 0
	SAT     Status = 1
	Aborted Status = 2
)

func (r Status) String() string {
	switch r {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	case Aborted:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// Solver is the CDCL search engine: clause store, two-watched-literal BCP,
// first-UIP conflict analysis with clause learning, non-chronological
// backtracking, and VSIDS variable ranking (§2).
type Solver struct {
	numVars int

	store  clauseStore
	watch  watchIndex
	assign assignment
	trail  trail
	order  *varOrder
	engine BCPEngine

	originals []int // store indices of original (non-learnt) clauses

	seen      seenSet
	learntBuf []Literal

	timeout   time.Duration
	startedAt time.Time

	// Conflicts, Decisions, and Propagations are running search
	// statistics, exposed the way the teacher exposes TotalConflicts etc.
	Conflicts    int64
	Decisions    int64
	Propagations int64

	// Stats, if non-nil, receives periodic human-readable progress lines
	// during Solve, the same way the teacher prints search stats to
	// stdout unconditionally. Defaults to os.Stdout; set to io.Discard
	// to silence it.
	Stats io.Writer
}

// New creates a solver for a problem over variables x_1..x_numVars (§6:
// create(num_vars)).
func New(numVars int, opts Options) *Solver {
	return &Solver{
		numVars:   numVars,
		watch:     newWatchIndex(numVars),
		assign:    newAssignment(numVars),
		order:     newVarOrder(numVars, decayOrDefault(opts.VariableDecay), opts.PhaseSaving),
		engine:    opts.Engine,
		seen:      newSeenSet(numVars),
		learntBuf: make([]Literal, 0, numVars+1),
		timeout:   opts.Timeout,
		Stats:     os.Stdout,
	}
}

// NewDefault creates a solver configured with DefaultOptions.
func NewDefault(numVars int) *Solver {
	return New(numVars, DefaultOptions)
}

func decayOrDefault(d float64) float64 {
	if d <= 0 || d >= 1 {
		return DefaultOptions.VariableDecay
	}
	return d
}

// NumVars returns the number of variables the solver was created with.
func (s *Solver) NumVars() int {
	return s.numVars
}

func (s *Solver) decisionLevel() int {
	return s.trail.level()
}

// AddClause adds a clause given as signed literals: a positive entry v
// means x_v, a negative entry -v means ¬x_v (§6). It must be called before
// Solve — the core performs single-formula, non-incremental solving.
// Returns the clause's stable store index.
func (s *Solver) AddClause(signedLits []int) (int, error) {
	if s.decisionLevel() != 0 {
		return -1, fmt.Errorf("cdcl: AddClause called after the search has started")
	}

	lits := make([]Literal, len(signedLits))
	for i, sl := range signedLits {
		v := sl
		if v < 0 {
			v = -v
		}
		if v < 1 || v > s.numVars {
			return -1, fmt.Errorf("cdcl: variable %d out of range [1, %d]", v, s.numVars)
		}
		if sl > 0 {
			lits[i] = PositiveLiteral(v)
		} else {
			lits[i] = NegativeLiteral(v)
		}
	}

	idx := s.store.addOriginal(lits)
	s.originals = append(s.originals, idx)
	s.installWatches(idx, lits)
	return idx, nil
}

// installWatches registers a clause's first two literals as its watched
// pair (§4.2). Clauses of size < 2 are never watched: unit clauses are
// enqueued as facts, and empty clauses are rejected at Solve's
// initialization step (§4.8).
func (s *Solver) installWatches(idx int, lits []Literal) {
	if len(lits) < 2 {
		return
	}
	s.watch.add(lits[0], idx)
	s.watch.add(lits[1], idx)
}

// enqueue records literal l as true at the current decision level because
// of reason (noReason for a decision or a root-level fact), and appends it
// to the trail (§4.3). The variable must currently be unassigned.
func (s *Solver) enqueue(l Literal, reason int) {
	assertf(s.assign.litValue(l) == Unknown, "enqueue: %v already assigned", l)
	s.assign.assign(l, s.decisionLevel(), reason)
	s.trail.push(l)
}

// assume opens a new decision level and enqueues l as a decision (§4.8).
func (s *Solver) assume(l Literal) {
	s.trail.newDecisionLevel()
	s.enqueue(l, noReason)
}

// backtrack unwinds the trail to the given decision level (§4.6),
// resetting value and reason for each popped variable, reinserting them
// into VSIDS selection, and leaving prop_head at the new trail length so
// BCP resumes from the new tail.
func (s *Solver) backtrack(toLevel int) {
	// Keep every assignment made at toLevel or below: pop back to the trail
	// length at which level toLevel+1 was opened.
	target := s.trail.delimiter(toLevel + 1)

	var popped []int
	if s.engine != nil {
		popped = make([]int, 0, s.trail.len()-target)
	}

	for s.trail.len() > target {
		l := s.trail.last()
		v := l.Var()
		wasValue := s.assign.varValue(v)
		s.order.reinsert(v, wasValue)
		s.assign.unassign(v)
		s.trail.truncate(s.trail.len() - 1)
		if s.engine != nil {
			popped = append(popped, v)
		}
	}

	s.trail.closeDecisionLevels(toLevel)
	s.trail.propHead = s.trail.len()

	if s.engine != nil {
		s.engine.Sync(popped)
	}
}

// record installs a learned clause and enqueues its asserting literal, or
// — if the clause is unit — directly enqueues that literal as a
// derived, level-0 fact with no reason (§4.8).
func (s *Solver) record(learnt []Literal) {
	if len(learnt) == 1 {
		s.enqueue(learnt[0], noReason)
		return
	}
	idx := s.store.addLearnt(learnt)
	s.installWatches(idx, s.store.at(idx).literals)
	if s.engine != nil {
		s.engine.AddClause(idx, s.store.at(idx).literals)
	}
	s.enqueue(learnt[0], idx)
}

// Solve runs CDCL search to completion (§4.8) and returns SAT or UNSAT, or
// Aborted if a positive Options.Timeout elapses — a cooperative abort
// outside the core's two terminal statuses (§5, §7).
func (s *Solver) Solve() Status {
	s.startedAt = time.Now()

	if s.engine != nil {
		s.engine.Init(s.numVars, s.originalLiterals())
	}

	// Initialization: reject empty original clauses immediately, and
	// enqueue root-level facts implied by unit clauses.
	for _, idx := range s.originals {
		c := s.store.at(idx)
		switch c.Size() {
		case 0:
			return UNSAT
		case 1:
			switch s.assign.litValue(c.literals[0]) {
			case False:
				return UNSAT
			case Unknown:
				s.enqueue(c.literals[0], idx)
			}
		}
	}

	for {
		if s.shouldStop() {
			return Aborted
		}

		conflict := s.Propagate()
		if conflict >= 0 {
			s.Conflicts++

			if s.decisionLevel() == 0 {
				return UNSAT
			}

			learnt, backtrackLevel := s.analyze(conflict)
			s.backtrack(backtrackLevel)
			s.record(learnt)

			if s.Conflicts%10000 == 0 {
				s.printStats()
			}
			continue
		}

		lit, ok := s.order.next(&s.assign)
		if !ok {
			return SAT
		}
		s.Decisions++
		s.assume(lit)
	}
}

func (s *Solver) shouldStop() bool {
	return s.timeout > 0 && time.Since(s.startedAt) >= s.timeout
}

func (s *Solver) originalLiterals() [][]Literal {
	lits := make([][]Literal, len(s.originals))
	for i, idx := range s.originals {
		lits[i] = s.store.at(idx).literals
	}
	return lits
}

func (s *Solver) printStats() {
	if s.Stats == nil {
		return
	}
	fmt.Fprintf(s.Stats, "c %14.3fs %14d decisions %14d conflicts %14d props\n",
		time.Since(s.startedAt).Seconds(), s.Decisions, s.Conflicts, s.Propagations)
}

// Value returns the boundary-encoded value of variable v: ValueFalse,
// ValueTrue, or ValueUnassigned if v is unassigned or out of range
// [1, NumVars()] (§6).
func (s *Solver) Value(v int) Value {
	if v < 1 || v > s.numVars {
		return ValueUnassigned
	}
	return fromLBool(s.assign.varValue(v))
}
