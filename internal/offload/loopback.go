// Package offload provides a reference implementation of sat.BCPEngine
// that exercises the hardware-offload boundary (§6) entirely in software,
// standing in for a real accelerator reached over a serial link.
package offload

import "github.com/blitzsat/cdcl/internal/sat"

// Loopback mirrors the built-in two-watched-literal propagator, but keeps
// its own assignment and watch-list state, synchronized with the host
// solver purely through the BCPEngine contract (Init/AddClause/Sync/Step)
// — exactly the discipline a hardware accelerator is held to over the
// wire. Values are kept as sat.LBool (True=1, False=-1, Unknown=0), not in
// the UART protocol's FALSE=0, TRUE=1, UNASSIGNED=-1 encoding.
type Loopback struct {
	numVars int
	clauses [][]sat.Literal
	watch   [][]int32
	values  []sat.LBool
}

// NewLoopback returns an uninitialized engine; Solve calls Init on it
// before the first assignment.
func NewLoopback() *Loopback {
	return &Loopback{}
}

func (e *Loopback) Init(numVars int, original [][]sat.Literal) {
	e.numVars = numVars
	e.values = make([]sat.LBool, 2*numVars+2)
	e.watch = make([][]int32, 2*numVars+2)
	e.clauses = make([][]sat.Literal, 0, len(original))
	for _, lits := range original {
		e.installClause(lits)
	}
}

func (e *Loopback) installClause(lits []sat.Literal) int {
	idx := len(e.clauses)
	e.clauses = append(e.clauses, lits)
	if len(lits) >= 2 {
		e.watch[lits[0]] = append(e.watch[lits[0]], int32(idx))
		e.watch[lits[1]] = append(e.watch[lits[1]], int32(idx))
	}
	return idx
}

// AddClause uploads a learned clause. The host guarantees idx values are
// handed out in the same append order on both sides, so a mismatch here
// means the two clause stores have fallen out of sync.
func (e *Loopback) AddClause(idx int, lits []sat.Literal) {
	if got := e.installClause(lits); got != idx {
		panic("cdcl/offload: learned clause index diverged from host store")
	}
}

func (e *Loopback) Sync(unassigned []int) {
	for _, v := range unassigned {
		e.values[sat.PositiveLiteral(v)] = sat.Unknown
		e.values[sat.NegativeLiteral(v)] = sat.Unknown
	}
}

// Step runs one round of the two-watched-literal scan triggered by
// justAssigned becoming true, the software mirror of a single
// BCP_START/RSP_IMPLICATION exchange with the FPGA.
func (e *Loopback) Step(justAssigned sat.Literal) sat.EngineResult {
	e.set(justAssigned)

	falseLit := justAssigned.Negate()
	watchers := e.watch[falseLit]

	var result sat.EngineResult
	j := 0
	for i := 0; i < len(watchers); i++ {
		ci := int(watchers[i])
		lits := e.clauses[ci]

		if lits[0] == falseLit {
			lits[0], lits[1] = lits[1], lits[0]
		}
		if e.values[lits[0]] == sat.True {
			watchers[j] = watchers[i]
			j++
			continue
		}

		replaced := false
		for k := 2; k < len(lits); k++ {
			if e.values[lits[k]] != sat.False {
				lits[1], lits[k] = lits[k], lits[1]
				e.watch[lits[1]] = append(e.watch[lits[1]], int32(ci))
				replaced = true
				break
			}
		}
		if replaced {
			continue
		}

		watchers[j] = watchers[i]
		j++

		if e.values[lits[0]] == sat.False {
			for k := i + 1; k < len(watchers); k++ {
				watchers[j] = watchers[k]
				j++
			}
			e.watch[falseLit] = watchers[:j]
			result.Conflict = true
			result.ConflictClause = ci
			return result
		}

		e.set(lits[0])
		result.Implications = append(result.Implications, sat.Implication{
			Var:    lits[0].Var(),
			Value:  lits[0].IsPositive(),
			Reason: ci,
		})
	}
	e.watch[falseLit] = watchers[:j]
	return result
}

func (e *Loopback) set(l sat.Literal) {
	e.values[l] = sat.True
	e.values[l.Negate()] = sat.False
}
