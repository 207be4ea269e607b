package offload_test

import (
	"testing"

	"github.com/blitzsat/cdcl/internal/offload"
	"github.com/blitzsat/cdcl/internal/sat"
)

func solveWith(numVars int, clauses [][]int, engine sat.BCPEngine) sat.Status {
	opts := sat.DefaultOptions
	opts.Engine = engine
	s := sat.New(numVars, opts)
	for _, c := range clauses {
		if _, err := s.AddClause(c); err != nil {
			panic(err)
		}
	}
	return s.Solve()
}

func TestLoopback_matchesBuiltin(t *testing.T) {
	tests := []struct {
		name    string
		numVars int
		clauses [][]int
		want    sat.Status
	}{
		{
			name:    "satisfiable",
			numVars: 3,
			clauses: [][]int{{1, 2}, {-1, 3}, {-2, -3}},
			want:    sat.SAT,
		},
		{
			name:    "conflicting units",
			numVars: 1,
			clauses: [][]int{{1}, {-1}},
			want:    sat.UNSAT,
		},
		{
			name:    "pigeonhole PHP(2,2)",
			numVars: 4,
			// pigeons 1,2 into holes a,b: each pigeon in some hole, no
			// hole holds two pigeons.
			clauses: [][]int{
				{1, 2}, {3, 4},
				{-1, -3}, {-2, -4},
			},
			want: sat.SAT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotBuiltin := solveWith(tt.numVars, tt.clauses, nil)
			if gotBuiltin != tt.want {
				t.Fatalf("builtin engine: got %s, want %s", gotBuiltin, tt.want)
			}

			gotLoopback := solveWith(tt.numVars, tt.clauses, offload.NewLoopback())
			if gotLoopback != tt.want {
				t.Errorf("loopback engine: got %s, want %s", gotLoopback, tt.want)
			}
		})
	}
}
