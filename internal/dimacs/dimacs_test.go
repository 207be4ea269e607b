package dimacs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blitzsat/cdcl/internal/sat"
)

func newSolverFor(t *testing.T, filename string) *sat.Solver {
	t.Helper()
	n, err := CountVars(filename)
	if err != nil {
		t.Fatalf("CountVars(%q): %v", filename, err)
	}
	return sat.NewDefault(n)
}

func TestLoad(t *testing.T) {
	s := newSolverFor(t, "testdata/test_instance.cnf")
	if err := Load("testdata/test_instance.cnf", s); err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if got, want := s.NumVars(), 3; got != want {
		t.Errorf("NumVars() = %d, want %d", got, want)
	}
	if status := s.Solve(); status != sat.SAT {
		t.Errorf("Solve() = %s, want SAT", status)
	}
}

func TestLoad_gzip(t *testing.T) {
	s := newSolverFor(t, "testdata/test_instance.cnf.gz")
	if err := Load("testdata/test_instance.cnf.gz", s); err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if status := s.Solve(); status != sat.SAT {
		t.Errorf("Solve() = %s, want SAT", status)
	}
}

func TestLoad_noFile(t *testing.T) {
	s := sat.NewDefault(1)
	if err := Load("testdata/does-not-exist.cnf", s); err == nil {
		t.Errorf("Load(): want error, got none")
	}
}

func TestLoad_gzipOnPlainFile(t *testing.T) {
	s := sat.NewDefault(3)
	path := filepath.Join(t.TempDir(), "plain.cnf.gz")
	if err := os.WriteFile(path, []byte("p cnf 3 1\n1 2 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	if err := Load(path, s); err == nil {
		t.Errorf("Load(): want error, got none")
	}
}

func TestLoad_variableMismatch(t *testing.T) {
	s := sat.NewDefault(1)
	if err := Load("testdata/test_instance.cnf", s); err == nil {
		t.Errorf("Load(): want error for mismatched variable count, got none")
	}
}

func TestReadModels(t *testing.T) {
	got, err := ReadModels("testdata/test_instance.cnf.models")
	if err != nil {
		t.Fatalf("ReadModels(): %v", err)
	}

	want := [][]bool{
		{true, true, false},
		{true, false, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadModels(): mismatch (-want +got):\n%s", diff)
	}
}
