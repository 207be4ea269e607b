package sat

import "testing"

func TestTrailDecisionLevels(t *testing.T) {
	var tr trail

	tr.push(PositiveLiteral(1))
	if got, want := tr.level(), 0; got != want {
		t.Fatalf("level() = %d, want %d", got, want)
	}

	tr.newDecisionLevel()
	tr.push(PositiveLiteral(2))
	tr.push(PositiveLiteral(3))

	tr.newDecisionLevel()
	tr.push(PositiveLiteral(4))

	if got, want := tr.level(), 2; got != want {
		t.Fatalf("level() = %d, want %d", got, want)
	}
	if got, want := tr.len(), 4; got != want {
		t.Fatalf("len() = %d, want %d", got, want)
	}
	if got, want := tr.delimiter(1), 1; got != want {
		t.Errorf("delimiter(1) = %d, want %d", got, want)
	}
	if got, want := tr.delimiter(2), 3; got != want {
		t.Errorf("delimiter(2) = %d, want %d", got, want)
	}
	if got, want := tr.delimiter(0), 0; got != want {
		t.Errorf("delimiter(0) = %d, want %d", got, want)
	}

	tr.truncate(tr.delimiter(1))
	tr.closeDecisionLevels(1)

	if got, want := tr.level(), 1; got != want {
		t.Errorf("after backtrack: level() = %d, want %d", got, want)
	}
	if got, want := tr.len(), 1; got != want {
		t.Errorf("after backtrack: len() = %d, want %d", got, want)
	}
	if got, want := tr.last(), PositiveLiteral(1); got != want {
		t.Errorf("after backtrack: last() = %v, want %v", got, want)
	}
}
