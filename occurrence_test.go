package dpll

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestOccurrenceCoverage checks that for every literal in every clause, the
// clause appears in exactly the matching polarity's occurrence list for that
// variable, and nowhere else.
func TestOccurrenceCoverage(t *testing.T) {
	f, err := NewFormula(3, []Clause{
		NewClause(1, 2, -3),
		NewClause(-1, 3),
		NewClause(2),
		NewClause(-2, -3),
	})
	if err != nil {
		t.Fatal(err)
	}
	occ := BuildOccurrence(f)

	wantPos := [][]int32{
		{0},    // var 0 (literal 1): clause 0
		{0, 2}, // var 1 (literal 2): clauses 0, 2
		{1},    // var 2 (literal 3): clause 1
	}
	wantNeg := [][]int32{
		{1},    // var 0 (literal -1): clause 1
		{3},    // var 1 (literal -2): clause 3
		{0, 3}, // var 2 (literal -3): clauses 0, 3
	}

	for v := 0; v < 3; v++ {
		gotPos := append([]int32(nil), occ.Positive(v)...)
		gotNeg := append([]int32(nil), occ.Negative(v)...)
		sort.Slice(gotPos, func(i, j int) bool { return gotPos[i] < gotPos[j] })
		sort.Slice(gotNeg, func(i, j int) bool { return gotNeg[i] < gotNeg[j] })

		if diff := cmp.Diff(wantPos[v], gotPos); diff != "" {
			t.Errorf("Positive(%d) mismatch (-want +got):\n%s", v, diff)
		}
		if diff := cmp.Diff(wantNeg[v], gotNeg); diff != "" {
			t.Errorf("Negative(%d) mismatch (-want +got):\n%s", v, diff)
		}
	}
}

func TestOccurrenceOfMatchesPolarity(t *testing.T) {
	f, err := NewFormula(3, []Clause{
		NewClause(1, 2, -3),
		NewClause(-1, 3),
		NewClause(2),
		NewClause(-2, -3),
	})
	if err != nil {
		t.Fatal(err)
	}
	occ := BuildOccurrence(f)

	for _, lit := range []Literal{1, -1, 2, -2, 3, -3} {
		var want []int32
		if lit.Positive() {
			want = occ.Positive(lit.Var())
		} else {
			want = occ.Negative(lit.Var())
		}
		if diff := cmp.Diff(want, occ.Of(lit)); diff != "" {
			t.Errorf("Of(%d) mismatch (-want +got):\n%s", lit, diff)
		}
	}
}

func TestOccurrenceEmptyFormula(t *testing.T) {
	f, err := NewFormula(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	occ := BuildOccurrence(f)
	if len(occ.Positive(0)) != 0 || len(occ.Negative(0)) != 0 {
		t.Errorf("variable with no occurrences should have empty lists")
	}
}
