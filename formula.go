package dpll

import "fmt"

// Formula is an immutable CNF formula: a conjunction of Clauses over
// VarsNum variables. Every literal in every clause satisfies
// 1 <= |literal| <= VarsNum.
type Formula struct {
	varsNum int
	clauses []Clause
}

// NewFormula builds a Formula over n variables from the given clauses. It
// returns an error if any literal falls outside [1, n] or n is negative.
// Duplicate and tautological clauses, and duplicate or tautological
// literals within a clause, are accepted unchanged.
func NewFormula(n int, clauses []Clause) (Formula, error) {
	if n < 0 {
		return Formula{}, fmt.Errorf("dpll: negative variable count %d", n)
	}
	for ci, c := range clauses {
		for _, lit := range c.lits {
			v := lit.Var()
			if v < 0 || v >= n {
				return Formula{}, fmt.Errorf("dpll: clause %d contains literal %d, out of range for %d variables", ci, int32(lit), n)
			}
		}
	}
	cp := make([]Clause, len(clauses))
	copy(cp, clauses)
	return Formula{varsNum: n, clauses: cp}, nil
}

// VarsNum returns the number of variables in the formula.
func (f Formula) VarsNum() int { return f.varsNum }

// ClausesNum returns the number of clauses in the formula.
func (f Formula) ClausesNum() int { return len(f.clauses) }

// Clause returns the i'th clause in stored order.
func (f Formula) Clause(i int) Clause { return f.clauses[i] }

// Clauses returns the formula's clauses in stored order. The returned slice
// must not be mutated by the caller.
func (f Formula) Clauses() []Clause { return f.clauses }
