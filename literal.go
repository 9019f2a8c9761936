// Package dpll implements a DPLL-based decision procedure for propositional
// satisfiability over formulas in conjunctive normal form, following the
// Davis-Putnam-Logemann-Loveland search procedure with iterative unit
// propagation and an occurrence-index-driven incremental propagator.
package dpll

import "fmt"

// Literal is a nonzero signed integer identifying a variable and its
// polarity. A positive value asserts the variable true; a negative value
// asserts it false. The variable index is |literal|-1: DIMACS numbering is
// 1-based, internal numbering is 0-based.
type Literal int32

// Var returns the 0-based variable index this literal refers to.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l) - 1
	}
	return int(l) - 1
}

// Positive reports whether the literal asserts its variable true.
func (l Literal) Positive() bool { return l > 0 }

// Negate returns the literal for the opposite polarity of the same variable.
func (l Literal) Negate() Literal { return -l }

func (l Literal) String() string {
	return fmt.Sprintf("%d", int32(l))
}
