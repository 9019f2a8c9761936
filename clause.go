package dpll

// Clause is an immutable disjunction of literals. Duplicate and tautological
// literals (a variable and its negation both present) are accepted without
// complaint; the clause is not normalized or deduplicated.
type Clause struct {
	lits []Literal
}

// NewClause builds a Clause from raw signed-integer literals (1-based
// variable numbering, matching DIMACS). It does not validate literals
// against any variable count; that is Formula's job at construction time.
func NewClause(lits ...int) Clause {
	out := make([]Literal, len(lits))
	for i, v := range lits {
		if v == 0 {
			panic("dpll: zero is not a valid literal")
		}
		out[i] = Literal(v)
	}
	return Clause{lits: out}
}

// Len returns the number of literals in the clause.
func (c Clause) Len() int { return len(c.lits) }

// Literal returns the i'th literal in stored order.
func (c Clause) Literal(i int) Literal { return c.lits[i] }

// Literals returns the clause's literals in stored order. The returned
// slice must not be mutated by the caller.
func (c Clause) Literals() []Literal { return c.lits }
