package dpll

// DefinitelySat reports whether clause c is satisfied under assignment a:
// some literal in c is satisfied.
func DefinitelySat(c Clause, a Assignment) bool {
	for _, lit := range c.lits {
		if a.satisfies(lit) {
			return true
		}
	}
	return false
}

// DefinitelyUnsat reports whether clause c is falsified under assignment a:
// every literal in c is falsified. An empty clause is vacuously falsified.
func DefinitelyUnsat(c Clause, a Assignment) bool {
	for _, lit := range c.lits {
		if !a.falsifies(lit) {
			return false
		}
	}
	return true
}

// UnitLiteral returns the clause's unit literal and true if c has no
// satisfied literal and exactly one free (unset) literal; otherwise it
// returns the zero Literal and false.
func UnitLiteral(c Clause, a Assignment) (Literal, bool) {
	var free Literal
	freeCount := 0
	for _, lit := range c.lits {
		if a.satisfies(lit) {
			return 0, false
		}
		if !a.falsifies(lit) {
			freeCount++
			if freeCount > 1 {
				return 0, false
			}
			free = lit
		}
	}
	if freeCount == 1 {
		return free, true
	}
	return 0, false
}

// FormulaSat reports whether every clause of f is DefinitelySat under a.
func FormulaSat(f Formula, a Assignment) bool {
	for _, c := range f.clauses {
		if !DefinitelySat(c, a) {
			return false
		}
	}
	return true
}

// HasContradiction reports whether some clause of f is DefinitelyUnsat
// under a.
func HasContradiction(f Formula, a Assignment) bool {
	for _, c := range f.clauses {
		if DefinitelyUnsat(c, a) {
			return true
		}
	}
	return false
}
