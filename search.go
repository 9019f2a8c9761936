package dpll

// Decision is the outcome of a Solve call: either the formula is
// satisfiable or it is not. There is no separate "error" Decision value —
// errors are returned as a Go error alongside a zero Outcome, per Go
// convention.
type Decision int

const (
	// Unsat means no total assignment satisfies the formula.
	Unsat Decision = iota
	// Sat means a satisfying total assignment exists and was found.
	Sat
)

func (d Decision) String() string {
	if d == Sat {
		return "SAT"
	}
	return "UNSAT"
}

// Stats reports purely informational counters about a Solve run. The set
// of fields may grow over time; callers should not depend on it for
// correctness.
type Stats struct {
	Decisions int64 // number of branch points explored
}

// Outcome is the result of a Solve call: the Decision, and, when Decision
// is Sat, an Assignment under which every clause has a satisfied literal.
// That Assignment may leave some variables unset (Solve stops as soon as
// every clause is satisfied); any value for them satisfies the formula, and
// Values reports them as false.
type Outcome struct {
	Decision   Decision
	Assignment Assignment
	Stats      Stats
}

// Solve runs the DPLL search procedure against f and reports whether it is
// satisfiable.
//
// Solve is synchronous and performs no I/O; it has no cancellation surface
// and no timeout. A caller wanting a deadline should run Solve on its own
// goroutine and abandon the result if it doesn't return in time — Solve
// itself will keep running to completion regardless.
//
// The result is a pure function of f's clause-and-literal order: the
// branching variable is always the lowest-indexed unassigned variable, and
// the true-branch is always explored before the false-branch, so two
// Solve calls on identical input return identical results.
func Solve(f Formula, opts ...Option) (Outcome, error) {
	cfg := resolveConfig(opts)
	log := newLoggerFromConfig(cfg)
	bud := newBudget(cfg.maxLiveAssignments)

	occ := BuildOccurrence(f)

	root := NewAssignment(f.VarsNum())
	PropagateFull(f, root)
	log.TraceAssignment("root after full-sweep propagation", root)

	if err := bud.reserve(1); err != nil {
		return Outcome{}, err
	}
	stack := []Assignment{root}
	var stats Stats

	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		bud.release(1)

		if FormulaSat(f, a) {
			log.Tracef("formula satisfied")
			return Outcome{Decision: Sat, Assignment: a, Stats: stats}, nil
		}
		if HasContradiction(f, a) {
			log.Tracef("contradiction, dropping branch")
			continue
		}

		v := a.FirstUnset()
		if v >= f.VarsNum() {
			// Every variable is assigned and no clause is falsified: by
			// HasContradiction's contrapositive, every clause has a
			// satisfied literal.
			return Outcome{Decision: Sat, Assignment: a, Stats: stats}, nil
		}

		stats.Decisions++
		neg, pos, err := branch(f, occ, a, v, bud)
		if err != nil {
			return Outcome{}, err
		}
		// Push false-branch first, true-branch second, so the true-branch
		// is explored first on this LIFO stack.
		stack = append(stack, neg, pos)
		log.Tracef("branched on var %d", v)
	}

	return Outcome{Decision: Unsat, Stats: stats}, nil
}

// branch clones the parent assignment a into two children, both cloned
// from a (never from each other — cloning a child from its sibling would
// leak the sibling's forced literals across branches), sets variable v to
// false in one and true in the other, and runs incremental propagation
// seeded by that assignment on each.
func branch(f Formula, occ Occurrence, a Assignment, v int, bud *budget) (neg, pos Assignment, err error) {
	if err := bud.reserve(1); err != nil {
		return Assignment{}, Assignment{}, err
	}
	neg = a.Clone()
	neg.Set(v, false)
	if err := PropagateIncremental(f, occ, neg, v, false, bud); err != nil {
		bud.release(1)
		return Assignment{}, Assignment{}, err
	}

	if err := bud.reserve(1); err != nil {
		bud.release(1)
		return Assignment{}, Assignment{}, err
	}
	pos = a.Clone()
	pos.Set(v, true)
	if err := PropagateIncremental(f, occ, pos, v, true, bud); err != nil {
		bud.release(2)
		return Assignment{}, Assignment{}, err
	}

	return neg, pos, nil
}
