package dpll

// literalFor builds the Literal asserted by setting 0-based variable v to
// positive.
func literalFor(v int, positive bool) Literal {
	if positive {
		return Literal(v + 1)
	}
	return Literal(-(v + 1))
}

// PropagateFull runs unit propagation to a fixpoint over every clause of f,
// starting from whatever state a already holds. It is the full-sweep
// variant, used once against the root assignment before search begins: it
// does not assume any occurrence index is available.
func PropagateFull(f Formula, a Assignment) {
	for {
		changed := false
		for _, c := range f.clauses {
			lit, ok := UnitLiteral(c, a)
			if !ok {
				continue
			}
			a.Set(lit.Var(), lit.Positive())
			changed = true
		}
		if !changed {
			return
		}
	}
}

// PropagateIncremental runs unit propagation to a fixpoint after a single
// variable v has just been assigned to polarity positive. Only clauses
// that can have newly become unit are examined: those containing the
// literal that just became falsified, found via occ, and transitively any
// clause made unit by a subsequent forced assignment. Each variable's
// pending clauses are coalesced into a single worklist slot, and a variable
// is queued at most once per round.
//
// It returns an error (always KindOutOfMemory) if b is non-nil and the
// worklist's transient allocation would exceed the configured resource
// budget. Callers must always check this error rather than ignore it.
func PropagateIncremental(f Formula, occ Occurrence, a Assignment, v int, positive bool, b *budget) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	defer b.release(1)

	n := a.Len()
	worklist := make([][]int32, n)

	set := literalFor(v, positive)
	seed := occ.Of(set.Negate())
	worklist[v] = seed

	pending := make([]int, 0, n)
	pendingSet := make([]bool, n)
	markPending := func(i int) {
		if !pendingSet[i] {
			pendingSet[i] = true
			pending = append(pending, i)
		}
	}
	if len(seed) > 0 {
		markPending(v)
	}

	for len(pending) > 0 {
		changed := false
		next := pending[:0:0]
		for _, i := range pending {
			clauses := worklist[i]
			worklist[i] = nil
			pendingSet[i] = false
			for _, ci := range clauses {
				c := f.clauses[ci]
				lit, ok := UnitLiteral(c, a)
				if !ok {
					continue
				}
				u := lit.Var()
				a.Set(u, lit.Positive())
				worklist[u] = occ.Of(lit.Negate())
				if len(worklist[u]) > 0 && !pendingSet[u] {
					pendingSet[u] = true
					next = append(next, u)
				}
				changed = true
			}
		}
		pending = next
		if !changed {
			break
		}
	}
	return nil
}
