package dpll

import "math/rand"

// randomProblem is a lightweight, not-necessarily-satisfiable CNF problem
// used by the randomized soundness test. Grounded on cespare/saturday's
// saturday_test.go:makeRandomSat, but without that generator's
// guaranteed-satisfiable bias, so both SAT and UNSAT instances occur.
type randomProblem struct {
	varsNum int
	clauses []Clause
}

func makeRandomProblem(seed int64, numVars, numClauses int) randomProblem {
	rng := rand.New(rand.NewSource(seed))
	clauses := make([]Clause, numClauses)
	for i := range clauses {
		clauseLen := rng.Intn(3) + 1
		lits := make([]int, clauseLen)
		for j := range lits {
			v := rng.Intn(numVars) + 1
			if rng.Intn(2) == 0 {
				v = -v
			}
			lits[j] = v
		}
		clauses[i] = NewClause(lits...)
	}
	return randomProblem{varsNum: numVars, clauses: clauses}
}
