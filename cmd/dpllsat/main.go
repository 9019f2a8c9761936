// Command dpllsat reads a DIMACS CNF file and reports whether it is
// satisfiable using the dpll package's DPLL search procedure.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/satkit/dpll"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dpllsat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable verbose trace logging")
	fs.Usage = func() {
		fmt.Fprint(stderr, `dpllsat: a DPLL SAT solver.

Usage:

  dpllsat [-v] <path-to-dimacs-file>

dpllsat reads a single problem specification in the DIMACS CNF format and
writes "SAT" or "UNSAT" to standard output.

The -v flag enables verbose trace logging to standard error.
`)
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "argument error: expected exactly 1 argument, got %d\n", fs.NArg())
		return 1
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "I/O error: %s\n", err)
		return 1
	}
	defer f.Close()

	formula, err := dpll.Parse(f)
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	outcome, err := dpll.Solve(formula, dpll.WithVerbose(*verbose))
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	fmt.Fprint(stdout, outcome.Decision.String())
	return 0
}

func reportError(stderr io.Writer, err error) {
	var dErr *dpll.Error
	if errors.As(err, &dErr) {
		fmt.Fprintf(stderr, "%s: %s\n", dErr.Kind, dErr.Err)
		return
	}
	fmt.Fprintf(stderr, "error: %s\n", err)
}
