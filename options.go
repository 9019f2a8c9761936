package dpll

// config holds the resolved settings for a Solve call, built from Options.
type config struct {
	verbose            bool
	maxLiveAssignments int
}

// Option configures a Solve call.
type Option func(*config)

// WithVerbose enables structured trace logging of the search via the
// package's Logger: the root assignment after full-sweep propagation, each
// branching variable, each dropped contradictory branch, and a satisfied
// formula. Individual pops and propagated literals are not logged. It is
// off by default; the CLI's -v flag enables it.
func WithVerbose(v bool) Option {
	return func(c *config) { c.verbose = v }
}

// WithMaxLiveAssignments bounds the number of Assignment snapshots the
// search stack may hold live at once. Zero (the default) means unbounded.
// Each running incremental propagation also holds one unit of the same
// bound for its worklist. Exceeding the bound returns a KindOutOfMemory
// error from Solve rather than continuing to grow the stack.
func WithMaxLiveAssignments(n int) Option {
	return func(c *config) { c.maxLiveAssignments = n }
}

func resolveConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
