package mcts

import "math"

// Limits bounds a single call to Solver.Run. DefaultLimits leaves both unbounded (TimeLimit +Inf,
// IterLimit math.MaxInt); use the fluent setters to bound one or both.
type Limits struct {
	TimeLimit float64 // seconds
	IterLimit int
}

// DefaultLimits returns unbounded limits (time_limit=+Inf, iter_limit=+Inf, matching spec.md
// §6's documented Solver.Run defaults).
func DefaultLimits() *Limits {
	return &Limits{
		TimeLimit: math.Inf(1),
		IterLimit: math.MaxInt,
	}
}

// WithTimeLimit sets a wall-CPU time budget, in seconds, for the run.
func (l *Limits) WithTimeLimit(seconds float64) *Limits {
	l.TimeLimit = seconds
	return l
}

// WithIterLimit sets a maximum number of iterations for the run.
func (l *Limits) WithIterLimit(iters int) *Limits {
	l.IterLimit = iters
	return l
}
