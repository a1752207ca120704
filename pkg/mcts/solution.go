package mcts

import (
	"math"
	"sync/atomic"
)

// solutionSeq hands out a monotonically increasing identity to every Solution created through
// NewSolution. Solutions built by other means (zero value, sentinels) keep id 0, which is never
// equal to a real solution's id; this lets SolutionTracker.Refresh detect "did the extremum
// actually change" by identity rather than by comparing arbitrary (and possibly non-comparable,
// e.g. slice-typed) payloads with ==.
var solutionSeq uint64

// Solution pairs an objective Value with optional opaque payload data. Solutions are immutable
// after creation, with the sole exception of IsOpt, which the Solver sets once the search tree
// has been proved exhausted.
type Solution struct {
	Value  Value       // objective value: Real or Infeasible
	Data   interface{} // optional, problem-specific payload
	IsFeas bool        // true iff Value is not Infeasible
	IsOpt  bool         // set only by the Solver, once the tree is proved exhausted

	// Iteration and Time are stamped by the Solver the moment this solution becomes the new
	// overall best; zero otherwise.
	Iteration int
	Time      float64

	id uint64
}

// NewSolution builds a Solution from an objective value and optional payload.
func NewSolution(value Value, data interface{}) Solution {
	return Solution{
		Value:  value,
		Data:   data,
		IsFeas: !IsInfeasible(value),
		id:     atomic.AddUint64(&solutionSeq, 1),
	}
}

func (s Solution) String() string {
	suffix := ""
	if s.IsOpt {
		suffix = "*"
	}
	return "Solution(value=" + valueString(s.Value) + suffix + ")"
}

func valueString(v Value) string {
	switch t := v.(type) {
	case Real:
		return t.String()
	case Infeasible:
		return t.String()
	default:
		return "<unknown value>"
	}
}

// sentinelBest and sentinelWorst are the initial "infinitely bad" / "infinitely good" placeholder
// solutions every SolutionTracker starts with. They must be displaced by the first real update.
var (
	sentinelBest  = Solution{Value: Infeasible{Violation: math.Inf(1)}, Data: "<initial best solution>"}
	sentinelWorst = Solution{Value: Real(math.Inf(-1)), Data: "<initial worst solution>"}
)

// IsSentinelBest reports whether sol is the tracker's untouched initial-best placeholder.
func IsSentinelBest(sol Solution) bool {
	return sol.id == 0 && sameValue(sol.Value, sentinelBest.Value)
}

// IsSentinelWorst reports whether sol is the tracker's untouched initial-worst placeholder.
func IsSentinelWorst(sol Solution) bool {
	return sol.id == 0 && sameValue(sol.Value, sentinelWorst.Value)
}

func sameValue(a, b Value) bool {
	ai, aok := a.(Infeasible)
	bi, bok := b.(Infeasible)
	if aok && bok {
		return ai.Violation == bi.Violation
	}
	ar, arok := a.(Real)
	br, brok := b.(Real)
	if arok && brok {
		return float64(ar) == float64(br)
	}
	return false
}

// solutionIdentical reports whether a and b are the very same solution instance (same identity
// sequence, or both untouched sentinels).
func solutionIdentical(a, b Solution) bool {
	if a.id != 0 || b.id != 0 {
		return a.id == b.id
	}
	return sameValue(a.Value, b.Value)
}
