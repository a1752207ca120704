package mcts

import (
	"math"
	"strconv"
)

// Infeasible represents a solution value that violates the problem's constraints. It extends the
// reals with a "worse than any real" magnitude: every Infeasible compares greater than every
// finite objective value, and two Infeasible values compare by their Violation (larger violation
// is worse). This lets the engine rank partial/illegal solutions by degree of constraint
// violation while still guaranteeing that a feasible solution always displaces an infeasible one
// as the overall best.
type Infeasible struct {
	Violation float64
}

// NewInfeasible builds an Infeasible with the given non-negative violation magnitude.
func NewInfeasible(violation float64) Infeasible {
	return Infeasible{Violation: violation}
}

// Float64 converts the violation to a plain float64, for display purposes only; it must never be
// used to compare an Infeasible against a real objective value (use Value.Less/Value.Equal).
func (i Infeasible) Float64() float64 {
	return i.Violation
}

func (i Infeasible) String() string {
	return "Infeasible(" + formatFloat(i.Violation) + ")"
}

func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "+Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Value is the ordered domain consumed by Solution: either a finite real (float64) or an
// Infeasible. Exactly one of the two dynamic types is ever stored.
type Value interface {
	// Less reports whether v is strictly better (smaller) than other, under the total order where every Infeasible is greater than every real, and two
	// Infeasibles compare by Violation.
	Less(other Value) bool
	// Equal reports value equality under the same ordering rule as Less.
	Equal(other Value) bool
	// Greater reports whether v strictly exceeds other.
	Greater(other Value) bool
	// Float64 converts to a plain float64 for display.
	Float64() float64
}

// Real is a finite (or, at the tracker-sentinel boundary, +-Inf) objective value.
type Real float64

func (r Real) Less(other Value) bool {
	switch o := other.(type) {
	case Real:
		return float64(r) < float64(o)
	case Infeasible:
		return true // every real is strictly less (better) than every Infeasible
	default:
		return false
	}
}

func (r Real) Greater(other Value) bool {
	switch o := other.(type) {
	case Real:
		return float64(r) > float64(o)
	case Infeasible:
		return false
	default:
		return false
	}
}

func (r Real) Equal(other Value) bool {
	o, ok := other.(Real)
	return ok && float64(r) == float64(o)
}

func (r Real) Float64() float64 {
	return float64(r)
}

func (r Real) String() string {
	return formatFloat(float64(r))
}

func (i Infeasible) Less(other Value) bool {
	o, ok := other.(Infeasible)
	return ok && i.Violation < o.Violation
}

func (i Infeasible) Greater(other Value) bool {
	_, ok := other.(Infeasible)
	if !ok {
		return true // every Infeasible is strictly greater (worse) than every real
	}
	return i.Violation > other.(Infeasible).Violation
}

func (i Infeasible) Equal(other Value) bool {
	o, ok := other.(Infeasible)
	return ok && i.Violation == o.Violation
}

// IsInfeasible reports whether v holds an Infeasible value.
func IsInfeasible(v Value) bool {
	_, ok := v.(Infeasible)
	return ok
}
