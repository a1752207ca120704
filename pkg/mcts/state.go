package mcts

import "math/rand"

// State is the contract a problem implementation must satisfy. It has no reserved fields: any
// type implementing these three methods can be wrapped in a TreeNode and searched.
type State interface {
	// Copy returns a new, independent State equal to the receiver. S.Copy().Apply(a) must never
	// mutate S.
	Copy() State
	// Actions returns a finite, deterministically ordered slice of actions available from this
	// state. The engine may permute its own bookkeeping, but a repeated call with the same state
	// must yield the same slice.
	Actions() []interface{}
	// Apply mutates the state in place by taking the given action.
	Apply(action interface{})
}

// TerminalState is optionally implemented by a State to mark leaf states. When IsTerminal
// returns true, the owning node is not expanded; its solution is extracted immediately (via
// Solution) and the node is removed from the tree in the same iteration.
type TerminalState interface {
	IsTerminal() bool
}

// BoundedState is optionally implemented by a State to provide a lower bound on the best
// objective value obtainable from its subtree. Its presence enables branch-and-bound pruning by
// default.
type BoundedState interface {
	Bound() Value
}

// SolvableState is optionally implemented by a State to extract a terminal Solution. It is
// mandatory whenever IsTerminal may return true, or whenever Simulate is not implemented.
type SolvableState interface {
	Solution() Solution
}

// SimulatingState is optionally implemented by a State to run one or more simulations to
// completion. It may return either a single Solution or a slice of Solutions. When absent, the
// engine falls back to DefaultSimulate (uniform-random descent until terminal or out of
// actions, then Solution()).
type SimulatingState interface {
	// Simulate must return a Solution or a []Solution; any other dynamic type is a contract
	// violation (ErrBadSimulationResult).
	Simulate() interface{}
}

// DefaultSimulate performs a uniform-random descent from s until a terminal state is reached (if
// s implements TerminalState) or no actions remain, then extracts a Solution via SolvableState.
// This is used when the state does not implement SimulatingState itself.
func DefaultSimulate(s State, rng *rand.Rand) Solution {
	cur := s.Copy()
	for {
		if term, ok := cur.(TerminalState); ok && term.IsTerminal() {
			break
		}
		actions := cur.Actions()
		if len(actions) == 0 {
			break
		}
		cur.Apply(actions[rng.Intn(len(actions))])
	}
	solvable, ok := cur.(SolvableState)
	if !ok {
		panic(ErrMissingSolution)
	}
	return solvable.Solution()
}
