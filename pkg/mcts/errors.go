package mcts

import "github.com/pkg/errors"

// Usage errors: calling an operation outside of its preconditions.
var (
	ErrExpansionAlreadyStarted = errors.New("mcts: expansion already started")
	ErrExpansionNotStarted     = errors.New("mcts: expansion has not been started")
	ErrExpansionFinished       = errors.New("mcts: expansion is already finished")
	ErrChildAlreadyLinked      = errors.New("mcts: child already has a parent or children")
	ErrChildWrongParent        = errors.New("mcts: child does not belong to this parent")
	ErrEmptyIterable           = errors.New("mcts: argument iterable must be non-empty")
	ErrInfeasibleCutoff        = errors.New("mcts: prune cutoff cannot be infeasible")
)

// Contract-violation errors: the user-supplied State broke its contract.
var (
	ErrMissingSolution     = errors.New("mcts: state.Solution is required but was not implemented")
	ErrBadSimulationResult = errors.New("mcts: state.Simulate returned neither a Solution nor []Solution")
)
