// Package mcts implements a Monte Carlo Tree Search engine adapted for single-agent
// combinatorial optimization (minimization) rather than two-player games.
//
// Given a user-defined State (enumerable actions, in-place apply, optional bound/terminal/
// simulation hooks), the Solver incrementally builds an asymmetric search tree, accumulates
// solution statistics at every node, selects promising frontier nodes via a UCT-style score
// adapted for minimization, optionally prunes subtrees using lower bounds (branch-and-bound),
// and tracks the best solution found so far.
package mcts
