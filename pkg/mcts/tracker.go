package mcts

// BestHandler is invoked, in registration order, whenever a SolutionTracker's best solution
// changes. Handlers must not mutate the tracker that invoked them.
type BestHandler func(old, new Solution)

// WorstHandler is the symmetric callback for worst-solution changes.
type WorstHandler func(old, new Solution)

// UpdateHandler is invoked on every call to SolutionTracker.Update, regardless of whether best or
// worst changed.
type UpdateHandler func(sol Solution)

// SolutionTracker accumulates the best and worst solutions seen so far (in the minimization
// sense: best = smallest value), plus a running count, and fires observer callbacks synchronously
// as those extrema change.
type SolutionTracker struct {
	Count int

	Best  Solution
	Worst Solution

	OnBest   []BestHandler
	OnWorst  []WorstHandler
	OnUpdate []UpdateHandler
}

// NewSolutionTracker returns a tracker seeded with the "infinitely bad" / "infinitely good"
// sentinel placeholders; they are displaced by the first call to Update.
func NewSolutionTracker() *SolutionTracker {
	return &SolutionTracker{
		Best:  sentinelBest,
		Worst: sentinelWorst,
	}
}

// Update folds a new solution into the tracker: increments Count, and — if it improves on the
// current best or worst — replaces the extremum and fires the corresponding handlers before
// unconditionally firing the OnUpdate handlers.
func (t *SolutionTracker) Update(sol Solution) {
	t.Count++
	if sol.Value.Less(t.Best.Value) {
		old := t.Best
		t.Best = sol
		for _, h := range t.OnBest {
			h(old, sol)
		}
	}
	if sol.Value.Greater(t.Worst.Value) {
		old := t.Worst
		t.Worst = sol
		for _, h := range t.OnWorst {
			h(old, sol)
		}
	}
	for _, h := range t.OnUpdate {
		h(sol)
	}
}

// Extrema returns the (best, worst) pair, used by Stats.refresh to gather a child's contribution
// without re-walking its whole solution history.
func (t *SolutionTracker) Extrema() (best, worst Solution) {
	return t.Best, t.Worst
}

// Refresh recomputes Best/Worst from sols alone (Count is left untouched), returning true iff
// either extremum actually changed. Used after a subtree is deleted from the tree, when the
// removed nodes' contributions must be purged from ancestor statistics.
func (t *SolutionTracker) Refresh(sols []Solution) bool {
	oldBest, oldWorst := t.Best, t.Worst
	newBest, newWorst := sentinelBest, sentinelWorst
	for _, sol := range sols {
		if sol.Value.Less(newBest.Value) {
			newBest = sol
		}
		if sol.Value.Greater(newWorst.Value) {
			newWorst = sol
		}
	}
	t.Best = newBest
	t.Worst = newWorst
	return !solutionIdentical(oldBest, newBest) || !solutionIdentical(oldWorst, newWorst)
}
