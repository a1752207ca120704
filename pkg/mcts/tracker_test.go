package mcts

import "testing"

func TestSolutionTrackerUpdateTracksExtrema(t *testing.T) {
	tracker := NewSolutionTracker()
	if !IsSentinelBest(tracker.Best) || !IsSentinelWorst(tracker.Worst) {
		t.Fatal("fresh tracker must start at sentinel extrema")
	}

	var bestFired, worstFired, updateFired int
	tracker.OnBest = append(tracker.OnBest, func(old, new Solution) { bestFired++ })
	tracker.OnWorst = append(tracker.OnWorst, func(old, new Solution) { worstFired++ })
	tracker.OnUpdate = append(tracker.OnUpdate, func(sol Solution) { updateFired++ })

	tracker.Update(NewSolution(Real(5), nil))
	if tracker.Count != 1 || bestFired != 1 || worstFired != 1 || updateFired != 1 {
		t.Fatalf("first update should set both extrema: count=%d best=%d worst=%d update=%d",
			tracker.Count, bestFired, worstFired, updateFired)
	}

	tracker.Update(NewSolution(Real(2), nil))
	if bestFired != 2 || worstFired != 1 {
		t.Fatalf("improving update should fire OnBest only: best=%d worst=%d", bestFired, worstFired)
	}
	if tracker.Best.Value.(Real) != 2 {
		t.Fatalf("expected best value 2, got %v", tracker.Best.Value)
	}

	tracker.Update(NewSolution(Real(9), nil))
	if worstFired != 2 {
		t.Fatalf("worsening update should fire OnWorst: worst=%d", worstFired)
	}
	if updateFired != 3 {
		t.Fatalf("OnUpdate must fire unconditionally: update=%d", updateFired)
	}
}

func TestSolutionTrackerRefreshIdempotent(t *testing.T) {
	tracker := NewSolutionTracker()
	sols := []Solution{NewSolution(Real(4), nil), NewSolution(Real(1), nil)}

	if changed := tracker.Refresh(sols); !changed {
		t.Fatal("first refresh from sentinel must report a change")
	}
	if changed := tracker.Refresh(sols); changed {
		t.Fatal("second refresh with identical solutions must report no change")
	}
}

func TestSolutionTrackerFeasibilityFlag(t *testing.T) {
	feasible := NewSolution(Real(3), nil)
	infeasible := NewSolution(NewInfeasible(1), nil)
	if !feasible.IsFeas {
		t.Error("Real-valued solution should be feasible")
	}
	if infeasible.IsFeas {
		t.Error("Infeasible-valued solution should not be feasible")
	}
}
