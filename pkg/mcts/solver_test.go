package mcts

import "testing"

func seedPtr(v int64) *int64 { return &v }

// bitsState models choosing n binary digits, minimizing their sum: the optimum is the all-zero
// string. Bound() returns the sum accumulated so far (remaining digits can only add 0 or more),
// which is exactly the fractional-relaxation style lower bound pruning needs.
type bitsState struct {
	chosen []int
	n      int
	sum    int
}

func (b *bitsState) Copy() State {
	return &bitsState{chosen: append([]int(nil), b.chosen...), n: b.n, sum: b.sum}
}

func (b *bitsState) Actions() []interface{} {
	if len(b.chosen) >= b.n {
		return nil
	}
	return []interface{}{0, 1}
}

func (b *bitsState) Apply(action interface{}) {
	bit := action.(int)
	b.chosen = append(b.chosen, bit)
	b.sum += bit
}

func (b *bitsState) IsTerminal() bool {
	return len(b.chosen) >= b.n
}

func (b *bitsState) Solution() Solution {
	return NewSolution(Real(b.sum), append([]int(nil), b.chosen...))
}

func (b *bitsState) Bound() Value {
	return Real(b.sum)
}

func TestSolverAutoDetectsPruningFromBoundedState(t *testing.T) {
	solver := NewSolver(&bitsState{n: 4}, SolverOptions{RNGSeed: seedPtr(1)})
	if !solver.Pruning {
		t.Error("pruning should auto-enable when the root state implements BoundedState")
	}
}

func TestSolverPruningReducesTreeSizeOnNewBest(t *testing.T) {
	solver := NewSolver(&bitsState{n: 4}, SolverOptions{RNGSeed: seedPtr(1)})
	sol := solver.Run(DefaultLimits().WithIterLimit(200))

	if sol == nil {
		t.Fatal("expected a solution")
	}
	if sol.Value.Float64() != 0 {
		t.Fatalf("expected optimum 0 (all-zero string), got %v", sol.Value)
	}
	// Pruning should have kept the tree far smaller than the unpruned 2^4 leaf search space.
	if size := solver.Root.TreeSize(); size > 16 {
		t.Errorf("expected pruning to keep tree small, got size=%d", size)
	}
}

func TestSolverWithoutBoundDisablesPruning(t *testing.T) {
	solver := NewSolver(&chainState{max: 2}, SolverOptions{RNGSeed: seedPtr(1)})
	if solver.Pruning {
		t.Error("pruning should stay disabled when the root state has no Bound method")
	}
}

func (c *chainState) IsTerminal() bool { return c.depth >= c.max }
func (c *chainState) Solution() Solution { return NewSolution(Real(c.depth), nil) }

func TestStatsRefreshIdempotentAfterChildUpdate(t *testing.T) {
	root := NewSolver(&chainState{max: 1}, SolverOptions{}).Root
	children := root.Expand(false)
	child := children[0]
	// Update only the child's own stats directly (bypassing Backpropagate, which would also sync
	// root's trackers immediately) so root.Stats.Refresh has something new to pick up.
	child.Stats.Update(NewSolution(Real(1), nil), child)

	if changed := root.Stats.Refresh(); !changed {
		t.Fatal("first refresh after a child-only update must report a change")
	}
	if changed := root.Stats.Refresh(); changed {
		t.Fatal("second refresh without intervening mutation must report no change")
	}
}
