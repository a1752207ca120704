package mcts

import (
	"math/rand"
	"testing"
)

// chainState is a minimal State whose tree is a single linear chain: each node has exactly one
// action until depth reaches max, at which point it has none.
type chainState struct {
	depth, max int
}

func (c *chainState) Copy() State                { cp := *c; return &cp }
func (c *chainState) Actions() []interface{} {
	if c.depth >= c.max {
		return nil
	}
	return []interface{}{"advance"}
}
func (c *chainState) Apply(action interface{}) { c.depth++ }

func TestTreeNodeDeletionCascade(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	root := NewRootNode(&chainState{max: 2}, rng)

	children := root.Expand(false)
	if len(children) != 1 {
		t.Fatalf("expected exactly one child, got %d", len(children))
	}
	child := children[0]

	grandchildren := child.Expand(false)
	if len(grandchildren) != 1 {
		t.Fatalf("expected exactly one grandchild, got %d", len(grandchildren))
	}
	if !child.expansion.IsFinished() {
		t.Fatal("child's expansion should be finished after producing its only grandchild")
	}
	grandchild := grandchildren[0]

	grandchild.Delete()

	if len(root.Children) != 0 {
		t.Fatalf("expected root's single child to also be removed, got %d children", len(root.Children))
	}
	if !IsSentinelBest(root.Stats.Overall.Best) || !IsSentinelWorst(root.Stats.Overall.Worst) {
		t.Error("root stats should be back at their initial sentinel state")
	}
	if !IsSentinelBest(root.Stats.Feas.Best) || !IsSentinelBest(root.Stats.Infeas.Best) {
		t.Error("root feas/infeas stats should be back at their initial sentinel state")
	}
}

func TestTreeNodeAncestorsAndDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	root := NewRootNode(&chainState{max: 3}, rng)
	child := root.Expand(false)[0]
	grandchild := child.Expand(false)[0]

	if grandchild.Depth != len(grandchild.Ancestors) {
		t.Errorf("depth %d should equal len(ancestors) %d", grandchild.Depth, len(grandchild.Ancestors))
	}
	if grandchild.Ancestors[0] != child {
		t.Error("ancestors[0] must be the immediate parent")
	}
	if grandchild.Root != root {
		t.Error("root pointer must be the tree root")
	}
}

func TestStateCopyApplyDoesNotMutateOriginal(t *testing.T) {
	original := &chainState{depth: 0, max: 2}
	clone := original.Copy()
	clone.Apply("advance")

	if original.depth != 0 {
		t.Errorf("Copy().Apply() must not mutate the original state, got depth=%d", original.depth)
	}
	if clone.(*chainState).depth != 1 {
		t.Errorf("expected clone to advance, got depth=%d", clone.(*chainState).depth)
	}
}
