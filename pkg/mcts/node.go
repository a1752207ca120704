package mcts

import "math/rand"

// TreeNode is an n-ary search tree node: it owns a state, a lazy Expansion of that state's
// children, and a Stats accumulator, and exposes the select/expand/simulate/backpropagate/
// bound/prune/delete operations that drive the search.
//
// Ownership: children are owned by their parent; Parent, Ancestors, and Root are non-owning
// back-references maintained exclusively by addChild/removeChild. A node is never reparented —
// the tree only ever creates and deletes nodes.
type TreeNode struct {
	Parent    *TreeNode
	Children  []*TreeNode
	Ancestors []*TreeNode // bottom-up, starting from Parent
	Root      *TreeNode
	Depth     int

	State      State // set to nil once expansion finishes with at least one surviving child
	Action     interface{}
	Stats      *Stats
	expansion  *Expansion
	cachedBound Value // memoized once Bound() is first called

	// SelectionInterleaving allows the search to pick a still-expanding node itself as a descent
	// candidate, competing with its already-materialized children. Off by default: parents must
	// be fully expanded before their children are considered.
	SelectionInterleaving bool
	// ExpansionLimit caps how many children a single Expand call may materialize. Default 1.
	ExpansionLimit int

	rng *rand.Rand
}

// NewRootNode builds a fresh root node around state.
func NewRootNode(state State, rng *rand.Rand) *TreeNode {
	n := &TreeNode{
		State:          state,
		ExpansionLimit: 1,
		rng:            rng,
	}
	n.Root = n
	n.Stats = NewStats(n)
	n.expansion = NewExpansion(state)
	return n
}

func newChildNode(action interface{}, state State, rng *rand.Rand) *TreeNode {
	n := &TreeNode{
		State:          state,
		Action:         action,
		ExpansionLimit: 1,
		rng:            rng,
	}
	n.Root = n
	n.Stats = NewStats(n)
	n.expansion = NewExpansion(state)
	return n
}

// TreeSize returns the number of nodes in this (sub-)tree, including the receiver.
func (n *TreeNode) TreeSize() int {
	count := 1
	for _, c := range n.Children {
		count += c.TreeSize()
	}
	return count
}

// IsExhausted reports whether n is fully expanded and has no live children; exhausted non-root
// nodes must be detached from the tree.
func (n *TreeNode) IsExhausted() bool {
	return n.expansion.IsFinished() && len(n.Children) == 0
}

// addChild links node as a new child of n: node must currently have neither parent nor children.
func (n *TreeNode) addChild(node *TreeNode) {
	if node.Parent != nil || len(node.Children) > 0 {
		panic(ErrChildAlreadyLinked)
	}
	n.Children = append(n.Children, node)
	node.Parent = n
	node.Ancestors = make([]*TreeNode, 0, len(n.Ancestors)+1)
	node.Ancestors = append(node.Ancestors, n)
	node.Ancestors = append(node.Ancestors, n.Ancestors...)
	node.Root = n.Root
	node.Depth = n.Depth + 1
}

// removeChild unlinks node from n, resetting it to a standalone root of depth 0.
func (n *TreeNode) removeChild(node *TreeNode) {
	if node.Parent != n {
		panic(ErrChildWrongParent)
	}
	idx := -1
	for i, c := range n.Children {
		if c == node {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(ErrChildWrongParent)
	}
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	node.Parent = nil
	node.Ancestors = nil
	node.Root = node
	node.Depth = 0
}

// Select descends from n while the current node is fully expanded (or, with
// SelectionInterleaving on, has at least started expanding), at each step moving to whichever
// candidate among the children (plus, under interleaving, the node itself) maximizes
// SelectionScore. Ties are broken uniformly at random. It stops when no candidate improves on
// staying put, or when the current node cannot yet be descended past.
func (n *TreeNode) Select() *TreeNode {
	node := n
	for {
		exp := node.expansion
		if !exp.IsStarted() || (!exp.IsFinished() && !node.SelectionInterleaving) {
			break
		}
		cands := node.Children
		if !exp.IsFinished() && node.SelectionInterleaving {
			cands = append(append([]*TreeNode(nil), node.Children...), node)
		}
		cands, _ = maxByScore(cands)
		next := cands[0]
		if len(cands) > 1 {
			next = cands[node.rng.Intn(len(cands))]
		}
		if next == node {
			break
		}
		node = next
	}
	return node
}

func maxByScore(nodes []*TreeNode) ([]*TreeNode, float64) {
	if len(nodes) == 0 {
		panic(ErrEmptyIterable)
	}
	best := []*TreeNode{nodes[0]}
	bestScore := nodes[0].Stats.SelectionScore()
	for _, n := range nodes[1:] {
		score := n.Stats.SelectionScore()
		if score > bestScore {
			best = []*TreeNode{n}
			bestScore = score
		} else if score == bestScore {
			best = append(best, n)
		}
	}
	return best, bestScore
}

// Expand materializes at most ExpansionLimit new children (starting the expansion on first
// call). Each candidate child has its bound checked against cutoff when pruning is enabled and
// the cutoff is a finite real value; children whose bound is no better than cutoff are dropped
// without being linked into the tree. After the loop, a now-exhausted childless node deletes
// itself, and a finished-but-non-empty node's expansionFinished hook runs.
func (n *TreeNode) Expand(pruning bool) []*TreeNode {
	exp := n.expansion
	if !exp.IsStarted() {
		exp.Start()
	}
	var produced []*TreeNode
	cutoff := n.Root.Stats.Overall.Best.Value
	_, cutoffIsInfeasible := cutoff.(Infeasible)
	for i := 0; i < n.ExpansionLimit && !exp.IsFinished(); i++ {
		action, state := exp.Next()
		child := newChildNode(action, state, n.rng)
		if pruning && !cutoffIsInfeasible {
			if !child.Bound().Less(cutoff) {
				continue // bound >= cutoff: drop without linking
			}
		}
		n.addChild(child)
		produced = append(produced, child)
	}
	if exp.IsFinished() {
		if len(n.Children) == 0 {
			n.delete()
		} else {
			n.expansionFinished()
		}
	}
	return produced
}

// expansionFinished runs once a node's expansion completes with at least one surviving child: it
// caches the bound (when the state implements BoundedState), then releases the state reference
// (the contract allows this because nothing below here needs State again except via the cached
// bound and the Expansion, which has already consumed it).
func (n *TreeNode) expansionFinished() {
	if n.HasBound() {
		n.Bound()
	}
	n.State = nil
}

// Simulate runs the state's simulation strategy (or the default uniform-random one) and
// normalizes the result to a slice of Solutions.
func (n *TreeNode) Simulate() []Solution {
	if sim, ok := n.State.(SimulatingState); ok {
		result := sim.Simulate()
		switch v := result.(type) {
		case Solution:
			return []Solution{v}
		case []Solution:
			return v
		default:
			panic(ErrBadSimulationResult)
		}
	}
	return []Solution{DefaultSimulate(n.State, n.rng)}
}

// Backpropagate folds sol into this node's statistics and every ancestor's, bottom-up (i.e. in
// Ancestors order: parent first, then grandparent, and so on).
func (n *TreeNode) Backpropagate(sol Solution) {
	n.Stats.Update(sol, n)
	for _, a := range n.Ancestors {
		a.Stats.Update(sol, n)
	}
}

// Bound computes (and memoizes) a lower bound on the optimal objective value obtainable from
// n's subtree, delegating to the state's BoundedState implementation.
func (n *TreeNode) Bound() Value {
	if n.cachedBound == nil {
		b, ok := n.State.(BoundedState)
		if !ok {
			panic("mcts: node.Bound called but state does not implement BoundedState")
		}
		n.cachedBound = b.Bound()
	}
	return n.cachedBound
}

// HasBound reports whether n's underlying state implements BoundedState, without forcing a
// (possibly expensive) bound computation.
func (n *TreeNode) HasBound() bool {
	if n.cachedBound != nil {
		return true
	}
	if n.State == nil {
		return false
	}
	_, ok := n.State.(BoundedState)
	return ok
}

// Prune discards, depth-first starting at n, every node/subtree whose bound is no better than
// cutoff. cutoff must not be Infeasible. Only called after a new best feasible solution is found.
func (n *TreeNode) Prune(cutoff Value) {
	if IsInfeasible(cutoff) {
		panic(ErrInfeasibleCutoff)
	}
	stack := []*TreeNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !node.Bound().Less(cutoff) {
			node.delete()
		} else {
			stack = append(stack, node.Children...)
		}
	}
}

// delete removes a leaf or entire subtree from the search tree and refreshes ancestor statistics.
// The node actually removed may not be the receiver but one of its ancestors: delete() first
// walks upward while doing so would leave the parent exhausted (fully expanded, single child),
// since that parent must be removed too. Ancestor stats are then refreshed bottom-up, stopping as
// soon as one level reports no change (further ancestors aggregate from it, so they cannot
// change either).
func (n *TreeNode) delete() {
	node := n
	for node.Parent != nil && node.Parent.expansion.IsFinished() && len(node.Parent.Children) == 1 {
		node = node.Parent
	}
	parent := node.Parent
	if parent == nil {
		// node is (or has become, via the walk) the root itself.
		if len(node.Children) > 0 {
			node.removeChild(node.Children[0])
		}
		node.Stats.Refresh()
		return
	}
	ancestors := node.Ancestors // snapshot before removeChild clears it
	parent.removeChild(node)
	for _, a := range ancestors {
		if !a.Stats.Refresh() {
			break
		}
	}
}

// Delete is the exported form of delete, used by callers outside the package (e.g. the Solver)
// that need to remove a node directly, such as a just-backpropagated terminal child.
func (n *TreeNode) Delete() {
	n.delete()
}
