package mcts

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// SolverOptions configures a Solver at construction time. Pruning, RNGSeed, RNGState, and
// StatusInterval are all optional; their zero values mean "auto-detect" / "time-seeded" /
// "no snapshot" / "1 second" respectively — see NewSolver.
type SolverOptions struct {
	// Pruning, if non-nil, forces pruning on or off. If nil, pruning is auto-detected: enabled
	// iff the root state implements BoundedState.
	Pruning *bool
	// RNGSeed seeds the solver's RNG. If nil, the RNG is seeded from the current time, matching
	// the original's "only seed when rng_seed is not None" default. Ignored if RNGState is set.
	RNGSeed *int64
	// RNGState takes precedence over RNGSeed when both are set.
	RNGState *RNGState
	// StatusInterval is the minimum number of seconds between status log lines. Defaults to 1.0.
	StatusInterval float64
}

// Solver drives MCTS iterations against a root node: selecting, expanding, simulating,
// backpropagating, and — when pruning is enabled — cutting off subtrees that can no longer beat
// the best feasible solution found so far.
type Solver struct {
	Root    *TreeNode
	Pruning bool
	RNG     *RNG

	statusInterval float64
	statusLast     float64
	cpu            *Clock
	iters          int

	Feas    *SolutionTracker
	Infeas  *SolutionTracker
	Overall *SolutionTracker

	ctx context.Context
}

// NewSolver builds a Solver around root (a bare State, which is wrapped in a fresh root
// TreeNode). Pruning detection, RNG seeding, and status-interval defaults follow opts.
func NewSolver(root State, opts SolverOptions) *Solver {
	pruning := false
	if _, ok := root.(BoundedState); ok {
		pruning = true
	}
	if opts.Pruning != nil {
		pruning = *opts.Pruning
	}
	infof(logrus.Fields{"pruning": pruning}, "Pruning is %s.", enabledString(pruning))

	seed := time.Now().UnixNano()
	if opts.RNGSeed != nil {
		seed = *opts.RNGSeed
	}
	infof(logrus.Fields{"seed": seed}, "Seeding RNG with %d...", seed)
	rng := NewRNG(seed)
	if opts.RNGState != nil {
		infof(nil, "Setting RNG state from snapshot...")
		rng.SetState(*opts.RNGState)
	}

	statusInterval := opts.StatusInterval
	if statusInterval == 0 {
		statusInterval = 1.0
	}

	rootNode := NewRootNode(root, rng.Rand)

	s := &Solver{
		Root:           rootNode,
		Pruning:        pruning,
		RNG:            rng,
		statusInterval: statusInterval,
		cpu:            NewClock(),
		Feas:           NewSolutionTracker(),
		Infeas:         NewSolutionTracker(),
		Overall:        NewSolutionTracker(),
		ctx:            context.Background(),
	}

	// Propagate every update on the root's trackers up to the solver's global trackers.
	rootNode.Stats.Feas.OnUpdate = append(rootNode.Stats.Feas.OnUpdate, s.Feas.Update)
	rootNode.Stats.Infeas.OnUpdate = append(rootNode.Stats.Infeas.OnUpdate, s.Infeas.Update)
	rootNode.Stats.Overall.OnUpdate = append(rootNode.Stats.Overall.OnUpdate, s.Overall.Update)

	s.Feas.OnBest = append(s.Feas.OnBest, s.onBestFeas)
	s.Feas.OnWorst = append(s.Feas.OnWorst, s.onWorstFeas)
	s.Infeas.OnBest = append(s.Infeas.OnBest, s.onBestInfeas)
	s.Infeas.OnWorst = append(s.Infeas.OnWorst, s.onWorstInfeas)
	s.Overall.OnBest = append(s.Overall.OnBest, s.onBestOverall)
	s.Overall.OnWorst = append(s.Overall.OnWorst, s.onWorstOverall)

	return s
}

func enabledString(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// SetContext wires a cooperative cancellation context into the solver; Run exits cleanly (as if
// a limit had been reached) once ctx is done.
func (s *Solver) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// Run drives the main search loop until time_limit or iter_limit (both relative to the current
// elapsed time/iteration count) is reached, the tree is exhausted, or cancellation occurs via the
// solver's context. It returns the best solution found (nil if none), with IsOpt set iff the tree
// was proved exhausted with at least one feasible solution.
func (s *Solver) Run(limits *Limits) *Solution {
	if limits == nil {
		limits = DefaultLimits()
	}
	timeLimit := limits.TimeLimit + s.cpu.Elapsed()
	iterLimit := math.MaxInt
	if limits.IterLimit < math.MaxInt-s.iters {
		iterLimit = limits.IterLimit + s.iters
	}
	infof(logrus.Fields{"time_limit": limits.TimeLimit, "iter_limit": limits.IterLimit},
		"Running with time_limit=%v and iter_limit=%v", limits.TimeLimit, limits.IterLimit)
	s.showStatus(true)

	s.cpu.Start()
	cancelled := false
loop:
	for s.cpu.Elapsed() < timeLimit && s.iters < iterLimit && !s.Root.IsExhausted() {
		select {
		case <-s.ctx.Done():
			cancelled = true
			break loop
		default:
		}
		s.showStatus(false)
		node := s.Root.Select()
		for _, child := range node.Expand(s.Pruning) {
			if child.Parent != node {
				panic("mcts: expand produced a child not linked to the selected node")
			}
			if term, ok := child.State.(TerminalState); ok && term.IsTerminal() {
				solvable, ok := child.State.(SolvableState)
				if !ok {
					panic(ErrMissingSolution)
				}
				child.Backpropagate(solvable.Solution())
				// Backpropagation may have triggered a pruning sweep that already removed
				// child from the tree; only delete it ourselves if it is still attached.
				if child.Root == s.Root {
					child.Delete()
				}
			} else {
				for _, sol := range child.Simulate() {
					child.Backpropagate(sol)
				}
				if child.Stats.Overall.Count == 0 {
					panic("mcts: simulate produced no solutions")
				}
			}
		}
		s.iters++
	}
	s.cpu.Stop()

	s.showStatus(true)
	if cancelled {
		warnf(nil, "Cancelled.")
	}
	infof(nil, "Search stopped.")

	if s.Overall.Count == 0 {
		warnf(nil, "Unable to find any solution.")
		return nil
	}
	best := s.Overall.Best
	if s.Root.IsExhausted() {
		infof(nil, "Search tree exhausted.")
		if s.Feas.Count == 0 {
			warnf(nil, "Unable to find feasible solutions.")
		} else {
			infof(nil, "Solution is optimal.")
			best.IsOpt = true
			s.Overall.Best = best
		}
	}
	return &best
}

func (s *Solver) showStatus(force bool) {
	now := s.cpu.Elapsed()
	if !force && now-s.statusLast < s.statusInterval {
		return
	}
	s.statusLast = now
	fields := logrus.Fields{
		"iter":      s.iters,
		"time":      now,
		"tree_size": s.Root.TreeSize(),
	}
	if s.Feas.Count > 0 {
		fields["feas_best"] = valueString(s.Feas.Best.Value)
		fields["feas_worst"] = valueString(s.Feas.Worst.Value)
		fields["feas_count"] = s.Feas.Count
	}
	if s.Infeas.Count > 0 {
		fields["infeas_best"] = valueString(s.Infeas.Best.Value)
		fields["infeas_worst"] = valueString(s.Infeas.Worst.Value)
		fields["infeas_count"] = s.Infeas.Count
	}
	infof(fields, "status")
}

func (s *Solver) onBestFeas(old, new Solution) {
	debugf(nil, "New best feasible solution: %s -> %s", valueString(old.Value), valueString(new.Value))
}

func (s *Solver) onWorstFeas(old, new Solution) {
	debugf(nil, "New worst feasible solution: %s -> %s", valueString(old.Value), valueString(new.Value))
}

func (s *Solver) onBestInfeas(old, new Solution) {
	debugf(nil, "New best infeasible solution: %s -> %s", valueString(old.Value), valueString(new.Value))
}

func (s *Solver) onWorstInfeas(old, new Solution) {
	debugf(nil, "New worst infeasible solution: %s -> %s", valueString(old.Value), valueString(new.Value))
}

func (s *Solver) onBestOverall(old, new Solution) {
	infof(nil, "New best overall solution: %s -> %s", valueString(old.Value), valueString(new.Value))
	new.Iteration = s.iters
	new.Time = s.cpu.Elapsed()
	s.Overall.Best = new
	if s.Pruning && new.IsFeas {
		before := s.Root.TreeSize()
		s.Root.Prune(new.Value)
		after := s.Root.TreeSize()
		infof(nil, "Pruning removed %d nodes: %d -> %d", before-after, before, after)
	}
	s.showStatus(true)
}

func (s *Solver) onWorstOverall(old, new Solution) {
	debugf(nil, "New worst overall solution: %s -> %s", valueString(old.Value), valueString(new.Value))
}
