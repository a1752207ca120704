// Command optmcts runs the MCTS solver against one of the bundled example problems from the
// command line, printing a colorized summary of the best solution found.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optmcts/optmcts/examples/knapsack"
	"github.com/optmcts/optmcts/pkg/mcts"
)

var (
	flagTimeLimit      float64
	flagIterLimit      int
	flagSeed           int64
	flagStatusInterval float64
	flagProblem        string
	flagVerbose        bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, termenv.String(err.Error()).Foreground(termenv.ANSIRed))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "optmcts",
		Short: "Run the optmcts solver against a bundled example problem",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a problem instance and print the best solution found",
		RunE:  runSolve,
	}
	flags := cmd.Flags()
	flags.Float64Var(&flagTimeLimit, "time-limit", 0, "wall-clock time budget in seconds (0 = unbounded)")
	flags.IntVar(&flagIterLimit, "iter-limit", 0, "iteration budget (0 = unbounded)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (unset = seeded from the current time)")
	flags.Float64Var(&flagStatusInterval, "status-interval", 1.0, "minimum seconds between status log lines")
	flags.StringVar(&flagProblem, "problem", "knapsack-1", "problem instance: knapsack-1, knapsack-2, or knapsack-8")
	flags.BoolVar(&flagVerbose, "verbose", false, "enable debug-level logging")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		mcts.SetLogger(newVerboseLogger())
	}

	instance, err := resolveInstance(flagProblem)
	if err != nil {
		return errors.Wrap(err, "resolving problem instance")
	}

	var rngSeed *int64
	if cmd.Flags().Changed("seed") {
		rngSeed = &flagSeed
	}
	solver := mcts.NewSolver(knapsack.NewState(instance), mcts.SolverOptions{
		RNGSeed:        rngSeed,
		StatusInterval: flagStatusInterval,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	solver.SetContext(ctx)

	limits := mcts.DefaultLimits()
	if flagTimeLimit > 0 {
		limits.WithTimeLimit(flagTimeLimit)
	}
	if flagIterLimit > 0 {
		limits.WithIterLimit(flagIterLimit)
	}

	sol := solver.Run(limits)
	if sol == nil {
		return errors.New("no solution found")
	}

	printSolution(*sol)
	return nil
}

func resolveInstance(name string) (knapsack.Instance, error) {
	switch name {
	case "knapsack-1":
		return knapsack.Instance1(), nil
	case "knapsack-2":
		return knapsack.Instance2(), nil
	case "knapsack-8":
		return knapsack.Instance8(), nil
	default:
		return knapsack.Instance{}, errors.Errorf("unknown problem %q", name)
	}
}

func printSolution(sol mcts.Solution) {
	profile := termenv.ColorProfile()
	value := termenv.String(fmt.Sprintf("%.0f", -sol.Value.Float64())).
		Foreground(profile.Color("2")).
		Bold()
	status := "feasible"
	if sol.IsOpt {
		status = "optimal"
	}
	fmt.Printf("best total value: %s (%s, found at iteration %d, %.3fs)\n",
		value, status, sol.Iteration, sol.Time)
	if items, ok := sol.Data.([]knapsack.Item); ok {
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Name
		}
		fmt.Printf("packed items: %v\n", names)
	}
}

func newVerboseLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	return l
}
