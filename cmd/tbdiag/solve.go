// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/tbdiag/serialize"
	"github.com/katalvlaran/tbdiag/solver"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	parallel      bool
	workers       int
	maxIterations int
	output        string
}

func newSolveCmd(rf *rootFlags) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Diagonalize the model and print the spectrum",
		Long: `Build the model, diagonalize every block and print one line per state:
the global state number, its block and its energy.

Examples:
  tbdiag solve -c chain.yaml
  tbdiag solve -c chain.yaml --parallel --workers 8 --output spectrum.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, rf, f)
		},
	}
	fl := cmd.Flags()
	fl.BoolVar(&f.parallel, "parallel", false, "diagonalize blocks concurrently (overrides solver.parallel)")
	fl.IntVar(&f.workers, "workers", 0, "concurrent blocks when --parallel (overrides solver.workers)")
	fl.IntVar(&f.maxIterations, "max-iterations", solver.DefaultMaxIterations, "self-consistency iteration cap (overrides solver.max_iterations)")
	fl.StringVarP(&f.output, "output", "o", "", "write hopping and spectrum records to this YAML file")

	return cmd
}

func runSolve(cmd *cobra.Command, rf *rootFlags, f *solveFlags) error {
	cfg, logger, err := rf.load(cmd)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("parallel") {
		cfg.Solver.Parallel = f.parallel
	}
	if fl.Changed("workers") {
		cfg.Solver.Workers = f.workers
	}
	if fl.Changed("max-iterations") {
		cfg.Solver.MaxIterations = f.maxIterations
	}
	if err = cfg.Solver.Validate(); err != nil {
		return fmt.Errorf("solver flags: %w", err)
	}

	store, err := cfg.BuildModel()
	if err != nil {
		return err
	}
	bd, err := solver.New(store, append(cfg.SolverOptions(), solver.WithLogger(logger))...)
	if err != nil {
		return err
	}
	if err = bd.Init(); err != nil {
		return err
	}
	if err = bd.Run(); err != nil {
		return err
	}

	vals, err := bd.EigenValues()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tBLOCK\tENERGY")
	for state, e := range vals {
		b, err := store.BlockOf(state)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%d\t%.10g\n", state, b, e)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if f.output == "" {
		return nil
	}
	spectrum, err := bd.Records()
	if err != nil {
		return err
	}
	out, err := os.Create(f.output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err = serialize.Encode(out, append(store.Records(), spectrum...)); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
