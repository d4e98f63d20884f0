// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/multicut/counter"
	"github.com/katalvlaran/multicut/experiment"
	"github.com/katalvlaran/multicut/matching"
)

func newSolveCmd(root *rootFlags) *cobra.Command {
	inst := experiment.Instance{Name: "solve", Repetitions: 1}
	var edges bool
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate one graph and print its maximum matching",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.logger()
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			cfg := experiment.DefaultConfig()
			cfg.Instances = []experiment.Instance{inst}
			if err = cfg.Validate(); err != nil {
				return err
			}
			g, err := inst.Build(0)
			if err != nil {
				return err
			}

			ops := counter.New()
			start := time.Now()
			m, err := matching.FindMaximumMatching(g,
				matching.WithCounter(ops), matching.WithLogger(log))
			if err != nil {
				return err
			}
			log.Debug("solved", zap.Duration("duration", time.Since(start)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes=%d edges=%d matching=%d\n", g.NodeCount(), g.EdgeCount(), m.Size())
			for _, op := range ops.Ops() {
				fmt.Fprintf(out, "%s=%d\n", op, ops.Value(op))
			}
			if edges {
				for _, e := range m.Edges() {
					fmt.Fprintln(out, e)
				}
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&inst.Generator, "generator", experiment.GenErdosRenyi, "graph generator")
	f.IntVar(&inst.Nodes, "nodes", 100, "node count (leaves for star)")
	f.Float64Var(&inst.Probability, "probability", 0.1, "edge probability for erdos-renyi")
	f.IntVar(&inst.Edges, "edges", 0, "edge count for gnm")
	f.Int64Var(&inst.Seed, "seed", 1, "random seed")
	f.BoolVar(&inst.Connect, "connect", false, "join all components before solving")
	f.BoolVar(&edges, "edges-out", false, "print the matching edges")

	return cmd
}
