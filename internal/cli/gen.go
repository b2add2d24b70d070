package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/littletsp/builder"
	"github.com/katalvlaran/littletsp/matrix"
)

// genOpts holds the flags of the gen command.
type genOpts struct {
	kind      string
	nodes     int
	seed      int64
	minWeight int
	maxWeight int
	blocked   float64
	symmetric bool
	format    string
	output    string
}

func (c *CLI) genCommand() *cobra.Command {
	var opts genOpts

	kinds := make([]string, 0, len(builder.Kinds()))
	for _, k := range builder.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a cost matrix instance",
		Long: `Gen writes a reproducible test instance. Kinds:

  random     independent weights per transition
  euclidean  rounded distances between random grid points
  planted    a hidden tour of cost N among heavier transitions
  bipartite  transitions only across two halves (odd N has no tour)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			bopts := []builder.BuilderOption{builder.WithSeed(opts.seed)}
			if opts.minWeight < 0 || opts.maxWeight < opts.minWeight {
				return fmt.Errorf("invalid weight range [%d,%d]", opts.minWeight, opts.maxWeight)
			}
			bopts = append(bopts, builder.WithUniformWeight(opts.minWeight, opts.maxWeight))
			if opts.blocked < 0 || opts.blocked > 1 {
				return fmt.Errorf("--blocked must be within [0,1], got %g", opts.blocked)
			}
			bopts = append(bopts, builder.WithBlockedProbability(opts.blocked))
			if opts.symmetric {
				bopts = append(bopts, builder.WithSymmetric())
			}

			f, err := matrix.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			m, err := builder.Build(builder.Kind(opts.kind), opts.nodes, bopts...)
			if err != nil {
				return err
			}
			logger.Debug("instance generated", "kind", opts.kind, "nodes", m.Size(), "seed", opts.seed)

			if opts.output == "" || opts.output == "-" {
				return matrix.Encode(cmd.OutOrStdout(), m, f)
			}
			out, err := os.Create(opts.output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", opts.output, err)
			}
			if err = matrix.Encode(out, m, f); err != nil {
				out.Close()
				return err
			}
			if err = out.Close(); err != nil {
				return err
			}
			printFile(cmd.ErrOrStderr(), opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", string(builder.KindRandom), "instance kind: "+strings.Join(kinds, ", "))
	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", 10, "number of nodes")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.minWeight, "min", 1, "minimum transition weight")
	cmd.Flags().IntVar(&opts.maxWeight, "max", 100, "maximum transition weight")
	cmd.Flags().Float64Var(&opts.blocked, "blocked", 0, "probability that a transition is blocked")
	cmd.Flags().BoolVar(&opts.symmetric, "symmetric", false, "mirror costs (random kind)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(matrix.FormatText), "output format: text, json, yaml, toml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
