package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/littletsp/cache"
	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/render"
	"github.com/katalvlaran/littletsp/solver"
	"github.com/katalvlaran/littletsp/tsp"
)

// ErrVerifyMismatch is returned by solve --verify when the reference solver
// finds a different optimum.
var ErrVerifyMismatch = errors.New("cli: verification failed")

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	format    string        // input format; empty guesses from the extension
	algorithm string        // overrides solver.algorithm
	timeout   time.Duration // overrides solver.timeout
	verify    bool          // cross-check with Held–Karp
	dot       string        // write the tour as DOT
	svg       string        // write the tour as SVG
	allEdges  bool          // draw unused edges in DOT/SVG
	noCache   bool
	jsonOut   bool
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Find the optimal tour of a cost matrix (FILE or - for stdin)",
		Long: `Solve reads a square cost matrix and prints the cheapest tour that starts
and ends at node 0. Blocked transitions are written "-" or -1 in text and
TOML files and null (JSON) or ~ (YAML) in documents.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("timeout") {
				opts.timeout = c.cfg.Solver.Timeout.Duration
			}
			if !cmd.Flags().Changed("algorithm") {
				opts.algorithm = c.cfg.Solver.Algorithm
			}
			return c.runSolve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: text, json, yaml, toml (default: from extension)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "little", "solver: little or heldkarp")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 0, "give up after this long (0 = never)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "cross-check the optimum with the Held-Karp solver")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the tour as Graphviz DOT to this file")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write the tour as SVG to this file")
	cmd.Flags().BoolVar(&opts.allEdges, "all-edges", false, "also draw unused transitions in --dot/--svg")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the route cache")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, stdin io.Reader, out io.Writer, path string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	m, err := readMatrix(stdin, path, opts.format)
	if err != nil {
		return err
	}
	logger.Debug("matrix loaded", "path", path, "nodes", m.Size())

	algo, err := tsp.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}
	solveOptions := c.cfg.SolveOptions()
	solveOptions.Algo = algo

	rc, err := c.openCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer rc.Close()

	svc := solver.New(solver.Options{
		Solve:    solveOptions,
		Timeout:  opts.timeout,
		Workers:  1,
		Cache:    rc,
		CacheTTL: c.cfg.Cache.TTL.Duration,
		Logger:   logger,
	})
	defer svc.Close()

	prog := newProgress(logger)
	res, err := svc.Solve(ctx, m)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Searched %d nodes", m.Size()))

	switch res.Status {
	case solver.StatusSolved:
	case solver.StatusNoTour:
		if opts.jsonOut {
			_ = writeJSON(out, res)
		} else {
			printWarning(out, "no tour visits every node with the allowed transitions")
		}
		return res.Err
	default:
		return res.Err
	}

	if opts.verify {
		if err := verify(ctx, m, *res.Route); err != nil {
			return err
		}
		logger.Info("verified with Held-Karp", "cost", res.Route.Cost)
	}

	if opts.jsonOut {
		if err := writeJSON(out, res); err != nil {
			return err
		}
	} else {
		printRoute(out, *res.Route, res.Stats, res.Cached)
		if opts.verify {
			printSuccess(out, "optimum confirmed by Held-Karp")
		}
	}

	return writeDiagrams(ctx, out, m, *res.Route, opts)
}

// readMatrix decodes path ("-" for stdin) in the named or guessed format.
func readMatrix(stdin io.Reader, path, format string) (*matrix.Costs, error) {
	f := matrix.FormatFromPath(path)
	if format != "" {
		var err error
		if f, err = matrix.ParseFormat(format); err != nil {
			return nil, fmt.Errorf("%w: %q", err, format)
		}
	}

	r := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	m, err := matrix.Decode(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (c *CLI) openCache(ctx context.Context, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	rc, err := cache.Open(ctx, c.cfg.CacheOptions())
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return rc, nil
}

// verify re-solves with Held–Karp and compares the optimum.
func verify(ctx context.Context, m *matrix.Costs, r tsp.Route) error {
	if m.Size() > tsp.HeldKarpMaxNodes {
		return fmt.Errorf("%w: %d nodes exceed the Held-Karp limit of %d", ErrVerifyMismatch, m.Size(), tsp.HeldKarpMaxNodes)
	}
	if err := tsp.ValidateTour(r.Sequence, m.Size()); err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyMismatch, err)
	}
	cost, err := tsp.TourCost(m, r.Sequence)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyMismatch, err)
	}
	ref, err := tsp.HeldKarp(ctx, m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyMismatch, err)
	}
	if cost != r.Cost || ref.Cost != r.Cost {
		return fmt.Errorf("%w: route cost %d, recomputed %d, Held-Karp %d", ErrVerifyMismatch, r.Cost, cost, ref.Cost)
	}
	return nil
}

func writeDiagrams(ctx context.Context, out io.Writer, m *matrix.Costs, r tsp.Route, opts solveOpts) error {
	if opts.dot == "" && opts.svg == "" {
		return nil
	}
	dot, err := render.DOT(m, r, render.Options{AllEdges: opts.allEdges})
	if err != nil {
		return err
	}

	if opts.dot != "" {
		if err := os.WriteFile(opts.dot, []byte(dot), 0o644); err != nil {
			return err
		}
		if !opts.jsonOut {
			printFile(out, opts.dot)
		}
	}
	if opts.svg != "" {
		svg, err := render.SVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
			return err
		}
		if !opts.jsonOut {
			printFile(out, opts.svg)
		}
	}
	return nil
}

// jsonResult is the --json form of a solve outcome.
type jsonResult struct {
	Status solver.Status `json:"status"`
	Route  *tsp.Route    `json:"route,omitempty"`
	Stats  tsp.Stats     `json:"stats"`
	Cached bool          `json:"cached"`
}

func writeJSON(w io.Writer, res solver.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{Status: res.Status, Route: res.Route, Stats: res.Stats, Cached: res.Cached})
}
