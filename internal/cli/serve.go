package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/littletsp/server"
	"github.com/katalvlaran/littletsp/solver"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}

			rc, err := c.openCache(ctx, noCache)
			if err != nil {
				return err
			}
			defer rc.Close()

			svc := solver.New(solver.Options{
				Solve:     c.cfg.SolveOptions(),
				Timeout:   c.cfg.Solver.Timeout.Duration,
				Workers:   c.cfg.Solver.Workers,
				Cache:     rc,
				CacheTTL:  c.cfg.Cache.TTL.Duration,
				Retention: jobRetention,
				Logger:    logger,
			})
			defer svc.Close()

			srv := server.New(server.Config{
				Addr:         addr,
				ReadTimeout:  c.cfg.Server.ReadTimeout.Duration,
				WriteTimeout: c.cfg.Server.WriteTimeout.Duration,
			}, svc, logger)

			return srv.Run(ctx, nil)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the route cache")

	return cmd
}
