package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/littletsp/config"
)

var (
	// Version is the semantic version, set via -ldflags at build time.
	Version = "dev"
	// Commit is the git commit SHA.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "littletsp",
		Short: "Exact travelling-salesman tours by Little's branch and bound",
		Long: `littletsp finds the cheapest round trip through every node of a small
(3 to 20 nodes) asymmetric cost matrix, starting and ending at node 0.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date))

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// setup loads the configuration, settles the log level and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, _ := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			printKeyValue(w, "version", Version)
			printKeyValue(w, "commit", Commit)
			printKeyValue(w, "built", Date)
		},
	}
}

// jobRetention is how long serve keeps finished jobs pollable.
const jobRetention = 15 * time.Minute
