/*
PURPOSE:
  Defines the root Cobra command for the boruvka-bench CLI.
  Handles global flags, logging setup and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Ctrl-C must stop the current backend process, not orphan it.
  - Every log line of a run carries the run id.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/boruvka-bench/main.go
  - Calls: Child commands (compare, scale, convert)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/boruvka-bench/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/daryltucker/boruvka-bench/internal/config"
	"github.com/daryltucker/boruvka-bench/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile   string
	logFormat string
	verbose   bool

	// runID tags every log line and exported point of this invocation.
	runID string

	rootCmd = &cobra.Command{
		Use:           "boruvka-bench",
		Short:         "Benchmark harness for Gunrock and Giraph Boruvka MST",
		Long:          `Runs the Gunrock (GPU) and Apache Giraph (CPU) MST implementations over a folder of graphs, collects timings and plots the comparison. Use 'compare --help' for benchmark options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := output.NewLogger(os.Stdout, logFormat, verbose)
			if err != nil {
				return err
			}
			runID = uuid.NewString()
			output.SetLogger(l.With("run_id", runID))
			return nil
		},
	}
)

// Execute executes the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./boruvka_bench.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (default: text on a terminal)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every trial")
}

// loadConfig loads the config file and validates it after overrides.
func loadConfig(override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
