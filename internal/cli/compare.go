/*
PURPOSE:
  Defines the 'compare' subcommand.
  Benchmarks Gunrock against Giraph on every graph of a folder.

REQUIREMENTS:
  User-specified:
  - --graphs, --runs and --cores flags.
  - An unparseable --cores value terminates with a non-zero exit.

  Implementation-discovered:
  - Flags override config file values, which override defaults.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.RunCompare()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or the run cannot start.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Engine.

USAGE:
  boruvka-bench compare --graphs ./graphs_mtx --runs 5 --cores 0,1,3,6

RELATED FILES:
  - internal/cli/root.go
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/boruvka-bench/internal/config"
	"github.com/daryltucker/boruvka-bench/internal/engine"
)

var (
	graphsOverride  string
	runsOverride    int
	coresOverride   string
	resultsOverride string
	chartOverride   string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare Gunrock and Giraph on every graph",
	Long: `Benchmarks both MST backends on every .mtx file in the graphs folder.
1. Gunrock runs the .mtx file directly.
2. The graph is converted to an edge list (cached) and Giraph runs on it,
   pinned to the selected cores.
3. Times are summarized (mean, std, 95% CI), saved to JSON and plotted.

Failed trials are logged and skipped; they never stop the batch.`,
	Example: `  # All cores, 5 runs per graph
  boruvka-bench compare

  # First 6 logical processors
  boruvka-bench compare --cores 6

  # Specific processors (e.g. performance cores only)
  boruvka-bench compare --cores 0,1,3,6,8,10 --runs 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(func(cfg *config.Config) {
			flags := cmd.Flags()
			if flags.Changed("graphs") {
				cfg.GraphsDir = graphsOverride
			}
			if flags.Changed("runs") {
				cfg.Runs = runsOverride
			}
			if flags.Changed("cores") {
				cfg.Cores = coresOverride
			}
			if flags.Changed("results") {
				cfg.ResultsFile = resultsOverride
			}
			if flags.Changed("chart") {
				cfg.ChartFile = chartOverride
			}
		})
		if err != nil {
			return err
		}
		return engine.RunCompare(cmd.Context(), cfg, engine.ExecRunner{}, runID)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	defaults := config.DefaultConfig()
	compareCmd.Flags().StringVar(&graphsOverride, "graphs", defaults.GraphsDir, "Folder with .mtx files")
	compareCmd.Flags().IntVar(&runsOverride, "runs", defaults.Runs, "Runs per graph")
	compareCmd.Flags().StringVar(&coresOverride, "cores", "", "Cores to use. E.g. '6' (first 6) or '0,1,3,6,8,10' (specific IDs)")
	compareCmd.Flags().StringVar(&resultsOverride, "results", "", "Path of the JSON results file")
	compareCmd.Flags().StringVar(&chartOverride, "chart", "", "Path of the comparison chart")
}
