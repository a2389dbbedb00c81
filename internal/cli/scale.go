package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/boruvka-bench/internal/engine"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Measure Giraph speedup across performance cores",
	Long: `Runs Giraph on the graphs matching the scaling patterns once per thread
count, from 1 up to the number of configured performance cores, pinning
each run to the first N of those cores. Speedup is plotted against the
single-thread run.

Performance cores and graph patterns come from the config file
(scaling.perf_cores, scaling.patterns).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		return engine.RunScale(cmd.Context(), cfg, engine.ExecRunner{})
	},
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}
