package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/boruvka-bench/internal/config"
	"github.com/daryltucker/boruvka-bench/internal/engine"
)

var (
	convertInput  string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert .gr graphs to .mtx",
	Example: `  boruvka-bench convert --input ./graphs_raw --output ./graphs_mtx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(func(cfg *config.Config) {
			if cmd.Flags().Changed("input") {
				cfg.RawGraphsDir = convertInput
			}
			if cmd.Flags().Changed("output") {
				cfg.GraphsDir = convertOutput
			}
		})
		if err != nil {
			return err
		}
		return engine.RunConvert(cmd.Context(), cfg, engine.ExecRunner{})
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	defaults := config.DefaultConfig()
	convertCmd.Flags().StringVar(&convertInput, "input", defaults.RawGraphsDir, "Folder with .gr files")
	convertCmd.Flags().StringVar(&convertOutput, "output", defaults.GraphsDir, "Folder to save .mtx files")
}
