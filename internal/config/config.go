/*
PURPOSE:
  Defines the configuration structure and loading logic for boruvka-bench.
  Adheres to "Config IS Code" philosophy: every tool path, output pattern
  and JVM flag lives here instead of in package-level constants.

REQUIREMENTS:
  User-specified:
  - Allow configuration of backend locations, graph folders and trial counts.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Regex patterns must be injectable for tests.
  - Values must be validated before a long batch starts.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3, github.com/go-playground/validator/v10

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default config files fall back to defaults.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml and validate.
  - Defaults mirror the layout of the experiment_utils directory.

USAGE:
  cfg, err := config.Load("boruvka_bench.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for boruvka-bench.
type Config struct {
	Gunrock GunrockConfig `yaml:"gunrock"`
	Giraph  GiraphConfig  `yaml:"giraph"`

	// GraphsDir holds the .mtx inputs, RawGraphsDir the .gr sources.
	GraphsDir    string `yaml:"graphs_dir" validate:"required"`
	RawGraphsDir string `yaml:"raw_graphs_dir" validate:"required"`
	Runs         int    `yaml:"runs" validate:"min=1"`
	// Cores is the raw processor spec; empty means all processors.
	Cores string `yaml:"cores"`

	TempDir         string `yaml:"temp_dir" validate:"required"`
	ScalingTempDir  string `yaml:"scaling_temp_dir" validate:"required"`
	ResultsFile     string `yaml:"results_file" validate:"required"`
	TrialLogFile    string `yaml:"trial_log_file"`
	ChartFile       string `yaml:"chart_file" validate:"required"`
	ScalingFile     string `yaml:"scaling_results_file" validate:"required"`
	ScalingChart    string `yaml:"scaling_chart_file" validate:"required"`
	AffinityCommand string `yaml:"affinity_command"`

	// TrialTimeout bounds a single backend invocation. Zero waits forever.
	TrialTimeout time.Duration `yaml:"trial_timeout" validate:"min=0"`

	Scaling ScalingConfig `yaml:"scaling"`
	Influx  InfluxConfig  `yaml:"influx"`
}

// GunrockConfig locates the GPU backend.
type GunrockConfig struct {
	Binary      string `yaml:"binary" validate:"required"`
	TimePattern string `yaml:"time_pattern" validate:"required,regexp"`
	// PinCPUs wraps the binary with the affinity command.
	PinCPUs bool `yaml:"pin_cpus"`
}

// GiraphConfig locates the JVM backend and its converter tools.
type GiraphConfig struct {
	Java            string   `yaml:"java" validate:"required"`
	Jar             string   `yaml:"jar" validate:"required"`
	JVMFlags        []string `yaml:"jvm_flags"`
	EdgeListClass   string   `yaml:"edgelist_class" validate:"required"`
	GrToMtxClass    string   `yaml:"gr_to_mtx_class" validate:"required"`
	SuperstepRegexp string   `yaml:"superstep_pattern" validate:"required,regexp"`
	PinCPUs         bool     `yaml:"pin_cpus"`
}

// ScalingConfig drives the thread sweep.
type ScalingConfig struct {
	PerfCores []int    `yaml:"perf_cores" validate:"min=1,dive,min=0"`
	Patterns  []string `yaml:"patterns" validate:"min=1,dive,required"`
	// JVMFlags replaces Giraph.JVMFlags for scaling runs.
	JVMFlags []string `yaml:"jvm_flags"`
}

// InfluxConfig enables the optional InfluxDB sink when URL is set.
type InfluxConfig struct {
	URL         string `yaml:"url" validate:"omitempty,url"`
	Token       string `yaml:"token"`
	Org         string `yaml:"org"`
	Bucket      string `yaml:"bucket"`
	Measurement string `yaml:"measurement"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Gunrock: GunrockConfig{
			Binary:      "../Gunrock/build/bin/boruvka",
			TimePattern: `Handmade MST GPU time:\s+(\d+\.?\d*)\s+ms`,
		},
		Giraph: GiraphConfig{
			Java: "java",
			Jar:  "../ApacheGiraph/target/boruvka-giraph-1.0.0.jar",
			JVMFlags: []string{
				"-Xmx16g",
				"-XX:+UseG1GC",
				"-XX:MaxGCPauseMillis=200",
			},
			EdgeListClass:   "org.example.mst.tools.MtxToEdgeList",
			GrToMtxClass:    "org.example.mst.tools.GrToMtx",
			SuperstepRegexp: `Superstep \d+ BoruvkaMSTComputation \(ms\)=(\d+\.?\d*)`,
			PinCPUs:         true,
		},
		GraphsDir:       "./graphs_mtx",
		RawGraphsDir:    "./graphs_raw",
		Runs:            5,
		TempDir:         "/tmp/bench_mst_temp",
		ScalingTempDir:  "/tmp/bench_scaling_specific",
		ResultsFile:     "benchmark_results.json",
		TrialLogFile:    "benchmark_trials.csv",
		ChartFile:       "benchmark_results.png",
		ScalingFile:     "scaling_results.json",
		ScalingChart:    "perf_core_scaling_results.png",
		AffinityCommand: "taskset",
		Scaling: ScalingConfig{
			PerfCores: []int{0, 1, 3, 6, 8, 10},
			Patterns:  []string{"*CAL*.mtx", "*NE*.mtx", "*NW*.mtx"},
			JVMFlags:  []string{"-Xmx16g", "-XX:+UseG1GC"},
		},
		Influx: InfluxConfig{
			Org:         "boruvka",
			Bucket:      "mst-benchmarks",
			Measurement: "mst_benchmark",
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("regexp", func(fl validator.FieldLevel) bool {
		_, err := regexp.Compile(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("config: registering regexp validation: %v", err))
	}
	return v
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s fails %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"boruvka_bench.yaml", "bench.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
