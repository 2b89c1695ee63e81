// Copyright 2025 go-hypersort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hsort demonstrates the parallel hypercube quicksort on a random
// array.
//
// Usage:
//
//	hsort <arrsize> <nthreads> [seed]
//	hsort 1000000 8 42 --local-sort radix -v
//	hsort --config run.yaml
//
// It fills an array with pseudo-random values in [0, max-value), prints a
// sample and a sortedness check, sorts it with hsort.Sort, and prints the
// elapsed time, the sample and the check again.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	settings := defaultSettings()

	cmd := &cobra.Command{
		Use:   "hsort <arrsize> <nthreads> [seed]",
		Short: "Sort a random array with parallel hypercube quicksort",
		Long: `hsort fills an array of arrsize pseudo-random integers from seed and
sorts it with nthreads workers. nthreads is rounded down to a power of two;
when it is omitted, GOMAXPROCS workers are used. seed defaults to 100.

Settings may also come from a YAML file given with --config; positional
arguments and flags take precedence over the file.`,
		Args: cobra.MaximumNArgs(3),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			zap.ReplaceGlobals(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, settings, configPath, args)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), s)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging, including every merge level")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with size, workers, seed, max_value, local_sort, memory_limit")
	cmd.Flags().Int64Var(&settings.MaxValue, "max-value", settings.MaxValue, "Values are drawn from [0, max-value)")
	cmd.Flags().StringVar(&settings.LocalSort, "local-sort", settings.LocalSort, "Per-segment sort: introsort, radix or std")
	cmd.Flags().Int64Var(&settings.MemoryLimit, "memory-limit", settings.MemoryLimit, "Byte budget for sort buffers (0 = unlimited)")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
