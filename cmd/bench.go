package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/observer/app"
)

var (
	benchListeners  int
	benchIterations int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure safe and unsafe invoke latency",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchListeners, "listeners", 0, "callbacks per invoke (overrides bench.listeners)")
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 0, "invokes per mode (overrides bench.iterations)")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	listeners, iterations := cfg.Bench.Listeners, cfg.Bench.Iterations
	if cmd.Flags().Changed("listeners") {
		listeners = benchListeners
	}
	if cmd.Flags().Changed("iterations") {
		iterations = benchIterations
	}
	res, err := app.Bench(listeners, iterations)
	if err != nil {
		return err
	}
	for _, r := range res {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), r); err != nil {
			return err
		}
	}
	return nil
}
