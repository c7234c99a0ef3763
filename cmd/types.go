package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/observer/core/discovery"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the event types discovered in the configured locations",
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res := discovery.Default().Discover(cfg.Discovery.Locations...)
	out := cmd.OutOrStdout()
	for _, t := range res.Types {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", t.Location, t.Name()); err != nil {
			return err
		}
	}
	for _, loc := range res.Missing {
		if _, err := fmt.Fprintf(out, "%s\t(missing)\n", loc); err != nil {
			return err
		}
	}
	return nil
}
