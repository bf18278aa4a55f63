// Command lifecubes serves the Life in Cubes API and offers terminal tools
// for the week grid.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/lifecubes/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.configPath)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "lifecubes",
		Short: "Your life in weeks",
		Long: `Life in Cubes draws a life as a grid of weeks, one row per year and one
panel per decade, and lets you pin events to the weeks they happened in.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv("LIFECUBES_CONFIG"), "path to a YAML config file")

	cmd.AddCommand(
		newServeCmd(opts),
		newWeekCmd(),
		newGridCmd(opts),
		newCreateUserCmd(opts),
	)
	return cmd
}
