package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// newRootCmd builds the command tree: explore (run one of the four
// algorithms) and dot (render the explored fragment as GraphViz). The
// CLI surface maps 1:1 onto spec §6's peripheral flag list; it only
// wires flags to config.Option values and calls the exploration driver.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tchecker-go",
		Short:         "Explore a timed-automata transition system",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every transition taken or pruned")
	root.AddCommand(newExploreCmd())
	root.AddCommand(newDotCmd())
	return root
}
