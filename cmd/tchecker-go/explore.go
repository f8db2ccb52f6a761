package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tchecker-go/config"
)

func newExploreCmd() *cobra.Command {
	var f runFlags
	var stats bool

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Run an exploration algorithm over a system and report its statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := resolveSystem(f.system)
			if err != nil {
				return err
			}
			opts, err := resolveOptions(f)
			if err != nil {
				return err
			}
			s, witness := config.Run(sys, opts...)
			if stats {
				fmt.Fprintf(cmd.OutOrStdout(), "visited=%d stored=%d covered=%d reachable=%t cycle=%t\n",
					s.Visited, s.Stored, s.Covered, s.Reachable, s.Cycle)
			}
			if witness != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "witness found")
			}
			return nil
		},
	}
	addRunFlags(cmd.Flags(), &f)
	cmd.Flags().BoolVar(&stats, "stats", true, "print the final statistics line")
	return cmd
}
