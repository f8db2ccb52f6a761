package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tchecker-go/config"
	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/output"
)

func newDotCmd() *cobra.Command {
	var f runFlags
	var format string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Explore a system and emit the visited fragment as dot|raw",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := resolveSystem(f.system)
			if err != nil {
				return err
			}
			opts, err := resolveOptions(f)
			if err != nil {
				return err
			}
			var nodes []*explore.Node
			opts = append(opts, config.WithOnVisit(func(n *explore.Node) { nodes = append(nodes, n) }))
			config.Run(sys, opts...)

			switch format {
			case "dot", "":
				name := strings.ReplaceAll(f.system, "-", "_")
				return output.Dot(cmd.OutOrStdout(), name, sys, nodes)
			case "raw":
				return output.Raw(cmd.OutOrStdout(), sys, nodes)
			default:
				return fmt.Errorf("%w: %q", errUnknownFormat, format)
			}
		},
	}
	addRunFlags(cmd.Flags(), &f)
	cmd.Flags().StringVar(&format, "format", "dot", "dot|raw")
	return cmd
}
