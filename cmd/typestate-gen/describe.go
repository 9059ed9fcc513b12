package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/typestate/gen"
)

func (a *app) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <file.go> <Entity>",
		Short: "Print the state lattice of an entity's builder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := gen.Parse(args[0], nil, gen.WithTagKey(a.v.GetString(keyTag)), gen.WithLogger(a.logger))
			if err != nil {
				return err
			}
			return gen.Describe(cmd.OutOrStdout(), f, args[1])
		},
	}
}
