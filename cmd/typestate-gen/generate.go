package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/typestate/gen"
)

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <file.go>...",
		Short: "Write a builder file next to each source file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, src := range args {
				if err := a.generate(src); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String(keySuffix, gen.DefaultSuffix, "output file suffix replacing .go")
	_ = a.v.BindPFlag(keySuffix, cmd.Flags().Lookup(keySuffix))

	return cmd
}

// generate parses src and writes its builders to the output path.
func (a *app) generate(src string) error {
	opts := []gen.Option{gen.WithTagKey(a.v.GetString(keyTag)), gen.WithLogger(a.logger)}

	f, err := gen.Parse(src, nil, opts...)
	if err != nil {
		return err
	}
	out, err := gen.Generate(f, opts...)
	if err != nil {
		return err
	}

	dst := gen.OutputPath(src, a.v.GetString(keySuffix))
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	a.logger.Info("generated builders", "source", src, "output", dst, "entities", len(f.Entities))

	return nil
}
