package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/kets/lossless"
	"github.com/hupe1980/kets/persist"
)

func newOrthonormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orthonormalize IN OUT",
		Short: "Orthonormalize a lossless basis with modified Gram-Schmidt",
		Long: `Reads the lossless basis IN, orthonormalizes it in order and writes the
result to OUT. The kets of IN must be linearly independent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, err := persist.LoadLossless(ctx, a.store, args[0], persist.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := in.Orthonormalize(a.losslessOptions()...)
			if err := persist.SaveLossless(ctx, a.store, args[1], out, a.persistOptions()...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (rank %d, width %d)\n", args[1], out.Rank(), out.Width())
			return nil
		},
	}
}

func newCompressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compress IN OUT",
		Short: "Convert a lossless basis to the compact representation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, err := persist.LoadLossless(ctx, a.store, args[0], persist.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := in.LossyCompress(a.losslessOptions()...)
			if err := persist.SaveCompact(ctx, a.store, args[1], out, a.persistOptions()...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (rank %d, width %d)\n", args[1], out.Rank(), out.Width())
			return nil
		},
	}
}

func (a *app) losslessOptions() []lossless.Option {
	return []lossless.Option{
		lossless.WithWorkers(a.cfg.Workers),
		lossless.WithLogger(a.logger),
	}
}
