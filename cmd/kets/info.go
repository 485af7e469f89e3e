package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/kets/internal/simd"
	"github.com/hupe1980/kets/persist"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Show the header and shape of a stored basis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			f, err := persist.Load(cmd.Context(), a.store, name, persist.WithLogger(a.logger))
			if err != nil {
				return err
			}

			h := f.Header
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			fmt.Fprintf(tw, "name:\t%s\n", name)
			fmt.Fprintf(tw, "kind:\t%s\n", h.Kind)
			fmt.Fprintf(tw, "width:\t%d\n", f.Width())
			fmt.Fprintf(tw, "rank:\t%d\n", f.Rank())
			fmt.Fprintf(tw, "codec:\t%s\n", h.Codec)
			fmt.Fprintf(tw, "compression:\t%s\n", h.Compression)
			fmt.Fprintf(tw, "payload:\t%s\n", humanize.IBytes(h.RawLen))
			fmt.Fprintf(tw, "stored:\t%s\n", humanize.IBytes(h.Size()))
			fmt.Fprintf(tw, "checksum:\t%08x\n", h.Checksum)
			return tw.Flush()
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [PREFIX]",
		Short: "List stored blobs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			names, err := a.store.List(cmd.Context(), prefix)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "Show the selected inner-product kernels",
		Args:  cobra.NoArgs,
		// No store or config needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			feature, ok := simd.VectorUnit()
			fmt.Fprintf(out, "kernels: %s\n", simd.Active())
			if feature != "" {
				fmt.Fprintf(out, "%s: %t\n", feature, ok)
			}
			fmt.Fprintf(out, "overridden: %t (%s)\n", simd.Overridden(), simd.EnvOverride)
			return nil
		},
	}
}
