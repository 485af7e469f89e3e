package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/kets/compact"
	"github.com/hupe1980/kets/lossless"
	"github.com/hupe1980/kets/persist"
)

var errNotOrthonormal = errors.New("basis is not orthonormal")

func newOverlapCmd(a *app) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "overlap A B",
		Short: "Print the overlap matrix |<a_i|b_j>|² of two bases",
		Long: `Loads two stored bases of the same kind and width and prints one row per
ket of A, one tab-separated column per ket of B.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.overlapMatrix(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			return writeMatrix(cmd.OutOrStdout(), m, precision)
		},
	}
	cmd.Flags().IntVarP(&precision, "precision", "p", 6, "digits after the decimal point")
	return cmd
}

func (a *app) overlapMatrix(cmd *cobra.Command, nameA, nameB string) ([][]float64, error) {
	ctx := cmd.Context()
	fa, err := persist.Load(ctx, a.store, nameA, persist.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	fb, err := persist.Load(ctx, a.store, nameB, persist.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	switch {
	case fa.Header.Kind != fb.Header.Kind:
		return nil, fmt.Errorf("overlap: %s is %s but %s is %s", nameA, fa.Header.Kind, nameB, fb.Header.Kind)
	case fa.Width() != fb.Width():
		return nil, fmt.Errorf("overlap: width %d of %s differs from width %d of %s", fa.Width(), nameA, fb.Width(), nameB)
	}

	if fa.Lossless != nil {
		return lossless.OverlapMatrix(fa.Lossless, fb.Lossless, a.cfg.Workers), nil
	}
	return compact.OverlapMatrix(fa.Compact, fb.Compact, a.cfg.Workers), nil
}

func writeMatrix(w io.Writer, m [][]float64, precision int) error {
	var buf []byte
	for _, row := range m {
		buf = buf[:0]
		for j, x := range row {
			if j > 0 {
				buf = append(buf, '\t')
			}
			buf = strconv.AppendFloat(buf, x, 'f', precision, 64)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func newCheckCmd(a *app) *cobra.Command {
	var tol float64

	cmd := &cobra.Command{
		Use:   "check NAME",
		Short: "Verify that a stored basis is orthonormal",
		Long: `Loads a basis and checks that every ket has unit norm and that distinct kets
have overlap below the tolerance. Exits non-zero when the check fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := persist.Load(cmd.Context(), a.store, args[0], persist.WithLogger(a.logger))
			if err != nil {
				return err
			}

			var ok bool
			if f.Lossless != nil {
				ok = f.Lossless.IsOrthonormal(tol)
			} else {
				ok = f.Compact.IsOrthonormal(tol)
			}
			if !ok {
				return fmt.Errorf("%s: %w (tol %g)", args[0], errNotOrthonormal, tol)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: orthonormal (tol %g)\n", args[0], tol)
			return nil
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", 1e-9, "absolute tolerance")
	return cmd
}
