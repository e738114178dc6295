package main

import (
	"fmt"
	"strconv"

	"github.com/KasperOmsK/adtfn/tree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [int...]",
		Short: "Build a balanced tree from integers and fold it",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid leaf %q: %w", arg, err)
				}
				values = append(values, v)
			}

			t := tree.FromSlice(values)
			text, err := tree.Format(t)
			if err != nil {
				return err
			}
			size, err := tree.Size(t)
			if err != nil {
				return err
			}
			depth, err := tree.Depth(t)
			if err != nil {
				return err
			}
			total, err := tree.Fold(t,
				func() int { return 0 },
				func(v int) int { return v },
				func(l, r int) int { return l + r },
			)
			if err != nil {
				return err
			}
			a.logger.Debug("Tree folded", zap.Int("leaves", size), zap.Int("depth", depth))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, text)
			fmt.Fprintf(out, "leaves: %d, depth: %d, sum: %d\n", size, depth, total)
			return nil
		},
	}
}
