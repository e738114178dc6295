package main

import (
	"fmt"

	"github.com/KasperOmsK/adtfn/direction"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDirectionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "direction",
		Short: "Reverse compass directions",
	}

	reverse := &cobra.Command{
		Use:   "reverse <direction>",
		Short: "Print the opposite direction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := direction.Parse(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("Reversing direction", zap.Stringer("direction", d))
			fmt.Fprintln(cmd.OutOrStdout(), d.Reverse())
			return nil
		},
	}

	mirror := &cobra.Command{
		Use:   "mirror [direction...]",
		Short: "Print each direction next to its reverse (all four by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := direction.All()
			if len(args) > 0 {
				dirs = dirs[:0]
				for _, arg := range args {
					d, err := direction.Parse(arg)
					if err != nil {
						return err
					}
					dirs = append(dirs, d)
				}
			}
			for _, d := range dirs {
				fmt.Fprintln(cmd.OutOrStdout(), direction.HeadingOf(d))
			}
			return nil
		},
	}

	cmd.AddCommand(reverse, mirror)
	return cmd
}
