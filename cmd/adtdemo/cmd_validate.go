package main

import (
	"fmt"

	"github.com/KasperOmsK/adtfn/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCmd(a *app) *cobra.Command {
	var in validation.Input
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a name and an email address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := validation.Validate(in)
			if r.IsErr() {
				a.logger.Info("Input rejected", zap.Error(r.UnwrapErr()))
			}
			fmt.Fprintln(cmd.OutOrStdout(), validation.Describe(r))
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "Name to validate")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email address to validate")
	return cmd
}
