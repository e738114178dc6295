package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/KasperOmsK/adtfn"
	"github.com/KasperOmsK/adtfn/period"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPeriodCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "period <start> <tenor|end>",
		Short: "Describe a period given by a tenor such as 1M or by an end date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(a.cfg.DateLayout, args[0])
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			span, err := parseSpan(args[1], a.cfg.DateLayout)
			if err != nil {
				return err
			}

			p, err := adtfn.MatchEither(span,
				func(tenor period.Tenor) adtfn.Result[period.Period] {
					return adtfn.Try[period.Period](period.NewDurationPeriod(start, tenor.String()))
				},
				func(end time.Time) adtfn.Result[period.Period] {
					return adtfn.Try[period.Period](period.NewDatePeriod(start, end))
				},
			).Get()
			if err != nil {
				return err
			}
			a.logger.Debug("Period built", zap.String("variant", p.Variant()))

			text, err := period.Format(p)
			if err != nil {
				return err
			}
			end, err := period.End(p)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s:\n  %s\n", p.Variant(), text)
			fmt.Fprintf(out, "  ends: %s\n", end.Format(a.cfg.DateLayout))
			return nil
		},
	}
}

// parseSpan reads the second period argument: a tenor on the left, an end
// date on the right.
func parseSpan(s, layout string) (adtfn.Either[period.Tenor, time.Time], error) {
	tenor, tenorErr := period.ParseTenor(s)
	if tenorErr == nil {
		return adtfn.Left[period.Tenor, time.Time](tenor), nil
	}
	end, dateErr := time.Parse(layout, s)
	if dateErr == nil {
		return adtfn.Right[period.Tenor](end), nil
	}
	return adtfn.Either[period.Tenor, time.Time]{}, fmt.Errorf("%q is neither a tenor nor a date: %w", s, errors.Join(tenorErr, dateErr))
}
