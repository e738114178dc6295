// Command adtdemo runs the sum type demonstrations from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand shares.
type app struct {
	verbose    bool
	configPath string

	cfg    config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "adtdemo",
		Short: "Closed sum types and exhaustive matching, by example",
		Long: `adtdemo walks through a handful of small domains modelled as closed
sum types: compass directions, periods, shapes, giant robots, trees and
railway-style input validation.

Results are printed on stdout, logs go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if a.logger == nil {
				a.logger, err = newLogger(cfg, a.verbose)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			a.logger.Debug("Configuration loaded",
				zap.String("path", a.configPath),
				zap.String("date_layout", cfg.DateLayout))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")

	root.AddCommand(
		newDirectionCmd(a),
		newPeriodCmd(a),
		newShapesCmd(a),
		newRobotCmd(a),
		newValidateCmd(a),
		newTreeCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
