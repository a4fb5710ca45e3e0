// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/betainc/internal/config"
	"github.com/katalvlaran/betainc/logging"
	"github.com/katalvlaran/betainc/toms708"
)

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	cfg *config.Config
	log *zap.Logger

	// flag overrides
	logLevel  string
	dev       bool
	precision int
	format    string
}

// sink routes core diagnostics to the configured logger.
func (a *app) sink() toms708.Diagnostics {
	return logging.NewSink(a.log)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "betainc",
		Short:         "Evaluate the regularized incomplete beta function I_x(a,b)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (env BETAINC_LOG_LEVEL)")
	pf.BoolVar(&a.dev, "dev", false, "human-readable console logs (env BETAINC_LOG_DEV)")
	pf.IntVar(&a.precision, "precision", 0, "significant digits, 1..17 (env BETAINC_PRECISION)")
	pf.StringVar(&a.format, "format", "", "output format: text, json, yaml (env BETAINC_FORMAT)")

	root.AddCommand(newEvalCmd(a), newRegimeCmd(a), newCDFCmd(a))

	return root
}

// setup reads the environment, applies flag overrides, validates the merged
// settings and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Read()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("dev") {
		cfg.Log.Development = a.dev
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = a.precision
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}

// printer returns the output writer for cmd in the configured format.
func (a *app) printer(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout(), format: a.cfg.Output.Format, prec: a.cfg.Output.Precision}
}
