// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/betainc/dist"
)

var errProbAndMu = errors.New("cdf: give exactly one of --prob and --mu")

// tailFlags are shared by every cdf subcommand.
type tailFlags struct {
	lower bool
	logP  bool
}

func (t *tailFlags) options(a *app) []dist.Option {
	return []dist.Option{dist.LowerTail(t.lower), dist.LogP(t.logP), dist.WithDiagnostics(a.sink())}
}

func newCDFCmd(a *app) *cobra.Command {
	var tf tailFlags
	cmd := &cobra.Command{
		Use:   "cdf",
		Short: "Distribution functions built on I_x(a,b)",
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&tf.lower, "lower-tail", true, "P(X ≤ x) when true, P(X > x) otherwise")
	pf.BoolVar(&tf.logP, "log", false, "log-probability")

	cmd.AddCommand(
		newBetaCDFCmd(a, &tf),
		newBinomCDFCmd(a, &tf),
		newNBinomCDFCmd(a, &tf),
		newFCDFCmd(a, &tf),
		newTCDFCmd(a, &tf),
	)

	return cmd
}

// report prints one cdf result, then returns err.
func report(cmd *cobra.Command, a *app, tf *tailFlags, name, params string, v float64, err error) error {
	p := a.printer(cmd)
	if perr := p.print(cdfRecord{
		Distribution: name, Params: params, LowerTail: tf.lower, Log: tf.logP, P: p.num(v),
	}); perr != nil {
		return perr
	}
	if err != nil {
		return fmt.Errorf("cdf %s: %w", name, err)
	}

	return nil
}

func newBetaCDFCmd(a *app, tf *tailFlags) *cobra.Command {
	var x, sa, sb float64
	cmd := &cobra.Command{
		Use:   "beta",
		Short: "Beta(a, b) distribution function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := dist.BetaCDF(x, sa, sb, tf.options(a)...)

			return report(cmd, a, tf, "beta", fmt.Sprintf("x=%g a=%g b=%g", x, sa, sb), v, err)
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "quantile")
	cmd.Flags().Float64Var(&sa, "a", 1, "shape a")
	cmd.Flags().Float64Var(&sb, "b", 1, "shape b")
	_ = cmd.MarkFlagRequired("x")

	return cmd
}

func newBinomCDFCmd(a *app, tf *tailFlags) *cobra.Command {
	var k, n, prob float64
	cmd := &cobra.Command{
		Use:   "binom",
		Short: "Binomial(n, p) distribution function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := dist.BinomialCDF(k, n, prob, tf.options(a)...)

			return report(cmd, a, tf, "binom", fmt.Sprintf("k=%g n=%g p=%g", k, n, prob), v, err)
		},
	}
	cmd.Flags().Float64Var(&k, "k", 0, "number of successes")
	cmd.Flags().Float64Var(&n, "n", 0, "number of trials")
	cmd.Flags().Float64Var(&prob, "p", 0.5, "success probability")
	_ = cmd.MarkFlagRequired("k")
	_ = cmd.MarkFlagRequired("n")

	return cmd
}

func newNBinomCDFCmd(a *app, tf *tailFlags) *cobra.Command {
	var k, size, prob, mu float64
	cmd := &cobra.Command{
		Use:   "nbinom",
		Short: "Negative binomial distribution function, by --prob or --mu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hasProb, hasMu := cmd.Flags().Changed("prob"), cmd.Flags().Changed("mu")
			if hasProb == hasMu {
				return errProbAndMu
			}
			if hasMu {
				v, err := dist.NegBinomialMuCDF(k, size, mu, tf.options(a)...)

				return report(cmd, a, tf, "nbinom", fmt.Sprintf("k=%g size=%g mu=%g", k, size, mu), v, err)
			}
			v, err := dist.NegBinomialCDF(k, size, prob, tf.options(a)...)

			return report(cmd, a, tf, "nbinom", fmt.Sprintf("k=%g size=%g prob=%g", k, size, prob), v, err)
		},
	}
	cmd.Flags().Float64Var(&k, "k", 0, "number of failures")
	cmd.Flags().Float64Var(&size, "size", 1, "target number of successes")
	cmd.Flags().Float64Var(&prob, "prob", 0.5, "success probability")
	cmd.Flags().Float64Var(&mu, "mu", 1, "mean number of failures")
	_ = cmd.MarkFlagRequired("k")

	return cmd
}

func newFCDFCmd(a *app, tf *tailFlags) *cobra.Command {
	var q, df1, df2 float64
	cmd := &cobra.Command{
		Use:   "f",
		Short: "F(df1, df2) distribution function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := dist.FCDF(q, df1, df2, tf.options(a)...)

			return report(cmd, a, tf, "f", fmt.Sprintf("q=%g df1=%g df2=%g", q, df1, df2), v, err)
		},
	}
	cmd.Flags().Float64Var(&q, "q", 0, "quantile")
	cmd.Flags().Float64Var(&df1, "df1", 1, "numerator degrees of freedom")
	cmd.Flags().Float64Var(&df2, "df2", 1, "denominator degrees of freedom")
	_ = cmd.MarkFlagRequired("q")

	return cmd
}

func newTCDFCmd(a *app, tf *tailFlags) *cobra.Command {
	var t, df float64
	cmd := &cobra.Command{
		Use:   "t",
		Short: "Student t(df) distribution function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := dist.StudentTCDF(t, df, tf.options(a)...)

			return report(cmd, a, tf, "t", fmt.Sprintf("t=%g df=%g", t, df), v, err)
		},
	}
	cmd.Flags().Float64Var(&t, "t", 0, "quantile")
	cmd.Flags().Float64Var(&df, "df", 1, "degrees of freedom")
	_ = cmd.MarkFlagRequired("t")

	return cmd
}
