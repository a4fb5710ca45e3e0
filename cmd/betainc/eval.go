// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/betainc/toms708"
)

// queryFlags are the inputs shared by eval and regime.
type queryFlags struct {
	a, b, x, y float64
	logP       bool
}

func (q *queryFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&q.a, "a", 0, "shape a ≥ 0")
	f.Float64Var(&q.b, "b", 0, "shape b ≥ 0")
	f.Float64Var(&q.x, "x", 0, "argument in [0, 1]")
	f.Float64Var(&q.y, "y", 0, "complement of x; defaults to 1 − x")
	f.BoolVar(&q.logP, "log", false, "log-scale results")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	_ = cmd.MarkFlagRequired("x")
}

func (q *queryFlags) query(cmd *cobra.Command) toms708.Query {
	y := q.y
	if !cmd.Flags().Changed("y") {
		y = 0.5 - q.x + 0.5
	}

	return toms708.Query{A: q.a, B: q.b, X: q.x, Y: y, LogP: q.logP}
}

func newEvalCmd(a *app) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print I_x(a,b), 1 − I_x(a,b) and the status code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := qf.query(cmd)
			r := toms708.Evaluate(q, toms708.WithDiagnostics(a.sink()))
			p := a.printer(cmd)
			err := p.print(evalRecord{
				A: p.num(q.A), B: p.num(q.B), X: p.num(q.X), Y: p.num(q.Y), Log: q.LogP,
				W: p.num(r.W), W1: p.num(r.W1),
				Status: int(r.Status), Text: r.Status.String(),
			})
			if err != nil {
				return err
			}
			if r.Status.IsDomainError() {
				return fmt.Errorf("eval: %w", r.Status.Err())
			}

			return nil
		},
	}
	qf.register(cmd)

	return cmd
}

func newRegimeCmd(a *app) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   "regime",
		Short: "Print the evaluation regime and the normalized parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := toms708.Select(qf.query(cmd))
			p := a.printer(cmd)
			err := p.print(regimeRecord{
				Regime: plan.Regime.String(), Swapped: plan.Swapped,
				A0: p.num(plan.A0), B0: p.num(plan.B0), X0: p.num(plan.X0), Y0: p.num(plan.Y0),
				Lambda: p.num(plan.Lambda), Eps: p.num(plan.Eps), Status: int(plan.Status),
			})
			if err != nil {
				return err
			}
			if plan.Status.IsDomainError() {
				return fmt.Errorf("regime: %w", plan.Status.Err())
			}

			return nil
		},
	}
	qf.register(cmd)

	return cmd
}
