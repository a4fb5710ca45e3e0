// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"

	"github.com/katalvlaran/betainc/toms708"
)

// BetaCDF returns P(X ≤ x) for X ~ Beta(a, b).
//
// Limit cases: a = b = 0 puts mass ½ on each of {0, 1}; a = 0 (or a/b = 0)
// puts all mass at 0; b = 0 (or b/a = 0) all mass at 1; a = b = +Inf all
// mass at ½.
func BetaCDF(x, a, b float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(x) || math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN(), ErrNaN
	}
	if a < 0 || b < 0 {
		return math.NaN(), fmt.Errorf("%w: BetaCDF: a=%g b=%g", ErrDomain, a, b)
	}

	return betaCDF(x, a, b, o), nil
}

// betaCDF is BetaCDF for validated parameters.
func betaCDF(x, a, b float64, o Options) float64 {
	if x <= 0 {
		return o.dt0()
	}
	if x >= 1 {
		return o.dt1()
	}

	switch {
	case a == 0 && b == 0:
		return o.half()
	case a == 0 || a/b == 0:
		return o.dt1()
	case b == 0 || b/a == 0:
		return o.dt0()
	case math.IsInf(a, 1) || math.IsInf(b, 1):
		if x < 0.5 {
			return o.dt0()
		}

		return o.dt1()
	}

	r := toms708.Bratio(a, b, x, 0.5-x+0.5, o.logP, toms708.WithDiagnostics(o.diag))
	// 11 and 14 are already reported by the expansion itself.
	if r.Status != toms708.StatusOK &&
		r.Status != toms708.StatusBgratUnderflow &&
		r.Status != toms708.StatusBgratNoConvergence {
		reportStatus(o.diag, "pbeta", r.Status, "x", x, "a", a, "b", b)
	}

	return o.pick(r)
}

// reportStatus forwards a nonzero core status to the sink.
func reportStatus(d toms708.Diagnostics, kernel string, s toms708.Status, kv ...any) {
	fields := map[string]float64{"status": float64(s)}
	for i := 0; i+1 < len(kv); i += 2 {
		name, _ := kv[i].(string)
		if v, ok := kv[i+1].(float64); ok && name != "" {
			fields[name] = v
		}
	}
	d.Report(toms708.Event{
		Kernel:  kernel,
		Message: "incomplete beta ratio: " + s.String(),
		Fields:  fields,
	})
}
