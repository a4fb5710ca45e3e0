// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// tailCutoff is the 1 + t²/df level above which the t tail switches to its
// leading asymptotic term.
const tailCutoff = 1e100

// FCDF returns P(X ≤ q) for X ~ F(df1, df2). Either degree of freedom may be
// +Inf, in which case the chi-squared limit is used.
func FCDF(q, df1, df2 float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(q) || math.IsNaN(df1) || math.IsNaN(df2) {
		return math.NaN(), ErrNaN
	}
	if df1 <= 0 || df2 <= 0 {
		return math.NaN(), fmt.Errorf("%w: FCDF: df1=%g df2=%g", ErrDomain, df1, df2)
	}

	if q <= 0 {
		return o.dt0(), nil
	}
	if math.IsInf(q, 1) {
		return o.dt1(), nil
	}

	switch {
	case math.IsInf(df2, 1) && math.IsInf(df1, 1):
		switch {
		case q < 1:
			return o.dt0(), nil
		case q == 1:
			return o.half(), nil
		}

		return o.dt1(), nil
	case math.IsInf(df2, 1):
		return chiSquaredCDF(q*df1, df1, o), nil
	case math.IsInf(df1, 1):
		return chiSquaredCDF(df2/q, df2, o.flipped()), nil
	}

	// Keep the beta argument away from 1.
	if df1*q > df2 {
		return betaCDF(df2/(df2+df1*q), df2/2, df1/2, o.flipped()), nil
	}

	return betaCDF(df1*q/(df2+df1*q), df1/2, df2/2, o), nil
}

// StudentTCDF returns P(T ≤ t) for T ~ t(df). df = +Inf gives the standard
// normal.
func StudentTCDF(t, df float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(t) || math.IsNaN(df) {
		return math.NaN(), ErrNaN
	}
	if df <= 0 {
		return math.NaN(), fmt.Errorf("%w: StudentTCDF: df=%g", ErrDomain, df)
	}

	if math.IsInf(t, 0) {
		if t < 0 {
			return o.dt0(), nil
		}

		return o.dt1(), nil
	}
	if math.IsInf(df, 1) {
		return o.fromLinear(distuv.UnitNormal.CDF(t), distuv.UnitNormal.Survival(t)), nil
	}

	// val is P(|T| > |t|) on the selected scale.
	var val float64
	nx := 1 + t/df*t
	if nx > tailCutoff {
		// I_z(a,b) ≈ z^a/(a·Beta(a,b)) with z = 1/nx, a = df/2, b = 1/2.
		lval := -0.5*df*(2*math.Log(math.Abs(t))-math.Log(df)) -
			mathext.Lbeta(0.5*df, 0.5) - math.Log(0.5*df)
		val = lval
		if !o.logP {
			val = math.Exp(lval)
		}
	} else {
		two := Options{lowerTail: true, logP: o.logP, diag: o.diag}
		if df > t*t {
			val = betaCDF(t*t/(df+t*t), 0.5, df/2, two.flipped())
		} else {
			val = betaCDF(1/nx, df/2, 0.5, two)
		}
	}

	// One tail is half of val; the other is its complement.
	lower := o.lowerTail
	if t <= 0 {
		lower = !lower
	}
	if o.logP {
		if lower {
			return math.Log1p(-0.5 * math.Exp(val)), nil
		}

		return val - math.Ln2, nil
	}
	val /= 2
	if lower {
		return 0.5 - val + 0.5, nil
	}

	return val, nil
}

// chiSquaredCDF evaluates the chi-squared limit with k degrees of freedom.
func chiSquaredCDF(x, k float64, o Options) float64 {
	d := distuv.ChiSquared{K: k}

	return o.fromLinear(d.CDF(x), d.Survival(x))
}
