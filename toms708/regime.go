// SPDX-License-Identifier: MIT

package toms708

import "math"

// Regime thresholds.
const (
	epsFloor = 1e-15 // working tolerance never drops below this

	// min(a,b) ≤ 1
	xSwapAt        = 0.5
	xComplementAt  = 0.29 // one shape > 1: w1 by power series from here on
	xSmall         = 0.1
	powerSmallMax  = 0.7  // (x·b)^a bound for the power series at small x
	bNoShift       = 15.0 // b0 above this skips the shift before bgrat
	aBothSmallMin  = 0.2
	xPowBothSmall  = 0.9
	xBothSmallComp = 0.3
	shiftBy        = 20

	// a, b > 1
	bSmallShape  = 40.0
	bxPowerMax   = 0.7
	lambdaLogMax = 650.0
	shapeFrac    = 100.0
	lambdaFrac   = 0.03
	xShiftMax    = 0.7 // fractional-b shift: power series up to here, bgrat above
	aShiftMax    = 15.0
)

// Select validates q, normalizes it and picks the regime that Evaluate
// would run. It performs no kernel evaluation.
//
// Validation order: NaN, negative shape, a = b = 0, x range, y range,
// x + y ≠ 1, then the x = 0 / y = 0 / a = 0 / b = 0 exits.
func Select(q Query) Plan {
	a, b, x, y := q.A, q.B, q.X, q.Y
	eps := dblEpsilon
	plan := Plan{A0: a, B0: b, X0: x, Y0: y, Eps: eps, LogP: q.LogP}

	zero, one := logZero(q.LogP), logOne(q.LogP)
	invalid := func(s Status) Plan {
		plan.Regime, plan.Status = RegimeInvalid, s
		plan.W, plan.W1 = zero, zero

		return plan
	}
	exact := func(w, w1 float64) Plan {
		plan.Regime = RegimeBoundary
		plan.W, plan.W1 = w, w1

		return plan
	}

	switch {
	case math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(x) || math.IsNaN(y):
		return invalid(StatusNaN)
	case a < 0 || b < 0:
		return invalid(StatusNegativeShape)
	case a == 0 && b == 0:
		return invalid(StatusZeroShapes)
	case x < 0 || x > 1:
		return invalid(StatusXOutOfRange)
	case y < 0 || y > 1:
		return invalid(StatusYOutOfRange)
	case math.Abs(x+y-0.5-0.5) > eps*3:
		return invalid(StatusXYMismatch)
	}

	switch {
	case x == 0:
		if a == 0 {
			return invalid(StatusXAndAZero)
		}

		return exact(zero, one)
	case y == 0:
		if b == 0 {
			return invalid(StatusYAndBZero)
		}

		return exact(one, zero)
	case a == 0:
		return exact(one, zero)
	case b == 0:
		return exact(zero, one)
	}

	eps = math.Max(eps, epsFloor)
	plan.Eps = eps

	if math.Max(a, b) < eps*0.001 {
		// I_x(a,b) → b/(a+b) independently of x.
		plan.Regime = RegimeTinyShapes
		switch {
		case !q.LogP:
			plan.W, plan.W1 = b/(a+b), a/(a+b)
		case a < b:
			plan.W, plan.W1 = math.Log1p(-a/(a+b)), math.Log(a/(a+b))
		default:
			plan.W, plan.W1 = math.Log(b/(a+b)), math.Log1p(-b/(a+b))
		}

		return plan
	}

	swap := func() {
		plan.Swapped = true
		plan.A0, plan.B0, plan.X0, plan.Y0 = b, a, y, x
	}

	if math.Min(a, b) <= 1 {
		if x > xSwapAt {
			swap()
		}
		plan.Regime = selectSmallShape(plan.A0, plan.B0, plan.X0, eps)

		return plan
	}

	// Both shapes exceed 1.
	if a > b {
		plan.Lambda = (a+b)*y - b
	} else {
		plan.Lambda = a - (a+b)*x
	}
	if plan.Lambda < 0 {
		plan.Lambda = -plan.Lambda
		swap()
	}
	plan.Regime = selectLargeShapes(plan.A0, plan.B0, plan.X0, plan.Lambda, q.LogP)

	return plan
}

// selectSmallShape routes min(a,b) ≤ 1 with x0 ≤ 0.5 ≤ y0.
func selectSmallShape(a0, b0, x0, eps float64) Regime {
	if b0 < math.Min(eps, eps*a0) {
		return RegimeFpser
	}
	if a0 < math.Min(eps, eps*b0) && b0*x0 <= 1 {
		return RegimeApser
	}

	if math.Max(a0, b0) > 1 {
		switch {
		case b0 <= 1:
			return RegimeBpser
		case x0 >= xComplementAt:
			return RegimeBpserComplement
		case x0 < xSmall && math.Pow(x0*b0, a0) <= powerSmallMax:
			return RegimeBpser
		case b0 > bNoShift:
			return RegimeBgrat
		}

		return RegimeBupBgrat
	}

	switch {
	case a0 >= math.Min(aBothSmallMin, b0):
		return RegimeBpser
	case math.Pow(x0, a0) <= xPowBothSmall:
		return RegimeBpser
	case x0 >= xBothSmallComp:
		return RegimeBpserComplement
	}

	return RegimeBupBgrat
}

// selectLargeShapes routes a0, b0 > 1 after the λ ≥ 0 normalization.
func selectLargeShapes(a0, b0, x0, lambda float64, logP bool) Regime {
	switch {
	case b0 < bSmallShape:
		if b0*x0 <= bxPowerMax || (logP && lambda > lambdaLogMax) {
			return RegimeBpser
		}
		if x0 <= xShiftMax {
			return RegimeBupBpser
		}

		return RegimeBupBgratShift
	case a0 > b0:
		if b0 <= shapeFrac || lambda > b0*lambdaFrac {
			return RegimeBfrac
		}
	case a0 <= shapeFrac:
		return RegimeBfrac
	case lambda > a0*lambdaFrac:
		return RegimeBfrac
	}

	return RegimeBasym
}
