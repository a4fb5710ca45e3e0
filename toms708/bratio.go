// SPDX-License-Identifier: MIT

package toms708

import "math"

// Bratio evaluates I_x(a,b) and 1 − I_x(a,b) with y = 1 − x supplied by
// the caller.
//
// Returns:
//   - Result.W, Result.W1 on the scale selected by logP.
//   - Result.Status 0 on success, 1..9 on a domain error (both values are
//     then the zero of the scale), 11..14 when the large-a expansion
//     stopped early (the values are a best-effort answer).
//
// Complexity:
//   - O(1) in the shapes for every regime except the power series, whose
//     term count grows with a·x/eps and is capped at 1e7.
func Bratio(a, b, x, y float64, logP bool, opts ...Option) Result {
	return Evaluate(Query{A: a, B: b, X: x, Y: y, LogP: logP}, opts...)
}

// Evaluate is Bratio taking a Query.
func Evaluate(q Query, opts ...Option) Result {
	o := gatherOptions(opts...)

	return run(Select(q), o.diag)
}

// run executes a Plan produced by Select.
func run(p Plan, diag Diagnostics) Result {
	switch p.Regime {
	case RegimeInvalid:
		return Result{W: p.W, W1: p.W1, Status: p.Status}
	case RegimeBoundary, RegimeTinyShapes:
		return Result{W: p.W, W1: p.W1}
	}

	a0, b0, x0, y0 := p.A0, p.B0, p.X0, p.Y0
	eps, logP := p.Eps, p.LogP
	var (
		w, w1  float64
		status = StatusOK
	)

	switch p.Regime {
	case RegimeFpser:
		w = fpser(a0, b0, x0, eps, logP)
		w1 = complement(w, logP)

	case RegimeApser:
		w, w1 = fromLinearW1(apser(a0, b0, x0, eps), logP)

	case RegimeBpser:
		w = bpser(diag, a0, b0, x0, eps, logP)
		w1 = complement(w, logP)

	case RegimeBpserComplement:
		w1 = bpser(diag, b0, a0, y0, eps, logP)
		w = complement(w1, logP)

	case RegimeBgrat, RegimeBupBgrat:
		w, w1, status = runLargeA(diag, p)

	case RegimeBfrac:
		w = bfrac(diag, a0, b0, x0, y0, p.Lambda, eps*15, logP)
		w1 = complement(w, logP)

	case RegimeBupBpser, RegimeBupBgratShift:
		w, w1, status = runFractionalShift(diag, p)

	case RegimeBasym:
		w = basym(a0, b0, p.Lambda, eps*100, logP)
		w1 = complement(w, logP)
	}

	if p.Swapped {
		w, w1 = w1, w
	}

	return Result{W: w, W1: w1, Status: status}
}

// runLargeA computes w1 = I_{y0}(b0,a0) by the large-a expansion, first
// shifting b0 by 20 for RegimeBupBgrat. An underflowed or subnormal linear
// result is recomputed on the log scale.
func runLargeA(diag Diagnostics, p Plan) (w, w1 float64, status Status) {
	a0, b0, x0, y0, eps := p.A0, p.B0, p.X0, p.Y0, p.Eps
	shifted := p.Regime == RegimeBupBgrat
	if shifted {
		w1 = bup(b0, a0, y0, x0, shiftBy, eps, false)
		b0 += shiftBy
	}

	w1, code := bgrat(diag, b0, a0, y0, x0, w1, eps*15, false)
	if w1 == 0 || (w1 > 0 && w1 < 1e-310) {
		warn(diag, "bratio", "large-a expansion underflowed, retrying on log scale",
			"a", p.A0, "b", p.B0, "x", x0, "w1", w1)
		if shifted {
			w1 = bup(b0-shiftBy, a0, y0, x0, shiftBy, eps, true)
		} else {
			w1 = math.Inf(-1)
		}
		w1, code = bgrat(diag, b0, a0, y0, x0, w1, eps*15, true)
		w, w1 = fromLogW1(w1, p.LogP)

		return w, w1, bgratStatus(code)
	}
	if w1 < 0 {
		warn(diag, "bratio", "large-a expansion returned a negative value",
			"a", p.A0, "b", p.B0, "x", x0, "w1", w1)
	}
	w, w1 = fromLinearW1(w1, p.LogP)

	return w, w1, bgratStatus(code)
}

// runFractionalShift strips the integer part of b0, evaluates the finite
// part with bup, and adds either the power series (x0 ≤ 0.7) or the
// large-a expansion. On the log scale an underflowed bup falls back to the
// plain power series with the original b0.
func runFractionalShift(diag Diagnostics, p Plan) (w, w1 float64, status Status) {
	a0, b0, x0, y0, eps := p.A0, p.B0, p.X0, p.Y0, p.Eps

	n := int(b0)
	b0 -= float64(n)
	if b0 == 0 {
		n--
		b0 = 1
	}

	w = bup(b0, a0, y0, x0, n, eps, false)
	if w < dblMin && p.LogP {
		w = bpser(diag, a0, b0+float64(n), x0, eps, true)

		return w, complement(w, true), StatusOK
	}

	if x0 <= xShiftMax {
		w += bpser(diag, a0, b0, x0, eps, false)
		w, w1 = fromLinearW(w, p.LogP)

		return w, w1, StatusOK
	}

	if a0 <= aShiftMax {
		w += bup(a0, b0, x0, y0, shiftBy, eps, false)
		a0 += shiftBy
	}
	w, code := bgrat(diag, a0, b0, x0, y0, w, eps*15, false)
	w, w1 = fromLinearW(w, p.LogP)

	return w, w1, bgratStatus(code)
}

func bgratStatus(code int) Status {
	if code == bgratOK {
		return StatusOK
	}

	return statusBgratBase + Status(code)
}

// complement returns 1 − v on the selected scale.
func complement(v float64, logP bool) float64 {
	if logP {
		return log1mexp(v)
	}

	return 0.5 - v + 0.5
}

// fromLinearW turns a linear w into the (w, w1) pair on the selected scale.
func fromLinearW(w float64, logP bool) (float64, float64) {
	if logP {
		return math.Log(w), math.Log1p(-w)
	}

	return w, 0.5 - w + 0.5
}

// fromLinearW1 turns a linear w1 into the (w, w1) pair on the selected scale.
func fromLinearW1(w1 float64, logP bool) (float64, float64) {
	if logP {
		return math.Log1p(-w1), math.Log(w1)
	}

	return 0.5 - w1 + 0.5, w1
}

// fromLogW1 turns log(w1) into the (w, w1) pair on the selected scale.
func fromLogW1(lw1 float64, logP bool) (float64, float64) {
	if logP {
		return log1mexp(lw1), lw1
	}

	return -math.Expm1(lw1), math.Exp(lw1)
}

// Bup returns I_x(a,b) − I_x(a+n,b) for a positive integer n, on the log
// scale when logP is set. y must be 1 − x; eps is the tolerance.
func Bup(a, b, x, y float64, n int, eps float64, logP bool) float64 {
	return bup(a, b, x, y, n, eps, logP)
}

// SmallShapeSeries returns I_x(a,b) for b < min(eps, eps·a) and x ≤ 0.5.
// The preconditions are not checked.
func SmallShapeSeries(a, b, x, eps float64, logP bool) float64 {
	return fpser(a, b, x, eps, logP)
}

// SmallShapeComplement returns I_{1−x}(b,a) for a ≤ min(eps, eps·b),
// b·x ≤ 1 and x ≤ 0.5. The preconditions are not checked.
func SmallShapeComplement(a, b, x, eps float64) float64 {
	return apser(a, b, x, eps)
}
