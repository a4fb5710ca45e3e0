// SPDX-License-Identifier: MIT

package toms708

import "math"

// bfracMaxTerms bounds the continued fraction; λ = ∞ would otherwise loop.
const bfracMaxTerms = 10000

// bfrac evaluates I_x(a,b) by its continued fraction for a, b > 1.
// lambda = (a+b)·y − b is assumed non-negative.
func bfrac(diag Diagnostics, a, b, x, y, lambda, eps float64, logP bool) float64 {
	if math.IsInf(lambda, 0) || math.IsNaN(lambda) {
		return math.NaN()
	}
	brc := brcmp1(0, a, b, x, y, logP)
	if math.IsNaN(brc) {
		warn(diag, "bfrac", "density prefactor is NaN", "a", a, "b", b, "x", x, "y", y)

		return math.NaN()
	}
	if !logP && brc == 0 {
		return 0
	}

	c := lambda + 1
	c0 := b / a
	c1 := 1/a + 1
	yp1 := y + 1

	var n, an float64
	p := 1.0
	s := a + 1
	bn := 1.0
	anp1 := 1.0
	bnp1 := c / c1
	r := c1 / c
	r0 := r

	for n < bfracMaxTerms {
		n++
		t := n / a
		w := n * (b - n) * x
		e := a / s
		alpha := p * (p + c0) * e * e * (w * x)
		e = (t + 1) / (c1 + t + t)
		beta := n + w/s + e*(c+n*yp1)
		p = t + 1
		s += 2

		t = alpha*an + beta*anp1
		an, anp1 = anp1, t
		t = alpha*bn + beta*bnp1
		bn, bnp1 = bnp1, t

		r0 = r
		r = anp1 / bnp1
		if math.Abs(r-r0) <= eps*r {
			break
		}

		// rescale
		an /= bnp1
		bn /= bnp1
		anp1 = r
		bnp1 = 1
	}
	if n >= bfracMaxTerms && math.Abs(r-r0) > eps*r {
		warn(diag, "bfrac", "continued fraction did not converge",
			"a", a, "b", b, "x", x, "y", y, "lambda", lambda, "terms", bfracMaxTerms)
	}

	if logP {
		return brc + math.Log(r)
	}

	return brc * r
}
