// SPDX-License-Identifier: MIT

package toms708

import "math"

const invSqrt2Pi = 0.398942280401433

// brcmp1 returns exp(mu)·x^a·y^b/Beta(a,b), or its logarithm.
// mu shifts the exponent so that the caller can keep intermediate sums
// inside the representable range.
func brcmp1(mu int, a, b, x, y float64, logP bool) float64 {
	a0 := math.Min(a, b)
	if a0 >= 8 {
		return brcmp1Large(mu, a, b, x, y, logP)
	}

	var lnx, lny float64
	switch {
	case x <= 0.375:
		lnx = math.Log(x)
		lny = alnrel(-x)
	case y > 0.375:
		lnx = math.Log(x)
		lny = math.Log(y)
	default:
		lnx = alnrel(-y)
		lny = math.Log(y)
	}
	z := a*lnx + b*lny
	if a0 >= 1 {
		return esum(mu, z-betaln(a, b), logP)
	}

	// a0 < 1
	b0 := math.Max(a, b)
	if b0 >= 8 {
		u := gamln1(a0) + algdiv(a0, b0)
		if logP {
			return math.Log(a0) + esum(mu, z-u, true)
		}

		return a0 * esum(mu, z-u, false)
	}

	if b0 <= 1 {
		ans := esum(mu, z, logP)
		if ans == logZero(logP) {
			return ans
		}
		zz := rgamma1p(a + b)
		if logP {
			c := math.Log1p(gam1(a)) + math.Log1p(gam1(b)) - math.Log(zz)

			return ans + math.Log(a0) + c - math.Log1p(a0/b0)
		}
		c := (gam1(a) + 1) * (gam1(b) + 1) / zz

		return ans * (a0 * c) / (a0/b0 + 1)
	}

	// a0 < 1 < b0 < 8
	u := gamln1(a0)
	if n := int(b0 - 1); n >= 1 {
		c := 1.0
		for i := 1; i <= n; i++ {
			b0--
			c *= b0 / (a0 + b0)
		}
		u += math.Log(c)
	}
	z -= u
	b0--
	t := rgamma1p(a0 + b0)
	if logP {
		return math.Log(a0) + esum(mu, z, true) + math.Log1p(gam1(b0)) - math.Log(t)
	}

	return a0 * esum(mu, z, false) * (gam1(b0) + 1) / t
}

// brcmp1Large is the a, b ≥ 8 branch, written around the mode x0 = a/(a+b).
func brcmp1Large(mu int, a, b, x, y float64, logP bool) float64 {
	var h, x0, y0, lambda float64
	if a > b {
		h = b / a
		x0 = 1 / (h + 1)
		y0 = h / (h + 1)
		lambda = (a+b)*y - b
	} else {
		h = a / b
		x0 = h / (h + 1)
		y0 = 1 / (h + 1)
		lambda = a - (a+b)*x
	}
	lx0 := -math.Log1p(b / a)

	var u, v float64
	if e := -lambda / a; math.Abs(e) > 0.6 {
		u = e - math.Log(x/x0)
	} else {
		u = rlog1(e)
	}
	if e := lambda / b; math.Abs(e) > 0.6 {
		v = e - math.Log(y/y0)
	} else {
		v = rlog1(e)
	}

	z := esum(mu, -(a*u + b*v), logP)
	if logP {
		return math.Log(invSqrt2Pi) + (math.Log(b)+lx0)/2 + z - bcorr(a, b)
	}

	return invSqrt2Pi * math.Sqrt(b*x0) * z * math.Exp(-bcorr(a, b))
}
