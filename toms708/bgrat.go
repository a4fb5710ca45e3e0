// SPDX-License-Identifier: MIT

package toms708

import "math"

// bgratTerms is the length of the coefficient buffers in bgrat.
const bgratTerms = 30

// bgrat codes, added to statusBgratBase by the dispatcher.
const (
	bgratOK            = 0
	bgratUnderflow     = 1 // b·z == 0
	bgratScale         = 2 // log(u) == −Inf
	bgratNonPositive   = 3 // partial sum ≤ 0
	bgratNoConvergence = 4 // bgratTerms reached
)

// bgrat adds the asymptotic expansion of I_x(a,b) for large a and b ≤ 1
// to w and returns the new w with a status code. When logW is set, w is
// on the log scale both on input and on output.
//
// On codes 1..3 w is returned unchanged; on code 4 the partial sum is
// still added.
func bgrat(diag Diagnostics, a, b, x, y, w, eps float64, logW bool) (float64, int) {
	var c, d [bgratTerms]float64

	bm1 := b - 0.5 - 0.5
	nu := a + bm1*0.5
	var lnx float64
	if y > 0.375 {
		lnx = math.Log(x)
	} else {
		lnx = alnrel(-y)
	}
	z := -nu * lnx

	if b*z == 0 {
		warn(diag, "bgrat", "b*z underflow, result inaccurate",
			"a", a, "b", b, "x", x, "y", y, "z", z)

		return w, bgratUnderflow
	}

	// r = exp(−z)·z^b/Γ(b), carried as log r; u factors out of the sum.
	logR := math.Log(b) + math.Log1p(gam1(b)) + b*math.Log(z) + nu*lnx
	logU := logR - (algdiv(b, a) + b*math.Log(nu))
	u := math.Exp(logU)
	if math.IsInf(logU, -1) {
		return w, bgratScale
	}

	u0 := u == 0
	var l float64 // w/u, also when u underflows
	switch {
	case logW && !math.IsInf(w, -1):
		l = math.Exp(w - logU)
	case !logW && w != 0:
		l = math.Exp(math.Log(w) - logU)
	}

	qr := gratR(b, z, logR, eps)
	v := 0.25 / (nu * nu)
	t2 := lnx * 0.25 * lnx
	j := qr
	sum := j
	t, cn, n2 := 1.0, 1.0, 0.0
	code := bgratOK
	for n := 1; n <= bgratTerms; n++ {
		bp2n := b + n2
		j = (bp2n*(bp2n+1)*j + (z+bp2n+1)*t) * v
		n2 += 2
		t *= t2
		cn /= n2 * (n2 + 1)
		nm1 := n - 1
		c[nm1] = cn
		s := 0.0
		coef := b - float64(n)
		for i := 1; i <= nm1; i++ {
			s += coef * c[i-1] * d[nm1-i]
			coef += b
		}
		d[nm1] = bm1*cn + s/float64(n)
		dj := d[nm1] * j
		sum += dj
		if sum <= 0 {
			return w, bgratNonPositive
		}
		if math.Abs(dj) <= eps*(sum+l) {
			code = bgratOK

			break
		}
		if n == bgratTerms {
			code = bgratNoConvergence
			warn(diag, "bgrat", "expansion did not converge",
				"a", a, "b", b, "x", x, "dj", dj, "relerr", math.Abs(dj)/(sum+l))
		}
	}

	if logW {
		return logspaceAdd(w, logU+math.Log(sum)), code
	}
	if u0 {
		return w + math.Exp(logU+math.Log(sum)), code
	}

	return w + u*sum, code
}

// gratR returns Q(a,x)/r with r = exp(−x)·x^a/Γ(a) = exp(logR), the scaled
// complement of the regularized incomplete gamma ratio, for a ≤ 1.
func gratR(a, x, logR, eps float64) float64 {
	if a*x == 0 {
		if x <= a {
			return math.Exp(-logR)
		}

		return 0
	}
	if a == 0.5 {
		if x < 0.25 {
			p := erf(math.Sqrt(x))

			return (0.5 - p + 0.5) * math.Exp(-logR)
		}
		sx := math.Sqrt(x)

		return erfc1(true, sx) / sx * sqrtPi
	}

	if x < 1.1 {
		// Taylor series for P(a,x)/x^a.
		an := 3.0
		c := x
		sum := x / (a + 3)
		tol := eps * 0.1 / (a + 1)
		for {
			an++
			c *= -(x / an)
			t := c / (a + an)
			sum += t
			if math.Abs(t) <= tol {
				break
			}
		}

		j := a * x * ((sum/6-0.5/(a+2))*x + 1/(a+1))
		z := a * math.Log(x)
		h := gam1(a)
		g := h + 1
		if (x >= 0.25 && a < x/2.59) || z > -0.13394 {
			l := rexpm1(z)
			q := ((l+0.5+0.5)*j-l)*g - h
			if q <= 0 {
				return 0
			}

			return q * math.Exp(-logR)
		}
		p := math.Exp(z) * g * (0.5 - j + 0.5)

		return (0.5 - p + 0.5) * math.Exp(-logR)
	}

	// Continued fraction.
	a2nm1, a2n := 1.0, 1.0
	b2nm1, b2n := x, x+(1-a)
	c := 1.0
	for {
		a2nm1 = x*a2n + c*a2nm1
		b2nm1 = x*b2n + c*b2nm1
		am0 := a2nm1 / b2nm1
		c++
		cma := c - a
		a2n = a2nm1 + cma*a2n
		b2n = b2nm1 + cma*b2n
		an0 := a2n / b2n
		if math.Abs(an0-am0) < eps*an0 {
			return an0
		}
	}
}
