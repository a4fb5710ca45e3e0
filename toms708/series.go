// SPDX-License-Identifier: MIT

package toms708

import "math"

// bpserMaxTerms caps the power series; hitting it is reported, not fatal.
const bpserMaxTerms = 1e7

// logZero returns the zero of the selected scale.
func logZero(logP bool) float64 {
	if logP {
		return math.Inf(-1)
	}

	return 0
}

// logOne returns the one of the selected scale.
func logOne(logP bool) float64 {
	if logP {
		return 0
	}

	return 1
}

// rgamma1p returns 1/Γ(1 + apb) for 0 < apb ≤ 2, keeping the gam1
// argument inside [−0.5, 1.5].
func rgamma1p(apb float64) float64 {
	if apb > 1 {
		return (gam1(apb-1) + 1) / apb
	}

	return gam1(apb) + 1
}

// bpser evaluates I_x(a,b) by its power series. Intended for b ≤ 1 or
// b·x ≤ 0.7; eps is the tolerance.
func bpser(diag Diagnostics, a, b, x, eps float64, logP bool) float64 {
	if x == 0 {
		return logZero(logP)
	}

	// Leading factor x^a / (a·Beta(a,b)).
	var ans float64
	a0 := math.Min(a, b)
	if a0 >= 1 {
		z := a*math.Log(x) - betaln(a, b)
		if logP {
			ans = z - math.Log(a)
		} else {
			ans = math.Exp(z) / a
		}
	} else {
		b0 := math.Max(a, b)
		switch {
		case b0 <= 1:
			if logP {
				ans = a * math.Log(x)
			} else {
				ans = math.Pow(x, a)
				if ans == 0 {
					return ans
				}
			}
			apb := a + b
			z := rgamma1p(apb)
			c := (gam1(a) + 1) * (gam1(b) + 1) / z
			if logP {
				ans += math.Log(c * (b / apb))
			} else {
				ans *= c * (b / apb)
			}

		case b0 < 8:
			// a0 < 1 < b0 < 8
			u := gamln1(a0)
			if m := int(b0 - 1); m >= 1 {
				c := 1.0
				for i := 1; i <= m; i++ {
					b0--
					c *= b0 / (a0 + b0)
				}
				u += math.Log(c)
			}
			z := a*math.Log(x) - u
			b0--
			t := rgamma1p(a0 + b0)
			if logP {
				ans = z + math.Log(a0/a) + math.Log1p(gam1(b0)) - math.Log(t)
			} else {
				ans = math.Exp(z) * (a0 / a) * (gam1(b0) + 1) / t
			}

		default:
			// a0 < 1 < 8 ≤ b0
			u := gamln1(a0) + algdiv(a0, b0)
			z := a*math.Log(x) - u
			if logP {
				ans = z + math.Log(a0/a)
			} else {
				ans = a0 / a * math.Exp(z)
			}
		}
	}

	if ans == logZero(logP) || (!logP && a <= eps*0.1) {
		return ans
	}

	// The series; alternating while n < b.
	tol := eps / a
	var n, sum, w float64
	c := 1.0
	for {
		n++
		c *= (0.5 - b/n + 0.5) * x
		w = c / (a + n)
		sum += w
		if n >= bpserMaxTerms || math.Abs(w) <= tol {
			break
		}
	}
	if math.Abs(w) > tol {
		// Only worth a warning when the unfinished tail can move the result.
		if (logP && !(a*sum > -1 && math.Abs(math.Log1p(a*sum)) < eps*math.Abs(ans))) ||
			(!logP && math.Abs(a*sum+1) != 1) {
			warn(diag, "bpser", "series did not converge",
				"a", a, "b", b, "x", x, "w/tol", math.Abs(w)/tol, "ans", ans)
		}
	}

	if logP {
		if a*sum > -1 {
			return ans + math.Log1p(a*sum)
		}
		if ans > math.Inf(-1) {
			warn(diag, "bpser", "log-scale underflow to -Inf", "a", a, "b", b, "x", x)
		}

		return math.Inf(-1)
	}
	if a*sum > -1 {
		return ans * (a*sum + 1)
	}

	return 0
}

// fpser evaluates I_x(a,b) for b < min(eps, eps·a) and x ≤ 0.5.
func fpser(a, b, x, eps float64, logP bool) float64 {
	var ans float64
	switch {
	case logP:
		ans = a * math.Log(x)
	case a > eps*0.001:
		t := a * math.Log(x)
		if t < exparg(1) {
			return 0
		}
		ans = math.Exp(t)
	default:
		ans = 1
	}

	// 1/Beta(a,b) ≈ b
	if logP {
		ans += math.Log(b) - math.Log(a)
	} else {
		ans *= b / a
	}

	tol := eps / a
	an := a + 1
	t := x
	s := t / an
	for {
		an++
		t *= x
		c := t / an
		s += c
		if math.Abs(c) <= tol {
			break
		}
	}

	if logP {
		return ans + math.Log1p(a*s)
	}

	return ans * (a*s + 1)
}

// apser returns I_{1−x}(b,a) for a ≤ min(eps, eps·b), b·x ≤ 1, x ≤ 0.5.
func apser(a, b, x, eps float64) float64 {
	bx := b * x
	t := x - bx
	var c float64
	if b*eps <= 0.02 {
		c = math.Log(x) + psi(b) + eulerG + t
	} else {
		c = math.Log(bx) + eulerG + t
	}

	tol := eps * 5 * math.Abs(c)
	j, s := 1.0, 0.0
	for {
		j++
		t *= x - bx/j
		aj := t / j
		s += aj
		if math.Abs(aj) <= tol {
			break
		}
	}

	return -a * (c + s)
}
