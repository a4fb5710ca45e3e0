// SPDX-License-Identifier: MIT

package toms708

import "math"

// bup returns I_x(a,b) − I_x(a+n,b) for a positive integer n.
func bup(a, b, x, y float64, n int, eps float64, logP bool) float64 {
	apb := a + b
	ap1 := a + 1

	// Scaling factor exp(−mu), undone by brcmp1.
	mu := 0
	d := 1.0
	if n > 1 && a >= 1 && apb >= ap1*1.1 {
		mu = int(math.Abs(exparg(1)))
		if k := int(exparg(0)); mu > k {
			mu = k
		}
		d = math.Exp(-float64(mu))
	}

	var ret float64
	if logP {
		ret = brcmp1(mu, a, b, x, y, true) - math.Log(a)
	} else {
		ret = brcmp1(mu, a, b, x, y, false) / a
	}
	if n == 1 || ret == logZero(logP) {
		return ret
	}

	nm1 := n - 1
	w := d

	// k is the index of the largest term.
	k := 0
	if b > 1 {
		if y > 1e-4 {
			r := (b-1)*x/y - a
			if r >= 1 {
				if r < float64(nm1) {
					k = int(r)
				} else {
					k = nm1
				}
			}
		} else {
			k = nm1
		}
		for i := 0; i < k; i++ {
			l := float64(i)
			d *= (apb + l) / (ap1 + l) * x
			w += d
		}
	}

	for i := k; i < nm1; i++ {
		l := float64(i)
		d *= (apb + l) / (ap1 + l) * x
		w += d
		if d <= eps*w {
			break
		}
	}

	if logP {
		return ret + math.Log(w)
	}

	return ret * w
}
