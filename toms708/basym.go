// SPDX-License-Identifier: MIT

package toms708

import "math"

// basymTerms is the highest even order of the expansion; the coefficient
// buffers hold basymTerms+1 entries.
const basymTerms = 20

const (
	basymE0   = 1.12837916709551  // 2/sqrt(pi)
	basymE1   = 0.353553390593274 // 2^(-3/2)
	basymLnE0 = 0.120782237635245 // log(e0)
)

// basym evaluates I_x(a,b) by the asymptotic expansion for large a and b.
// lambda = (a+b)·y − b ≥ 0 and a, b ≥ 15 are assumed.
func basym(a, b, lambda, eps float64, logP bool) float64 {
	var a0, b0, c, d [basymTerms + 1]float64

	f := a*rlog1(-lambda/a) + b*rlog1(lambda/b)
	var t float64
	if logP {
		t = -f
	} else {
		t = math.Exp(-f)
		if t == 0 {
			return 0
		}
	}
	z0 := math.Sqrt(f)
	z := z0 / basymE1 * 0.5
	z2 := f + f

	var h, r0, r1, w0 float64
	if a < b {
		h = a / b
		r0 = 1 / (h + 1)
		r1 = (b - a) / b
		w0 = 1 / math.Sqrt(a*(h+1))
	} else {
		h = b / a
		r0 = 1 / (h + 1)
		r1 = (b - a) / a
		w0 = 1 / math.Sqrt(b*(h+1))
	}

	a0[0] = r1 * 0.66666666666666663
	c[0] = a0[0] * -0.5
	d[0] = -c[0]
	j0 := 0.5 / basymE0 * erfc1(true, z0)
	j1 := basymE1
	sum := j0 + d[0]*w0*j1

	s := 1.0
	h2 := h * h
	hn := 1.0
	w := w0
	znm1 := z
	zn := z2
	for n := 2; n <= basymTerms; n += 2 {
		hn *= h2
		a0[n-1] = r0 * 2 * (h*hn + 1) / (float64(n) + 2)
		np1 := n + 1
		s += hn
		a0[np1-1] = r1 * 2 * s / (float64(n) + 3)

		for i := n; i <= np1; i++ {
			r := (float64(i) + 1) * -0.5
			b0[0] = r * a0[0]
			for m := 2; m <= i; m++ {
				bsum := 0.0
				for j := 1; j <= m-1; j++ {
					mmj := m - j
					bsum += (float64(j)*r - float64(mmj)) * a0[j-1] * b0[mmj-1]
				}
				b0[m-1] = r*a0[m-1] + bsum/float64(m)
			}
			c[i-1] = b0[i-1] / (float64(i) + 1)

			dsum := 0.0
			for j := 1; j <= i-1; j++ {
				dsum += d[i-j-1] * c[j-1]
			}
			d[i-1] = -(dsum + c[i-1])
		}

		j0 = basymE1*znm1 + (float64(n)-1)*j0
		j1 = basymE1*zn + float64(n)*j1
		znm1 *= z2
		zn *= z2
		w *= w0
		t0 := d[n-1] * w * j0
		w *= w0
		t1 := d[np1-1] * w * j1
		sum += t0 + t1
		if math.Abs(t0)+math.Abs(t1) <= eps*sum {
			break
		}
	}

	if logP {
		return basymLnE0 + t - bcorr(a, b) + math.Log(sum)
	}

	return basymE0 * t * math.Exp(-bcorr(a, b)) * sum
}
