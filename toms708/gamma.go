// SPDX-License-Identifier: MIT

package toms708

import "math"

// Stirling remainder coefficients shared by algdiv, bcorr and gamln.
const (
	stC0 = 0.0833333333333333
	stC1 = -0.00277777777760991
	stC2 = 7.9365066682539e-4
	stC3 = -5.9520293135187e-4
	stC4 = 8.37308034031215e-4
	stC5 = -0.00165322962780713
)

// gam1 returns 1/Γ(a+1) − 1 for −0.5 ≤ a ≤ 1.5.
func gam1(a float64) float64 {
	t := a
	d := a - 0.5
	if d > 0 {
		t = d - 0.5
	}

	switch {
	case t < 0:
		r := [9]float64{
			-0.422784335098468, -0.771330383816272, -0.244757765222226,
			0.118378989872749, 9.30357293360349e-4, -0.0118290993445146,
			0.00223047661158249, 2.66505979058923e-4, -1.32674909766242e-4,
		}
		const (
			s1 = 0.273076135303957
			s2 = 0.0559398236957378
		)
		top := (((((((r[8]*t+r[7])*t+r[6])*t+r[5])*t+r[4])*t+r[3])*t+r[2])*t+r[1])*t + r[0]
		bot := (s2*t+s1)*t + 1
		w := top / bot
		if d > 0 {
			return t * w / a
		}

		return a * (w + 0.5 + 0.5)

	case t == 0:
		return 0

	default:
		p := [7]float64{
			0.577215664901533, -0.409078193005776, -0.230975380857675,
			0.0597275330452234, 0.0076696818164949, -0.00514889771323592,
			5.89597428611429e-4,
		}
		q := [5]float64{
			1, 0.427569613095214, 0.158451672430138,
			0.0261132021441447, 0.00423244297896961,
		}
		top := (((((p[6]*t+p[5])*t+p[4])*t+p[3])*t+p[2])*t+p[1])*t + p[0]
		bot := (((q[4]*t+q[3])*t+q[2])*t+q[1])*t + 1
		w := top / bot
		if d > 0 {
			return t / a * (w - 0.5 - 0.5)
		}

		return a * w
	}
}

// gamln1 returns log Γ(1 + a) for −0.2 ≤ a ≤ 1.25.
func gamln1(a float64) float64 {
	if a < 0.6 {
		const (
			p0 = 0.577215664901533
			p1 = 0.844203922187225
			p2 = -0.168860593646662
			p3 = -0.780427615533591
			p4 = -0.402055799310489
			p5 = -0.0673562214325671
			p6 = -0.00271935708322958
			q1 = 2.88743195473681
			q2 = 3.12755088914843
			q3 = 1.56875193295039
			q4 = 0.361951990101499
			q5 = 0.0325038868253937
			q6 = 6.67465618796164e-4
		)
		w := ((((((p6*a+p5)*a+p4)*a+p3)*a+p2)*a+p1)*a + p0) /
			((((((q6*a+q5)*a+q4)*a+q3)*a+q2)*a+q1)*a + 1)

		return -a * w
	}

	const (
		r0 = 0.422784335098467
		r1 = 0.848044614534529
		r2 = 0.565221050691933
		r3 = 0.156513060486551
		r4 = 0.017050248402265
		r5 = 4.97958207639485e-4
		s1 = 1.24313399877507
		s2 = 0.548042109832463
		s3 = 0.10155218743983
		s4 = 0.00713309612391
		s5 = 1.16165475989616e-4
	)
	x := a - 0.5 - 0.5
	w := (((((r5*x+r4)*x+r3)*x+r2)*x+r1)*x + r0) /
		(((((s5*x+s4)*x+s3)*x+s2)*x+s1)*x + 1)

	return x * w
}

// gamln returns log Γ(a) for a > 0.
func gamln(a float64) float64 {
	const d = 0.418938533204673 // 0.5·(log(2π) − 1)

	switch {
	case a <= 0.8:
		return gamln1(a) - math.Log(a)
	case a <= 2.25:
		return gamln1(a - 0.5 - 0.5)
	case a < 10:
		n := int(a - 1.25)
		t, w := a, 1.0
		for i := 1; i <= n; i++ {
			t--
			w *= t
		}

		return gamln1(t-1) + math.Log(w)
	}

	t := 1 / (a * a)
	w := (((((stC5*t+stC4)*t+stC3)*t+stC2)*t+stC1)*t + stC0) / a

	return d + w + (a-0.5)*(math.Log(a)-1)
}

// gsumln returns log Γ(a + b) for 1 ≤ a, b ≤ 2.
func gsumln(a, b float64) float64 {
	x := a + b - 2
	switch {
	case x <= 0.25:
		return gamln1(x + 1)
	case x <= 1.25:
		return gamln1(x) + alnrel(x)
	}

	return gamln1(x-1) + math.Log(x*(x+1))
}

// stirlingSums returns s3..s11 with sN = (1 − x^N)/(1 − x).
func stirlingSums(x float64) (s3, s5, s7, s9, s11 float64) {
	x2 := x * x
	s3 = x + x2 + 1
	s5 = x + x2*s3 + 1
	s7 = x + x2*s5 + 1
	s9 = x + x2*s7 + 1
	s11 = x + x2*s9 + 1

	return
}

// algdiv returns log(Γ(b)/Γ(a+b)) for b ≥ 8.
func algdiv(a, b float64) float64 {
	var c, d, h, x float64
	if a > b {
		h = b / a
		c = 1 / (h + 1)
		x = h / (h + 1)
		d = a + (b - 0.5)
	} else {
		h = a / b
		c = h / (h + 1)
		x = 1 / (h + 1)
		d = b + (a - 0.5)
	}

	// w = del(b) − del(a + b)
	s3, s5, s7, s9, s11 := stirlingSums(x)
	t := 1 / (b * b)
	w := ((((stC5*s11*t+stC4*s9)*t+stC3*s7)*t+stC2*s5)*t+stC1*s3)*t + stC0
	w *= c / b

	u := d * alnrel(a/b)
	v := a * (math.Log(b) - 1)
	if u > v {
		return w - v - u
	}

	return w - u - v
}

// bcorr returns del(a0) + del(b0) − del(a0 + b0) for a0, b0 ≥ 8, where
// log Γ(a) = (a − 0.5)·log a − a + 0.5·log(2π) + del(a).
func bcorr(a0, b0 float64) float64 {
	a := math.Min(a0, b0)
	b := math.Max(a0, b0)

	h := a / b
	c := h / (h + 1)
	x := 1 / (h + 1)
	s3, s5, s7, s9, s11 := stirlingSums(x)

	t := 1 / (b * b)
	w := ((((stC5*s11*t+stC4*s9)*t+stC3*s7)*t+stC2*s5)*t+stC1*s3)*t + stC0
	w *= c / b

	t = 1 / (a * a)

	return (((((stC5*t+stC4)*t+stC3)*t+stC2)*t+stC1)*t+stC0)/a + w
}

// betaln returns log Beta(a0, b0).
func betaln(a0, b0 float64) float64 {
	const e = 0.918938533204673 // 0.5·log(2π)

	a := math.Min(a0, b0)
	b := math.Max(a0, b0)

	if a >= 8 {
		w := bcorr(a, b)
		h := a / b
		u := -(a - 0.5) * math.Log(h/(h+1))
		v := b * alnrel(h)
		if u > v {
			return math.Log(b)*-0.5 + e + w - v - u
		}

		return math.Log(b)*-0.5 + e + w - u - v
	}

	if a < 1 {
		if b < 8 {
			return gamln(a) + (gamln(b) - gamln(a+b))
		}

		return gamln(a) + algdiv(a, b)
	}

	// 1 ≤ a < 8
	if a < 2 {
		if b <= 2 {
			return gamln(a) + gamln(b) - gsumln(a, b)
		}
		if b >= 8 {
			return gamln(a) + algdiv(a, b)
		}

		return reduceB(a, b)
	}

	n := int(a - 1)
	w := 1.0
	if b > 1000 {
		for i := 1; i <= n; i++ {
			a--
			w *= a / (a/b + 1)
		}

		return math.Log(w) - float64(n)*math.Log(b) + (gamln(a) + algdiv(a, b))
	}
	for i := 1; i <= n; i++ {
		a--
		h := a / b
		w *= h / (h + 1)
	}
	w = math.Log(w)
	if b >= 8 {
		return w + gamln(a) + algdiv(a, b)
	}

	return w + reduceB(a, b)
}

// reduceB handles 1 < a ≤ b < 8 by stepping b down into [1, 2].
func reduceB(a, b float64) float64 {
	n := int(b - 1)
	z := 1.0
	for i := 1; i <= n; i++ {
		b--
		z *= b / (a + b)
	}

	return math.Log(z) + (gamln(a) + (gamln(b) - gsumln(a, b)))
}

// Cody, Strecok and Thacher rational approximations for psi.
var (
	psiP1 = [7]float64{
		0.0089538502298197, 4.77762828042627, 142.441585084029,
		1186.45200713425, 3633.51846806499, 4138.10161269013, 1305.60269827897,
	}
	psiQ1 = [6]float64{
		44.8452573429826, 520.752771467162, 2210.0079924783,
		3641.27349079381, 1908.310765963, 6.91091682714533e-6,
	}
	psiP2 = [4]float64{-2.12940445131011, -7.01677227766759, -4.48616543918019, -0.648157123766197}
	psiQ2 = [4]float64{32.2703493791143, 89.2920700481861, 54.6117738103215, 7.77788548522962}
)

// psi is the digamma function. It returns 0 at the poles and for
// x ≤ −xmax1, where the reflection cannot be reduced.
func psi(x float64) float64 {
	const (
		piov4  = 0.785398163397448
		dx0    = 1.461632144968362341262659542325721325 // positive zero of psi
		xsmall = 1e-9
	)
	xmax1 := math.Min(math.MaxInt32, 0.5/dblEpsilon)

	aug := 0.0
	if x < 0.5 {
		// psi(1 − x) = psi(x) + π·cot(π·x)
		if math.Abs(x) <= xsmall {
			if x == 0 {
				return 0
			}
			aug = -1 / x
		} else {
			w, sgn := -x, piov4
			if w <= 0 {
				w, sgn = -w, -sgn
			}
			if w >= xmax1 {
				return 0
			}
			w -= float64(int(w))
			nq := int(w * 4)
			w = (w - float64(nq)*0.25) * 4

			n := nq / 2
			if n+n != nq {
				w = 1 - w
			}
			z := piov4 * w
			if m := n / 2; m+m != n {
				sgn = -sgn
			}
			n = (nq + 1) / 2
			if m := n / 2; m+m == n {
				if z == 0 {
					return 0
				}
				aug = sgn * (math.Cos(z) / math.Sin(z) * 4)
			} else {
				aug = sgn * (math.Sin(z) / math.Cos(z) * 4)
			}
		}
		x = 1 - x
	}

	if x <= 3 {
		den, upper := x, psiP1[0]*x
		for i := 1; i <= 5; i++ {
			den = (den + psiQ1[i-1]) * x
			upper = (upper + psiP1[i]) * x
		}

		return (upper+psiP1[6])/(den+psiQ1[5])*(x-dx0) + aug
	}
	if x < xmax1 {
		w := 1 / (x * x)
		den, upper := w, psiP2[0]*w
		for i := 1; i <= 3; i++ {
			den = (den + psiQ2[i-1]) * w
			upper = (upper + psiP2[i]) * w
		}
		aug += upper/(den+psiQ2[3]) - 0.5/x
	}

	return aug + math.Log(x)
}
