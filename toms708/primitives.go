// SPDX-License-Identifier: MIT

package toms708

import "math"

// Machine constants of IEEE-754 binary64.
const (
	dblEpsilon = 2.220446049250313e-16 // 2^-52
	dblMin     = 2.2250738585072014e-308

	ln2      = 0.693147180559945309417232121458
	sqrtPi   = 1.772453850905516027298167483341
	eulerG   = 0.577215664901533
	lnbBase2 = 0.69314718055995 // log(2) as carried by exparg
)

// alnrel returns log(1 + a), accurate for small |a|.
func alnrel(a float64) float64 {
	const (
		p1 = -1.29418923021993
		p2 = 0.405303492862024
		p3 = -0.0178874546012214
		q1 = -1.62752256355323
		q2 = 0.747811014037616
		q3 = -0.0845104217945565
	)
	if math.Abs(a) > 0.375 {
		return math.Log(1 + a)
	}
	t := a / (a + 2)
	t2 := t * t
	w := (((p3*t2+p2)*t2+p1)*t2 + 1) / (((q3*t2+q2)*t2+q1)*t2 + 1)

	return t * 2 * w
}

// rlog1 returns x − log(1 + x).
func rlog1(x float64) float64 {
	const (
		a  = 0.0566749439387324
		b  = 0.0456512608815524
		p0 = 0.333333333333333
		p1 = -0.224696413112536
		p2 = 0.00620886815375787
		q1 = -1.27408923933623
		q2 = 0.354508718369557
	)
	if x < -0.39 || x > 0.57 {
		return x - math.Log(x+0.5+0.5)
	}

	var h, w1 float64
	switch {
	case x < -0.18:
		h = (x + 0.3) / 0.7
		w1 = a - h*0.3
	case x > 0.18:
		h = x*0.75 - 0.25
		w1 = b + h/3
	default:
		h = x
	}
	r := h / (h + 2)
	t := r * r
	w := ((p2*t+p1)*t + p0) / ((q2*t+q1)*t + 1)

	return t*2*(1/(1-r)-r*w) + w1
}

// rexpm1 returns exp(x) − 1.
func rexpm1(x float64) float64 {
	const (
		p1 = 9.14041914819518e-10
		p2 = 0.0238082361044469
		q1 = -0.499999999085958
		q2 = 0.107141568980644
		q3 = -0.0119041179760821
		q4 = 5.95130811860248e-4
	)
	if math.Abs(x) <= 0.15 {
		return x * (((p2*x + p1)*x + 1) / ((((q4*x+q3)*x+q2)*x+q1)*x + 1))
	}
	w := math.Exp(x)
	if x > 0 {
		return w * (0.5 - 1/w + 0.5)
	}

	return w - 0.5 - 0.5
}

// esum returns exp(mu + x), or mu + x on the log scale, splitting the
// exponent whenever the sum alone could overflow or underflow.
func esum(mu int, x float64, logScale bool) float64 {
	if logScale {
		return x + float64(mu)
	}
	m := float64(mu)
	var w float64
	if x > 0 {
		if mu > 0 {
			return math.Exp(m) * math.Exp(x)
		}
		w = m + x
		if w < 0 {
			return math.Exp(m) * math.Exp(x)
		}
	} else {
		if mu < 0 {
			return math.Exp(m) * math.Exp(x)
		}
		w = m + x
		if w > 0 {
			return math.Exp(m) * math.Exp(x)
		}
	}

	return math.Exp(w)
}

// exparg returns the largest positive w with exp(w) finite when l == 0, and
// the most negative w with exp(w) > 0 otherwise, both shrunk by 1e-5.
func exparg(l int) float64 {
	const (
		maxExp = 1024  // DBL_MAX_EXP
		minExp = -1021 // DBL_MIN_EXP
	)
	m := maxExp
	if l != 0 {
		m = minExp - 1
	}

	return float64(m) * lnbBase2 * 0.99999
}

// logspaceAdd returns log(exp(lx) + exp(ly)).
func logspaceAdd(lx, ly float64) float64 {
	return math.Max(lx, ly) + math.Log1p(math.Exp(-math.Abs(lx-ly)))
}

// log1mexp returns log(1 − exp(x)) for x ≤ 0.
func log1mexp(x float64) float64 {
	if x > -ln2 {
		return math.Log(-math.Expm1(x))
	}

	return math.Log1p(-math.Exp(x))
}

// Rational coefficients shared by erf and erfc1.
var (
	erfA = [5]float64{
		7.7105849500132e-5, -0.00133733772997339, 0.0323076579225834,
		0.0479137145607681, 0.128379167095513,
	}
	erfB = [3]float64{0.00301048631703895, 0.0538971687740286, 0.375795757275549}
	erfP = [8]float64{
		-1.36864857382717e-7, 0.564195517478974, 7.21175825088309,
		43.1622272220567, 152.98928504694, 339.320816734344,
		451.918953711873, 300.459261020162,
	}
	erfQ = [8]float64{
		1, 12.7827273196294, 77.0001529352295, 277.585444743988,
		638.980264465631, 931.35409485061, 790.950925327898,
		300.459260956983,
	}
	erfR = [5]float64{
		2.10144126479064, 26.2370141675169, 21.3688200555087,
		4.6580782871847, 0.282094791773523,
	}
	erfS = [4]float64{94.153775055546, 187.11481179959, 99.0191814623914, 18.0124575948747}
)

const erfC = 0.564189583547756 // 1/sqrt(pi)

func erfSmall(x float64) float64 {
	t := x * x
	top := (((erfA[0]*t+erfA[1])*t+erfA[2])*t+erfA[3])*t + erfA[4] + 1
	bot := ((erfB[0]*t+erfB[1])*t+erfB[2])*t + 1

	return top / bot
}

func erfMid(ax float64) float64 {
	p, q := &erfP, &erfQ
	top := ((((((p[0]*ax+p[1])*ax+p[2])*ax+p[3])*ax+p[4])*ax+p[5])*ax+p[6])*ax + p[7]
	bot := ((((((q[0]*ax+q[1])*ax+q[2])*ax+q[3])*ax+q[4])*ax+q[5])*ax+q[6])*ax + q[7]

	return top / bot
}

func erfTail(t float64) (top, bot float64) {
	r, s := &erfR, &erfS
	top = (((r[0]*t+r[1])*t+r[2])*t+r[3])*t + r[4]
	bot = (((s[0]*t+s[1])*t+s[2])*t+s[3])*t + 1

	return top, bot
}

// erf is the real error function.
func erf(x float64) float64 {
	ax := math.Abs(x)
	if ax <= 0.5 {
		return x * erfSmall(x)
	}
	var r float64
	switch {
	case ax <= 4:
		r = 0.5 - math.Exp(-x*x)*erfMid(ax) + 0.5
	case ax >= 5.8:
		if x > 0 {
			return 1
		}

		return -1
	default:
		x2 := x * x
		top, bot := erfTail(1 / x2)
		t := (erfC - top/(x2*bot)) / ax
		r = 0.5 - math.Exp(-x2)*t + 0.5
	}
	if x < 0 {
		r = -r
	}

	return r
}

// erfc1 returns erfc(x) when scaled is false and exp(x²)·erfc(x) otherwise.
func erfc1(scaled bool, x float64) float64 {
	ax := math.Abs(x)
	if ax <= 0.5 {
		t := x * x
		r := 0.5 - x*erfSmall(x) + 0.5
		if scaled {
			r *= math.Exp(t)
		}

		return r
	}

	var r float64
	if ax <= 4 {
		r = erfMid(ax)
	} else {
		if x <= -5.6 {
			if scaled {
				return 2 * math.Exp(x*x)
			}

			return 2
		}
		if !scaled && (x > 100 || x*x > -exparg(1)) {
			return 0
		}
		t := 1 / (x * x)
		top, bot := erfTail(t)
		r = (erfC - t*top/bot) / ax
	}

	if scaled {
		if x < 0 {
			r = 2*math.Exp(x*x) - r
		}

		return r
	}
	w := x * x
	r *= math.Exp(-w)
	if x < 0 {
		r = 2 - r
	}

	return r
}
