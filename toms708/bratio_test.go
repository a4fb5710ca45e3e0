// SPDX-License-Identifier: MIT

package toms708_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/betainc/toms708"
)

func TestBratio_ValidationCodes(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	cases := []struct {
		name       string
		a, b, x, y float64
		want       toms708.Status
		sentinel   error
	}{
		{"NaN shape", nan, 1, 0.5, 0.5, toms708.StatusNaN, toms708.ErrNaN},
		{"NaN argument", 1, 1, nan, 0.5, toms708.StatusNaN, toms708.ErrNaN},
		{"negative a", -1, 2, 0.5, 0.5, toms708.StatusNegativeShape, toms708.ErrNegativeShape},
		{"negative b", 2, -0.5, 0.5, 0.5, toms708.StatusNegativeShape, toms708.ErrNegativeShape},
		{"both shapes zero", 0, 0, 0.5, 0.5, toms708.StatusZeroShapes, toms708.ErrZeroShapes},
		{"x below zero", 2, 3, -0.1, 1.1, toms708.StatusXOutOfRange, toms708.ErrXOutOfRange},
		{"x above one", 2, 3, 1.5, -0.5, toms708.StatusXOutOfRange, toms708.ErrXOutOfRange},
		{"y above one", 2, 3, 0.5, 1.5, toms708.StatusYOutOfRange, toms708.ErrYOutOfRange},
		{"x plus y not one", 2, 3, 0.3, 0.3, toms708.StatusXYMismatch, toms708.ErrXYMismatch},
		{"x and a zero", 0, 2, 0, 1, toms708.StatusXAndAZero, toms708.ErrXAndAZero},
		{"y and b zero", 2, 0, 1, 0, toms708.StatusYAndBZero, toms708.ErrYAndBZero},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			r := toms708.Bratio(c.a, c.b, c.x, c.y, false)
			assert.Equal(t, c.want, r.Status)
			assert.Equal(t, 0.0, r.W)
			assert.Equal(t, 0.0, r.W1)
			assert.True(t, r.Status.IsDomainError())
			assert.True(t, errors.Is(r.Status.Err(), c.sentinel))

			lr := toms708.Bratio(c.a, c.b, c.x, c.y, true)
			assert.Equal(t, c.want, lr.Status)
			assert.True(t, math.IsInf(lr.W, -1))
			assert.True(t, math.IsInf(lr.W1, -1))
		})
	}
}

func TestBratio_XYTolerance(t *testing.T) {
	t.Parallel()
	eps := math.Nextafter(1, 2) - 1
	r := toms708.Bratio(2, 3, 0.2, 0.8+2*eps, false)
	assert.Equal(t, toms708.StatusOK, r.Status, "a mismatch of 2·eps is accepted")

	r = toms708.Bratio(2, 3, 0.2, 0.8+8*eps, false)
	assert.Equal(t, toms708.StatusXYMismatch, r.Status)
}

func TestBratio_Boundaries(t *testing.T) {
	t.Parallel()
	inf := math.Inf(-1)
	cases := []struct {
		name       string
		a, b, x, y float64
		w, w1      float64
	}{
		{"x is zero", 2, 3, 0, 1, 0, 1},
		{"y is zero", 2, 3, 1, 0, 1, 0},
		{"a is zero", 0, 3, 0.4, 0.6, 1, 0},
		{"b is zero", 2, 0, 0.4, 0.6, 0, 1},
		{"x zero with b zero", 2, 0, 0, 1, 0, 1},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			plan := toms708.Select(toms708.Query{A: c.a, B: c.b, X: c.x, Y: c.y})
			assert.Equal(t, toms708.RegimeBoundary, plan.Regime)

			r := toms708.Bratio(c.a, c.b, c.x, c.y, false)
			require.Equal(t, toms708.StatusOK, r.Status)
			assert.Equal(t, c.w, r.W)
			assert.Equal(t, c.w1, r.W1)

			lr := toms708.Bratio(c.a, c.b, c.x, c.y, true)
			require.Equal(t, toms708.StatusOK, lr.Status)
			logOf := func(v float64) float64 {
				if v == 0 {
					return inf
				}

				return 0
			}
			assert.Equal(t, logOf(c.w), lr.W)
			assert.Equal(t, logOf(c.w1), lr.W1)
		})
	}
}

func TestBratio_TinyShapes(t *testing.T) {
	t.Parallel()
	plan := toms708.Select(toms708.Query{A: 1e-20, B: 3e-20, X: 0.9, Y: 0.1})
	assert.Equal(t, toms708.RegimeTinyShapes, plan.Regime)

	for _, x := range []float64{0.01, 0.5, 0.9} {
		r := toms708.Bratio(1e-20, 3e-20, x, 1-x, false)
		assert.InDelta(t, 0.75, r.W, 1e-15, "x=%g", x)
		assert.InDelta(t, 0.25, r.W1, 1e-15, "x=%g", x)
	}

	lr := toms708.Bratio(1e-20, 3e-20, 0.3, 0.7, true)
	assert.InDelta(t, math.Log1p(-0.25), lr.W, 1e-15)
	assert.InDelta(t, math.Log(0.25), lr.W1, 1e-15)

	lr = toms708.Bratio(3e-20, 1e-20, 0.3, 0.7, true)
	assert.InDelta(t, math.Log(0.25), lr.W, 1e-15)
	assert.InDelta(t, math.Log1p(-0.25), lr.W1, 1e-15)
}

func TestBratio_ClosedForms(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		a, b float64
		f    func(x float64) float64
	}{
		{"uniform", 1, 1, func(x float64) float64 { return x }},
		{"arcsine", 0.5, 0.5, func(x float64) float64 { return 2 / math.Pi * math.Asin(math.Sqrt(x)) }},
		{"b equals one", 3.5, 1, func(x float64) float64 { return math.Pow(x, 3.5) }},
		{"a equals one", 1, 7.5, func(x float64) float64 { return -math.Expm1(7.5 * math.Log1p(-x)) }},
		{"a equals one, small b", 1, 0.25, func(x float64) float64 { return -math.Expm1(0.25 * math.Log1p(-x)) }},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			for _, x := range []float64{0.001, 0.05, 0.2, 0.29, 0.3, 0.5, 0.7, 0.95, 0.999} {
				want := c.f(x)
				r := toms708.Bratio(c.a, c.b, x, 1-x, false)
				require.Equal(t, toms708.StatusOK, r.Status, "x=%g", x)
				assert.InEpsilon(t, want, r.W, 1e-12, "x=%g", x)
				assert.InDelta(t, 1-want, r.W1, 1e-12, "x=%g", x)
			}
		})
	}
}

func TestBratio_Symmetry(t *testing.T) {
	t.Parallel()
	for _, c := range regimeCases() {
		x, y := c.x, 1-c.x
		r := toms708.Bratio(c.a, c.b, x, y, false)
		s := toms708.Bratio(c.b, c.a, y, x, false)
		assert.InDelta(t, r.W, s.W1, 1e-13, "%s", c.name)
		assert.InDelta(t, r.W1, s.W, 1e-13, "%s", c.name)
	}
}

func TestBratio_RangeAndComplement(t *testing.T) {
	t.Parallel()
	shapes := []float64{0.2, 0.9, 1.5, 6, 35, 45, 150}
	xs := []float64{1e-6, 0.02, 0.15, 0.3, 0.5, 0.65, 0.8, 0.97}
	for _, a := range shapes {
		for _, b := range shapes {
			for _, x := range xs {
				r := toms708.Bratio(a, b, x, 1-x, false)
				require.Equal(t, toms708.StatusOK, r.Status, "a=%g b=%g x=%g", a, b, x)
				assert.GreaterOrEqual(t, r.W, 0.0, "a=%g b=%g x=%g", a, b, x)
				assert.LessOrEqual(t, r.W, 1.0, "a=%g b=%g x=%g", a, b, x)
				assert.InDelta(t, 1.0, r.W+r.W1, 1e-14, "a=%g b=%g x=%g", a, b, x)

				lr := toms708.Bratio(a, b, x, 1-x, true)
				assert.LessOrEqual(t, lr.W, 0.0, "a=%g b=%g x=%g", a, b, x)
				assert.LessOrEqual(t, lr.W1, 0.0, "a=%g b=%g x=%g", a, b, x)
				if r.W > 1e-200 {
					assert.InEpsilon(t, r.W, math.Exp(lr.W), 1e-9, "a=%g b=%g x=%g", a, b, x)
				}
				if r.W1 > 1e-200 {
					assert.InEpsilon(t, r.W1, math.Exp(lr.W1), 1e-9, "a=%g b=%g x=%g", a, b, x)
				}
			}
		}
	}
}

func TestBratio_MonotoneInX(t *testing.T) {
	t.Parallel()
	for _, ab := range [][2]float64{{0.5, 5}, {3, 5}, {2, 30}, {45, 40}, {120, 130}, {0.05, 0.5}} {
		prev := 0.0
		for i := 1; i < 400; i++ {
			x := float64(i) / 400
			w := toms708.Bratio(ab[0], ab[1], x, 1-x, false).W
			assert.GreaterOrEqual(t, w, prev-1e-12, "a,b=%v x=%g", ab, x)
			prev = w
		}
	}
}

func TestBratio_SmoothAcrossRegimeBoundaries(t *testing.T) {
	t.Parallel()
	const d = 1e-11
	cases := []struct {
		name         string
		lo, hi       toms708.Query
		below, above toms708.Regime
	}{
		{
			name:  "complement threshold at x = 0.29",
			lo:    toms708.Query{A: 0.5, B: 5, X: 0.29 - d, Y: 1 - (0.29 - d)},
			hi:    toms708.Query{A: 0.5, B: 5, X: 0.29 + d, Y: 1 - (0.29 + d)},
			below: toms708.RegimeBupBgrat, above: toms708.RegimeBpserComplement,
		},
		{
			name:  "b·x = 0.7 for shapes above one",
			lo:    toms708.Query{A: 3, B: 5, X: 0.14 - d, Y: 1 - (0.14 - d)},
			hi:    toms708.Query{A: 3, B: 5, X: 0.14 + d, Y: 1 - (0.14 + d)},
			below: toms708.RegimeBpser, above: toms708.RegimeBupBpser,
		},
		{
			name:  "b0 = 40",
			lo:    toms708.Query{A: 45, B: 40 - d, X: 0.5, Y: 0.5},
			hi:    toms708.Query{A: 45, B: 40 + d, X: 0.5, Y: 0.5},
			below: toms708.RegimeBupBpser, above: toms708.RegimeBfrac,
		},
		{
			// a0 = 101 is the first integer past the bfrac-only range; λ = 0.03·a0 at x = 0.485.
			name:  "λ = 0.03·a0 between bfrac and basym",
			lo:    toms708.Query{A: 101, B: 101, X: 0.485 - d, Y: 1 - (0.485 - d)},
			hi:    toms708.Query{A: 101, B: 101, X: 0.485 + d, Y: 1 - (0.485 + d)},
			below: toms708.RegimeBfrac, above: toms708.RegimeBasym,
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, c.below, toms708.Select(c.lo).Regime)
			require.Equal(t, c.above, toms708.Select(c.hi).Regime)
			lo, hi := toms708.Evaluate(c.lo), toms708.Evaluate(c.hi)
			assert.InDelta(t, lo.W, hi.W, 1e-9)
			assert.InDelta(t, lo.W1, hi.W1, 1e-9)
		})
	}
}

func TestBratio_DeepLogTail(t *testing.T) {
	t.Parallel()
	const x = 1e-100
	want := logBinomUpper(9, 5, x)

	lr := toms708.Bratio(5, 5, x, 1-x, true)
	require.Equal(t, toms708.StatusOK, lr.Status)
	assert.InDelta(t, want, lr.W, 1e-12*math.Abs(want))
	assert.Equal(t, 0.0, lr.W1)

	r := toms708.Bratio(5, 5, x, 1-x, false)
	assert.Equal(t, 0.0, r.W)
	assert.Equal(t, 1.0, r.W1)
}

func TestBratio_ExpansionUnderflowIsReported(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	r := toms708.Bratio(1e-5, 0.5, 1e-320, 1, false, toms708.WithDiagnostics(rec))

	assert.Equal(t, toms708.StatusBgratUnderflow, r.Status)
	assert.True(t, r.Status.IsReducedConfidence())
	assert.False(t, r.Status.IsDomainError())
	assert.True(t, errors.Is(r.Status.Err(), toms708.ErrExpansion))
	assert.True(t, errors.Is(r.Status.Err(), toms708.ErrExpansionUnderflow))
	assert.Contains(t, rec.kernels(), "bgrat")

	assert.GreaterOrEqual(t, r.W, 0.0)
	assert.LessOrEqual(t, r.W, 1.0)
	assert.InDelta(t, 1.0, r.W+r.W1, 1e-14)
}

func TestBratio_DefaultSinkIsSilent(t *testing.T) {
	t.Parallel()
	// Without WithDiagnostics the same query must still return cleanly.
	r := toms708.Bratio(1e-5, 0.5, 1e-320, 1, false)
	assert.Equal(t, toms708.StatusBgratUnderflow, r.Status)

	var calls int
	fn := toms708.DiagnosticsFunc(func(toms708.Event) { calls++ })
	toms708.Bratio(2, 3, 0.2, 0.8, false, toms708.WithDiagnostics(fn))
	assert.Zero(t, calls, "a clean evaluation reports nothing")
}

func TestBup_IsDifferenceOfRatios(t *testing.T) {
	t.Parallel()
	const eps = 1e-15
	cases := []struct {
		a, b, n int
		x       float64
	}{
		{2, 3, 4, 0.3},
		{1, 5, 20, 0.2},
		{6, 2, 1, 0.8},
		{3, 9, 7, 0.45},
	}
	for _, c := range cases {
		want := incBetaInt(c.a, c.b, c.x) - incBetaInt(c.a+c.n, c.b, c.x)
		got := toms708.Bup(float64(c.a), float64(c.b), c.x, 1-c.x, c.n, eps, false)
		assert.InEpsilon(t, want, got, 1e-12, "%+v", c)

		lg := toms708.Bup(float64(c.a), float64(c.b), c.x, 1-c.x, c.n, eps, true)
		assert.InDelta(t, math.Log(want), lg, 1e-11, "%+v", c)
	}
}

func TestBratio_ConcurrentCallersAgree(t *testing.T) {
	t.Parallel()
	cases := regimeCases()
	want := make([]toms708.Result, len(cases))
	for i, c := range cases {
		want[i] = toms708.Bratio(c.a, c.b, c.x, 1-c.x, false)
	}

	rec := &recorder{}
	got := make([][]toms708.Result, 8)
	var wg sync.WaitGroup
	for g := range got {
		got[g] = make([]toms708.Result, len(cases))
		wg.Add(1)
		go func(out []toms708.Result) {
			defer wg.Done()
			for i, c := range cases {
				out[i] = toms708.Bratio(c.a, c.b, c.x, 1-c.x, false, toms708.WithDiagnostics(rec))
			}
		}(got[g])
	}
	wg.Wait()

	for g := range got {
		assert.Equal(t, want, got[g], "goroutine %d", g)
	}
}
