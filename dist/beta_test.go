// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/betainc/dist"
	"github.com/katalvlaran/betainc/toms708"
)

func TestBetaCDF_MatchesRegIncBeta(t *testing.T) {
	t.Parallel()
	for _, a := range []float64{0.4, 1, 2.5, 30} {
		for _, b := range []float64{0.7, 3, 45} {
			for _, x := range []float64{0.05, 0.3, 0.6, 0.95} {
				want := mathext.RegIncBeta(a, b, x)
				got, err := dist.BetaCDF(x, a, b)
				require.NoError(t, err)
				assert.InDelta(t, want, got, 1e-9*want+1e-14, "a=%g b=%g x=%g", a, b, x)

				up, err := dist.BetaCDF(x, a, b, dist.LowerTail(false))
				require.NoError(t, err)
				assert.InDelta(t, 1.0, got+up, 1e-14, "a=%g b=%g x=%g", a, b, x)

				lg, err := dist.BetaCDF(x, a, b, dist.LogP(true))
				require.NoError(t, err)
				if want > 1e-300 {
					assert.InDelta(t, math.Log(want), lg, 1e-8, "a=%g b=%g x=%g", a, b, x)
				}
			}
		}
	}
}

func TestBetaCDF_OutsideSupport(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{-1, 0} {
		p, err := dist.BetaCDF(x, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 0.0, p)
		q, _ := dist.BetaCDF(x, 2, 3, dist.LowerTail(false))
		assert.Equal(t, 1.0, q)
		lp, _ := dist.BetaCDF(x, 2, 3, dist.LogP(true))
		assert.True(t, math.IsInf(lp, -1))
	}
	for _, x := range []float64{1, 2, math.Inf(1)} {
		p, err := dist.BetaCDF(x, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p)
	}
}

func TestBetaCDF_LimitShapes(t *testing.T) {
	t.Parallel()
	inf := math.Inf(1)
	cases := []struct {
		name    string
		x, a, b float64
		want    float64
	}{
		{"both zero: half at each end", 0.3, 0, 0, 0.5},
		{"a zero: mass at 0", 0.3, 0, 2, 1},
		{"a/b zero: mass at 0", 0.3, 2, inf, 1},
		{"b zero: mass at 1", 0.3, 2, 0, 0},
		{"b/a zero: mass at 1", 0.3, inf, 2, 0},
		{"both infinite, below half", 0.3, inf, inf, 0},
		{"both infinite, at half", 0.5, inf, inf, 1},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got, err := dist.BetaCDF(c.x, c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	lp, err := dist.BetaCDF(0.3, 0, 0, dist.LogP(true))
	require.NoError(t, err)
	assert.Equal(t, -math.Ln2, lp)
}

func TestBetaCDF_Errors(t *testing.T) {
	t.Parallel()
	p, err := dist.BetaCDF(math.NaN(), 2, 3)
	assert.ErrorIs(t, err, dist.ErrNaN)
	assert.True(t, math.IsNaN(p))

	p, err = dist.BetaCDF(0.3, -1, 3)
	assert.ErrorIs(t, err, dist.ErrDomain)
	assert.True(t, math.IsNaN(p))
	assert.Contains(t, err.Error(), "dist: ")
}

func TestOptions_LaterWinsAndNilSinkPanics(t *testing.T) {
	t.Parallel()
	p, err := dist.BetaCDF(0.2, 2, 3, dist.LowerTail(false), nil, dist.LowerTail(true))
	require.NoError(t, err)
	assert.InDelta(t, 0.1808, p, 1e-12)

	assert.PanicsWithValue(t, "dist: WithDiagnostics: sink must not be nil", func() {
		dist.WithDiagnostics(nil)
	})

	var events int
	sink := toms708.DiagnosticsFunc(func(toms708.Event) { events++ })
	_, err = dist.BetaCDF(0.2, 2, 3, dist.WithDiagnostics(sink))
	require.NoError(t, err)
	assert.Zero(t, events)
}
