// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"

	"github.com/katalvlaran/betainc/toms708"
)

// countFuzz absorbs representation error when a count is floored.
const countFuzz = 1e-7

// nonInt reports whether v is farther from an integer than the relative
// tolerance allows.
func nonInt(v float64) bool {
	return math.Abs(v-math.Round(v)) > countFuzz*math.Max(1, math.Abs(v))
}

// BinomialCDF returns P(X ≤ k) for X ~ Binomial(n, p).
//
// n must be a non-negative integer and p ∈ [0, 1]; k is floored.
func BinomialCDF(k, n, p float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(k) || math.IsNaN(n) || math.IsNaN(p) {
		return math.NaN(), ErrNaN
	}
	if math.IsInf(n, 0) || math.IsInf(p, 0) {
		return math.NaN(), fmt.Errorf("%w: BinomialCDF: n=%g p=%g", ErrDomain, n, p)
	}
	if nonInt(n) {
		return math.NaN(), fmt.Errorf("%w: BinomialCDF: n=%g", ErrNonInteger, n)
	}
	n = math.Round(n)
	if n < 0 || p < 0 || p > 1 {
		return math.NaN(), fmt.Errorf("%w: BinomialCDF: n=%g p=%g", ErrDomain, n, p)
	}

	if k < 0 {
		return o.dt0(), nil
	}
	k = math.Floor(k + countFuzz)
	if n <= k {
		return o.dt1(), nil
	}

	// P(X ≤ k) = 1 − I_p(k+1, n−k)
	return betaCDF(p, k+1, n-k, o.flipped()), nil
}

// NegBinomialCDF returns P(X ≤ k) for the number of failures X before the
// size-th success with success probability prob.
//
// size ≥ 0 need not be an integer; prob ∈ (0, 1]. size = 0 is the point mass
// at zero.
func NegBinomialCDF(k, size, prob float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(k) || math.IsNaN(size) || math.IsNaN(prob) {
		return math.NaN(), ErrNaN
	}
	if math.IsInf(size, 0) || math.IsInf(prob, 0) || size < 0 || prob <= 0 || prob > 1 {
		return math.NaN(), fmt.Errorf("%w: NegBinomialCDF: size=%g prob=%g", ErrDomain, size, prob)
	}

	if v, ok := negBinomialLimits(k, size, o); ok {
		return v, nil
	}
	k = math.Floor(k + countFuzz)

	return betaCDF(prob, size, k+1, o), nil
}

// NegBinomialMuCDF is NegBinomialCDF parameterized by the mean
// mu = size·(1−prob)/prob. The beta argument and its complement are formed
// as size/(size+mu) and mu/(size+mu) so that neither is lost to cancellation.
func NegBinomialMuCDF(k, size, mu float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(k) || math.IsNaN(size) || math.IsNaN(mu) {
		return math.NaN(), ErrNaN
	}
	if math.IsInf(size, 0) || math.IsInf(mu, 0) || size < 0 || mu < 0 {
		return math.NaN(), fmt.Errorf("%w: NegBinomialMuCDF: size=%g mu=%g", ErrDomain, size, mu)
	}

	if v, ok := negBinomialLimits(k, size, o); ok {
		return v, nil
	}
	k = math.Floor(k + countFuzz)

	x, y := size/(size+mu), mu/(size+mu)
	r := toms708.Bratio(size, k+1, x, y, o.logP, toms708.WithDiagnostics(o.diag))
	if r.Status != toms708.StatusOK {
		reportStatus(o.diag, "pnbinom_mu", r.Status, "k", k, "size", size, "mu", mu)
	}

	return o.pick(r), nil
}

// negBinomialLimits answers size = 0, k < 0 and k = +Inf.
func negBinomialLimits(k, size float64, o Options) (float64, bool) {
	switch {
	case size == 0:
		if k >= 0 {
			return o.dt1(), true
		}

		return o.dt0(), true
	case k < 0:
		return o.dt0(), true
	case math.IsInf(k, 1):
		return o.dt1(), true
	}

	return 0, false
}
