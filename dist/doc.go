// SPDX-License-Identifier: MIT

// Package dist provides cumulative distribution functions built on the
// incomplete beta ratio from package toms708.
//
// Every function evaluates one scalar and returns (value, error). The tail
// and scale are chosen with options:
//
//	p, err := dist.BinomialCDF(3, 10, 0.25)                  // P(X ≤ 3)
//	q, err := dist.BinomialCDF(3, 10, 0.25, dist.LowerTail(false))
//	lp, err := dist.StudentTCDF(-40, 3, dist.LogP(true))     // log P(T ≤ −40)
//
// Degenerate parameters (zero or infinite shapes, size = 0, infinite degrees
// of freedom) are answered by their limiting distribution rather than
// rejected. Invalid parameters yield NaN together with ErrNaN, ErrDomain or
// ErrNonInteger.
package dist
