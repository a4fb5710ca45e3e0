// SPDX-License-Identifier: MIT
// Package toms708: sentinel error set.
// Bratio never returns an error value; it returns a Status. Status.Err maps
// every nonzero code onto one of the sentinels below so that callers can use
// errors.Is in the usual way.

package toms708

import "errors"

// Every message is prefixed with "toms708: ". Domain errors (status 1..9)
// mean the Result is the zero pair and must not be used. The bgrat errors
// (status 11..14) come with a best-effort Result.
var (
	// ErrNegativeShape indicates a < 0 or b < 0 (status 1).
	ErrNegativeShape = errors.New("toms708: shape parameter is negative")

	// ErrZeroShapes indicates a = b = 0 (status 2).
	ErrZeroShapes = errors.New("toms708: both shape parameters are zero")

	// ErrXOutOfRange indicates x ∉ [0,1] (status 3).
	ErrXOutOfRange = errors.New("toms708: x outside [0, 1]")

	// ErrYOutOfRange indicates y ∉ [0,1] (status 4).
	ErrYOutOfRange = errors.New("toms708: y outside [0, 1]")

	// ErrXYMismatch indicates |x + y − 1| > 3·eps (status 5).
	ErrXYMismatch = errors.New("toms708: x + y differs from 1")

	// ErrXAndAZero indicates x = 0 together with a = 0 (status 6).
	ErrXAndAZero = errors.New("toms708: x = 0 and a = 0")

	// ErrYAndBZero indicates y = 0 together with b = 0 (status 7).
	ErrYAndBZero = errors.New("toms708: y = 0 and b = 0")

	// ErrNaN indicates a NaN in a, b, x or y (status 9).
	ErrNaN = errors.New("toms708: NaN argument")

	// ErrExpansion is the umbrella for every large-a expansion failure
	// (status 11..14). The specific sentinels below wrap it.
	ErrExpansion = errors.New("toms708: asymptotic expansion failed")

	// ErrExpansionUnderflow: b·z underflowed to zero (status 11).
	ErrExpansionUnderflow = wrapExpansion("b*z underflow")

	// ErrExpansionScale: the scale factor log(u) is −Inf (status 12).
	ErrExpansionScale = wrapExpansion("scale factor underflow")

	// ErrExpansionSum: the partial sum became non-positive (status 13).
	ErrExpansionSum = wrapExpansion("non-positive partial sum")

	// ErrExpansionNoConvergence: the term cap was reached (status 14).
	ErrExpansionNoConvergence = wrapExpansion("no convergence")

	// ErrUnknownStatus is returned by Status.Err for codes outside the table.
	ErrUnknownStatus = errors.New("toms708: unknown status code")
)

type expansionError struct{ msg string }

func (e *expansionError) Error() string { return "toms708: bgrat: " + e.msg }
func (e *expansionError) Unwrap() error { return ErrExpansion }

func wrapExpansion(msg string) error { return &expansionError{msg: msg} }
