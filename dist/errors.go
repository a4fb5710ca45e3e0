// SPDX-License-Identifier: MIT

package dist

import "errors"

// Every message is prefixed with "dist: ". The value returned alongside any
// of these errors is NaN.
var (
	// ErrNaN indicates a NaN argument.
	ErrNaN = errors.New("dist: NaN argument")

	// ErrDomain indicates a parameter outside the distribution's support,
	// e.g. a negative shape or a probability outside [0, 1].
	ErrDomain = errors.New("dist: parameter out of domain")

	// ErrNonInteger indicates a count parameter that is not an integer.
	ErrNonInteger = errors.New("dist: parameter must be an integer")
)
